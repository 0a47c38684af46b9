//go:build wireinject
// +build wireinject

package wire

import (
	"civistash/internal/handler"
	"civistash/internal/job"
	"civistash/internal/repository"
	"civistash/internal/router"
	"civistash/internal/server"
	"civistash/internal/service"
	"civistash/pkg/app"
	"civistash/pkg/jwt"
	"civistash/pkg/log"
	"civistash/pkg/server/http"
	"civistash/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRedis,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewUserRepository,
	repository.NewSettingRepository,
	repository.NewCivitaiModelRepository,
	repository.NewModelVersionRepository,
	repository.NewModelFileRepository,
	repository.NewModelImageRepository,
)

var serviceSet = wire.NewSet(
	service.NewService,
	service.NewGatewayService,
	service.NewUserService,
	service.NewModelService,
	service.NewDownloadTaskService,
	service.NewDownloadService,
	service.NewSettingService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewUserHandler,
	handler.NewModelHandler,
	handler.NewDownloadHandler,
	handler.NewSettingHandler,
)

var jobSet = wire.NewSet(
	job.NewJob,
	job.NewTaskReconcileJob,
)

var serverSet = wire.NewSet(
	server.NewHTTPServer,
	server.NewJobServer,
)

// build App
func newApp(
	httpServer *http.Server,
	jobServer *server.JobServer,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer, jobServer),
		app.WithName("civistash-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		serviceSet,
		handlerSet,
		jobSet,
		serverSet,
		wire.Struct(new(router.RouterDeps), "*"),
		sid.NewSid,
		jwt.NewJwt,
		newApp,
	))
}
