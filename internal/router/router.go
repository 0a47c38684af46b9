package router

import (
	"civistash/internal/handler"
	"civistash/pkg/jwt"
	"civistash/pkg/log"

	"github.com/spf13/viper"
)

type RouterDeps struct {
	Logger          *log.Logger
	Config          *viper.Viper
	JWT             *jwt.JWT
	UserHandler     *handler.UserHandler
	ModelHandler    *handler.ModelHandler
	DownloadHandler *handler.DownloadHandler
	SettingHandler  *handler.SettingHandler
}
