package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	v1 "civistash/api/v1"
	"civistash/internal/handler"
	"civistash/internal/model"
	"civistash/pkg/log"
	mock_service "civistash/test/mocks/service"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
)

func newTestLogger() *log.Logger {
	conf := viper.New()
	conf.Set("log.log_file_name", filepath.Join(os.TempDir(), "civistash-test.log"))
	return log.NewLog(conf)
}

func setupDownloadRouter(t *testing.T) (*httptest.Server, *mock_service.MockDownloadTaskService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := newTestLogger()
	taskService := mock_service.NewMockDownloadTaskService(ctrl)
	h := handler.NewDownloadHandler(handler.NewHandler(logger), nil, taskService, nil)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/downloads/status", h.GetTaskStatus)
	router.POST("/downloads/pause", h.PauseTask)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, taskService
}

func TestGetTaskStatusHandler(t *testing.T) {
	server, taskService := setupDownloadRouter(t)

	taskService.EXPECT().GetTaskStatus(gomock.Any(), 100, false).Return(&v1.TaskStatusData{
		ResourceID: 100,
		State:      model.TaskStateCreated,
		TaskID:     "task-1",
	}, nil)

	e := httpexpect.Default(t, server.URL)
	data := e.GET("/downloads/status").
		WithQuery("resource_id", 100).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("code", 0).
		Value("data").Object()
	data.HasValue("state", "created")
	data.HasValue("taskId", "task-1")
}

func TestGetTaskStatusHandlerRecordNotFound(t *testing.T) {
	server, taskService := setupDownloadRouter(t)

	taskService.EXPECT().GetTaskStatus(gomock.Any(), 100, false).Return(nil, v1.ErrTaskRecordNotFound)

	e := httpexpect.Default(t, server.URL)
	e.GET("/downloads/status").
		WithQuery("resource_id", 100).
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().
		HasValue("code", 3105)
}

func TestGetTaskStatusHandlerBadRequest(t *testing.T) {
	server, _ := setupDownloadRouter(t)

	e := httpexpect.Default(t, server.URL)
	e.GET("/downloads/status").
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().
		HasValue("code", 400)
}

func TestPauseTaskHandler(t *testing.T) {
	server, taskService := setupDownloadRouter(t)

	taskService.EXPECT().PauseTask(gomock.Any(), "task-1").Return(nil)

	e := httpexpect.Default(t, server.URL)
	e.POST("/downloads/pause").
		WithJSON(map[string]interface{}{"taskId": "task-1"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("code", 0)
}
