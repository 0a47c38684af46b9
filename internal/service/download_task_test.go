package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	v1 "civistash/api/v1"
	"civistash/internal/model"
	"civistash/internal/service"
	"civistash/pkg/gopeed"
	"civistash/pkg/jwt"
	"civistash/pkg/log"
	"civistash/pkg/sid"
	mock_repository "civistash/test/mocks/repository"
	mock_service "civistash/test/mocks/service"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *log.Logger {
	conf := viper.New()
	conf.Set("log.log_file_name", filepath.Join(os.TempDir(), "civistash-test.log"))
	return log.NewLog(conf)
}

func newTestService(logger *log.Logger) *service.Service {
	return service.NewService(nil, logger, sid.NewSid(), jwt.NewJwt(viper.New()))
}

type taskServiceFixture struct {
	svc       service.DownloadTaskService
	gateway   *mock_service.MockGatewayService
	fileRepo  *mock_repository.MockModelFileRepository
	imageRepo *mock_repository.MockModelImageRepository
}

func setupTaskService(t *testing.T) *taskServiceFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := newTestLogger()
	gateway := mock_service.NewMockGatewayService(ctrl)
	fileRepo := mock_repository.NewMockModelFileRepository(ctrl)
	imageRepo := mock_repository.NewMockModelImageRepository(ctrl)

	svc := service.NewDownloadTaskService(newTestService(logger), gateway, fileRepo, imageRepo, logger)
	return &taskServiceFixture{
		svc:       svc,
		gateway:   gateway,
		fileRepo:  fileRepo,
		imageRepo: imageRepo,
	}
}

func newDownloaderClient(t *testing.T, handler http.Handler) *gopeed.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := gopeed.NewClient(server.URL, "")
	assert.NoError(t, err)
	return client
}

func TestCreateTaskInvalidSpec(t *testing.T) {
	f := setupTaskService(t)

	// 校验先于一切外部调用
	_, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "",
		SavePath:   "/data/models",
		Url:        "https://cdn.example.com/a",
	})
	assert.ErrorIs(t, err, v1.ErrInvalidTaskSpec)
}

func TestCreateTaskFileAlreadyOnDisk(t *testing.T) {
	f := setupTaskService(t)

	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "file.safetensors"), []byte("x"), 0o644))

	_, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "file.safetensors",
		SavePath:   dir,
		Url:        "https://cdn.example.com/a",
	})
	assert.ErrorIs(t, err, v1.ErrTaskAlreadyFinished)
}

func TestCreateTaskNoExistingRecord(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":"abc"}`)
	}))

	// 注册表里没有记录等同于 failed，首次创建照常走下载器
	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 42).Return(nil, nil)
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	taskID, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 42,
		Name:       "file.safetensors",
		SavePath:   t.TempDir(),
		Url:        "https://cdn.example.com/a",
	})
	assert.NoError(t, err)
	assert.Equal(t, "abc", taskID)
}

func TestCreateTaskDuplicate(t *testing.T) {
	f := setupTaskService(t)

	taskID := "task-1"
	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 100).Return(&model.ModelFile{
		FileID: 100,
		TaskID: &taskID,
	}, nil)

	_, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "file.safetensors",
		SavePath:   t.TempDir(),
		Url:        "https://cdn.example.com/a",
	})
	assert.ErrorIs(t, err, v1.ErrTaskDuplicate)
}

func TestCreateTaskAlreadyFinishedInRegistry(t *testing.T) {
	f := setupTaskService(t)

	taskID := "task-1"
	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 100).Return(&model.ModelFile{
		FileID:   100,
		TaskID:   &taskID,
		Finished: true,
	}, nil)

	_, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "file.safetensors",
		SavePath:   t.TempDir(),
		Url:        "https://cdn.example.com/a",
	})
	assert.ErrorIs(t, err, v1.ErrTaskAlreadyFinished)
}

func TestCreateTaskSuccess(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		fmt.Fprint(w, `{"code":0,"data":"task-9"}`)
	}))

	// failed 状态（task_id 为空）的记录允许重建任务；注册表写入由调用方负责
	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 100).Return(&model.ModelFile{FileID: 100}, nil)
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	taskID, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "file.safetensors",
		SavePath:   t.TempDir(),
		Url:        "https://cdn.example.com/a",
	})
	assert.NoError(t, err)
	assert.Equal(t, "task-9", taskID)
}

func TestCreateTaskDownloaderRejected(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":1001,"msg":"invalid url"}`)
	}))

	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 100).Return(&model.ModelFile{FileID: 100}, nil)
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	_, err := f.svc.CreateTask(context.Background(), &service.TaskSpec{
		ResourceID: 100,
		Name:       "file.safetensors",
		SavePath:   t.TempDir(),
		Url:        "https://cdn.example.com/a",
	})
	assert.ErrorIs(t, err, v1.ErrDownloaderApi)
}

func TestFinishAndCleanTask(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/tasks/task-1", r.URL.Path)
		fmt.Fprint(w, `{"code":0}`)
	}))

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)
	f.fileRepo.EXPECT().RecordCleaned(gomock.Any(), 100).Return(nil)

	err := f.svc.FinishAndCleanTask(context.Background(), &v1.FinishTaskRequest{
		TaskID:     "task-1",
		ResourceID: 100,
	})
	assert.NoError(t, err)
}

func TestFinishAndCleanTaskAlreadyGone(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	// 下载器里任务已经不存在时依然落终态
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)
	f.imageRepo.EXPECT().RecordCleaned(gomock.Any(), 200).Return(nil)

	err := f.svc.FinishAndCleanTask(context.Background(), &v1.FinishTaskRequest{
		TaskID:     "task-1",
		ResourceID: 200,
		IsMedia:    true,
	})
	assert.NoError(t, err)
}

func TestDeleteTaskResetsRegistry(t *testing.T) {
	f := setupTaskService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		fmt.Fprint(w, `{"code":0}`)
	}))

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)
	f.fileRepo.EXPECT().GetByTaskID(gomock.Any(), "task-1").Return(&model.ModelFile{FileID: 100}, nil)
	f.fileRepo.EXPECT().RecordFailed(gomock.Any(), 100).Return(nil)

	assert.NoError(t, f.svc.DeleteTask(context.Background(), "task-1", false))
}

func TestGetTaskStatusDerivesState(t *testing.T) {
	f := setupTaskService(t)

	taskID := "task-1"
	f.fileRepo.EXPECT().GetByFileID(gomock.Any(), 100).Return(&model.ModelFile{
		FileID:   100,
		TaskID:   &taskID,
		Finished: true,
		Deleted:  true,
	}, nil)

	status, err := f.svc.GetTaskStatus(context.Background(), 100, false)
	assert.NoError(t, err)
	assert.Equal(t, model.TaskStateCleaned, status.State)
	assert.Equal(t, "task-1", status.TaskID)
}

func TestGetTaskStatusRecordNotFound(t *testing.T) {
	f := setupTaskService(t)

	f.imageRepo.EXPECT().GetByImageID(gomock.Any(), 300).Return(nil, nil)

	_, err := f.svc.GetTaskStatus(context.Background(), 300, true)
	assert.ErrorIs(t, err, v1.ErrTaskRecordNotFound)
}
