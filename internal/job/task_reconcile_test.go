package job_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"civistash/internal/job"
	"civistash/internal/model"
	"civistash/pkg/gopeed"
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

type reconcileFixture struct {
	job       job.TaskReconcileJob
	gateway   *mock_service.MockGatewayService
	fileRepo  *mock_repository.MockModelFileRepository
	imageRepo *mock_repository.MockModelImageRepository
}

func setupReconcileJob(t *testing.T) *reconcileFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := newTestLogger()
	gateway := mock_service.NewMockGatewayService(ctrl)
	fileRepo := mock_repository.NewMockModelFileRepository(ctrl)
	imageRepo := mock_repository.NewMockModelImageRepository(ctrl)

	j := job.NewTaskReconcileJob(job.NewJob(nil, logger, sid.NewSid()), gateway, fileRepo, imageRepo, logger)
	return &reconcileFixture{
		job:       j,
		gateway:   gateway,
		fileRepo:  fileRepo,
		imageRepo: imageRepo,
	}
}

func taskRef(id string) *string { return &id }

func TestReconcileMapsDownloaderStatuses(t *testing.T) {
	f := setupReconcileJob(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/info", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"version":"1.5.0"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-done", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-done","status":"done"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-running", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-running","status":"running"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-pause", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-pause","status":"pause"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-ready", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-ready","status":"ready"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-weird", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-weird","status":"merging"}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-lost", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/v1/tasks/task-error", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			fmt.Fprint(w, `{"code":0}`)
			return
		}
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-error","status":"error"}}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client, err := gopeed.NewClient(server.URL, "")
	assert.NoError(t, err)

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	f.fileRepo.EXPECT().ListActive(gomock.Any()).Return([]*model.ModelFile{
		{FileID: 1, TaskID: taskRef("task-done")},
		{FileID: 2, TaskID: taskRef("task-running")},
		{FileID: 3, TaskID: taskRef("task-lost")},
		{FileID: 4, TaskID: taskRef("task-pause")},
		{FileID: 5, TaskID: taskRef("task-ready")},
		{FileID: 6, TaskID: taskRef("task-weird")},
	}, nil)
	f.imageRepo.EXPECT().ListActive(gomock.Any()).Return([]*model.ModelImage{
		{ImageID: 9, TaskID: taskRef("task-error")},
	}, nil)

	// done → 完成；lost → 重置；running/ready → 重写 created；pause → 不动；error → 删任务后重置
	f.fileRepo.EXPECT().RecordFinished(gomock.Any(), 1).Return(nil)
	f.fileRepo.EXPECT().RecordCreated(gomock.Any(), 2, "task-running").Return(nil)
	f.fileRepo.EXPECT().RecordFailed(gomock.Any(), 3).Return(nil)
	f.fileRepo.EXPECT().RecordCreated(gomock.Any(), 5, "task-ready").Return(nil)
	f.imageRepo.EXPECT().RecordFailed(gomock.Any(), 9).Return(nil)

	assert.NoError(t, f.job.Reconcile(context.Background()))
}

func TestReconcileSkipsWhenDownloaderUnreachable(t *testing.T) {
	f := setupReconcileJob(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	client, err := gopeed.NewClient(server.URL, "")
	assert.NoError(t, err)

	// 下载器不可用时整轮跳过，注册表不应被触碰
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	assert.NoError(t, f.job.Reconcile(context.Background()))
}

func TestReconcileQueryFailureResetsRecord(t *testing.T) {
	f := setupReconcileJob(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/info", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{}}`)
	})
	mux.HandleFunc("/api/v1/tasks/task-bad", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/tasks/task-done", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-done","status":"done"}}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client, err := gopeed.NewClient(server.URL, "")
	assert.NoError(t, err)

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	// 状态查询失败的资源重置为可重试，且不影响其余资源的对账
	f.fileRepo.EXPECT().ListActive(gomock.Any()).Return([]*model.ModelFile{
		{FileID: 1, TaskID: taskRef("task-bad")},
		{FileID: 2, TaskID: taskRef("task-done")},
	}, nil)
	f.imageRepo.EXPECT().ListActive(gomock.Any()).Return(nil, nil)

	f.fileRepo.EXPECT().RecordFailed(gomock.Any(), 1).Return(nil)
	f.fileRepo.EXPECT().RecordFinished(gomock.Any(), 2).Return(nil)

	assert.NoError(t, f.job.Reconcile(context.Background()))
}
