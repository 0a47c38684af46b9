package service_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "civistash/api/v1"
	"civistash/internal/service"
	"civistash/pkg/civitai"
	"civistash/pkg/jwt"
	"civistash/pkg/sid"
	mock_repository "civistash/test/mocks/repository"
	mock_service "civistash/test/mocks/service"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// fakeTransaction 直接执行回调，测试里不需要真实事务语义
type fakeTransaction struct{}

func (fakeTransaction) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type downloadFixture struct {
	svc         service.DownloadService
	gateway     *mock_service.MockGatewayService
	taskService *mock_service.MockDownloadTaskService
	modelRepo   *mock_repository.MockCivitaiModelRepository
	versionRepo *mock_repository.MockModelVersionRepository
	fileRepo    *mock_repository.MockModelFileRepository
	imageRepo   *mock_repository.MockModelImageRepository
}

func setupDownloadService(t *testing.T) *downloadFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := newTestLogger()
	base := service.NewService(fakeTransaction{}, logger, sid.NewSid(), jwt.NewJwt(viper.New()))
	gateway := mock_service.NewMockGatewayService(ctrl)
	taskService := mock_service.NewMockDownloadTaskService(ctrl)
	modelRepo := mock_repository.NewMockCivitaiModelRepository(ctrl)
	versionRepo := mock_repository.NewMockModelVersionRepository(ctrl)
	fileRepo := mock_repository.NewMockModelFileRepository(ctrl)
	imageRepo := mock_repository.NewMockModelImageRepository(ctrl)

	svc := service.NewDownloadService(base, gateway, taskService, modelRepo, versionRepo, fileRepo, imageRepo, logger)
	return &downloadFixture{
		svc:         svc,
		gateway:     gateway,
		taskService: taskService,
		modelRepo:   modelRepo,
		versionRepo: versionRepo,
		fileRepo:    fileRepo,
		imageRepo:   imageRepo,
	}
}

func sampleModel(serverURL string) civitai.Model {
	return civitai.Model{
		ID:   42,
		Name: "Landscape Mixer",
		Type: "Checkpoint",
		ModelVersions: []civitai.ModelVersion{
			{
				ID:   100,
				Name: "v1.0",
				Files: []civitai.ModelFile{
					{ID: 1000, Name: "file.safetensors", SizeKB: 2048, DownloadUrl: serverURL + "/download/models/100"},
				},
				Images: []civitai.ModelImage{
					{ID: 2000, URL: serverURL + "/images/preview.jpeg", Width: 512, Height: 768},
				},
			},
		},
	}
}

func TestStartDownloadDownloaderUnavailable(t *testing.T) {
	f := setupDownloadService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	_, err := f.svc.StartDownload(context.Background(), &v1.StartDownloadRequest{
		Model:          sampleModel("http://example.com"),
		ModelVersionID: 100,
	})
	assert.ErrorIs(t, err, v1.ErrDownloaderUnavailable)
}

func TestStartDownloadVersionNotFound(t *testing.T) {
	f := setupDownloadService(t)

	client := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{}}`)
	}))
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(client, nil)

	_, err := f.svc.StartDownload(context.Background(), &v1.StartDownloadRequest{
		Model:          sampleModel("http://example.com"),
		ModelVersionID: 999,
	})
	assert.ErrorIs(t, err, v1.ErrVersionNotFound)
}

func TestStartDownloadResolveUnauthorized(t *testing.T) {
	f := setupDownloadService(t)

	downloader := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{}}`)
	}))
	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(downloader, nil)

	// 无 token 的客户端解析直链直接失败，整个会话失败且不落库
	upstream, err := civitai.NewClient("http://example.com", "")
	assert.NoError(t, err)
	f.gateway.EXPECT().CivitaiClient(gomock.Any()).Return(upstream, nil)

	_, err = f.svc.StartDownload(context.Background(), &v1.StartDownloadRequest{
		Model:          sampleModel("http://example.com"),
		ModelVersionID: 100,
	})
	assert.ErrorIs(t, err, v1.ErrResolveUnauthorized)
}

func TestStartDownloadSuccess(t *testing.T) {
	f := setupDownloadService(t)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/download/models/100", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+"/cdn/file.safetensors?sig=xyz", http.StatusFound)
	})
	mux.HandleFunc("/cdn/file.safetensors", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	downloader := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{}}`)
	}))
	upstream, err := civitai.NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(downloader, nil)
	f.gateway.EXPECT().CivitaiClient(gomock.Any()).Return(upstream, nil)
	f.gateway.EXPECT().SaveRoot(gomock.Any()).Return("/data/models")

	f.modelRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.versionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.fileRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.imageRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	// 文件任务创建成功后由编排层落注册表，预览图已有活动任务被跳过，会话仍然成功
	f.taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec *service.TaskSpec) (string, error) {
			assert.Equal(t, 1000, spec.ResourceID)
			assert.False(t, spec.IsMedia)
			assert.Equal(t, server.URL+"/cdn/file.safetensors?sig=xyz", spec.Url)
			return "task-file", nil
		})
	f.fileRepo.EXPECT().RecordCreated(gomock.Any(), 1000, "task-file").Return(nil)
	f.taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec *service.TaskSpec) (string, error) {
			assert.Equal(t, 2000, spec.ResourceID)
			assert.True(t, spec.IsMedia)
			return "", v1.ErrTaskDuplicate
		})

	result, err := f.svc.StartDownload(context.Background(), &v1.StartDownloadRequest{
		Model:          sampleModel(server.URL),
		ModelVersionID: 100,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"task-file"}, result.FileTaskIds)
	assert.Empty(t, result.MediaTaskIds)
}

func TestStartDownloadAllCreationsRejected(t *testing.T) {
	f := setupDownloadService(t)

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	mux.HandleFunc("/download/models/100", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	downloader := newDownloaderClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":0,"data":{}}`)
	}))
	upstream, err := civitai.NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	f.gateway.EXPECT().DownloaderClient(gomock.Any()).Return(downloader, nil)
	f.gateway.EXPECT().CivitaiClient(gomock.Any()).Return(upstream, nil)
	f.gateway.EXPECT().SaveRoot(gomock.Any()).Return("/data/models")

	f.modelRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.versionRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.fileRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.imageRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	// 所有创建都被下载器拒绝时整个会话失败，不落任何注册表记录
	f.taskService.EXPECT().CreateTask(gomock.Any(), gomock.Any()).
		Return("", v1.ErrDownloaderApi).Times(2)

	_, err = f.svc.StartDownload(context.Background(), &v1.StartDownloadRequest{
		Model:          sampleModel(server.URL),
		ModelVersionID: 100,
	})
	assert.ErrorIs(t, err, v1.ErrDownloaderApi)
}
