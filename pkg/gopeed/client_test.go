package gopeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/tasks", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Token"))

		var params CreateTaskParams
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "https://cdn.example.com/file.safetensors", params.Request.URL)
		assert.Equal(t, "file.safetensors", params.Options.Name)
		assert.Equal(t, "/data/models", params.Options.Path)

		fmt.Fprint(w, `{"code":0,"data":"task-1"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret")
	assert.NoError(t, err)

	taskID, err := client.CreateTask(context.Background(), &CreateTaskParams{
		Request: TaskRequest{URL: "https://cdn.example.com/file.safetensors"},
		Options: TaskOptions{Name: "file.safetensors", Path: "/data/models"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "task-1", taskID)
}

func TestGetTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tasks/task-1", r.URL.Path)
		fmt.Fprint(w, `{"code":0,"data":{"id":"task-1","status":"running","progress":{"downloaded":2048,"speed":512},"size":4096}}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	task, err := client.GetTask(context.Background(), "task-1")
	assert.NoError(t, err)
	assert.Equal(t, TaskStatusRunning, task.Status)
	assert.Equal(t, int64(2048), task.Progress.Downloaded)
	assert.Equal(t, int64(4096), task.Size)
}

func TestGetTaskNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	_, err = client.GetTask(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTaskForce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/tasks/task-1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		fmt.Fprint(w, `{"code":0}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	assert.NoError(t, client.DeleteTask(context.Background(), "task-1", true))
}

func TestPauseAndContinueTask(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		paths = append(paths, r.URL.Path)
		fmt.Fprint(w, `{"code":0}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	assert.NoError(t, client.PauseTask(context.Background(), "task-1"))
	assert.NoError(t, client.ContinueTask(context.Background(), "task-1"))
	assert.Equal(t, []string{"/api/v1/tasks/task-1/pause", "/api/v1/tasks/task-1/continue"}, paths)
}

func TestBusinessErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":1001,"msg":"invalid request"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	_, err = client.GetTask(context.Background(), "task-1")
	var apiErr *ApiError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid request", apiErr.Message)
}
