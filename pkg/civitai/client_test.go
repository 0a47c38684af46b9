package civitai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":42,"name":"Landscape Mixer","type":"Checkpoint","modelVersions":[{"id":100,"name":"v1.0"}]}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	m, err := client.GetModel(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 42, m.ID)
	assert.Equal(t, "Landscape Mixer", m.Name)
	assert.Len(t, m.ModelVersions, 1)
	assert.Equal(t, 100, m.ModelVersions[0].ID)
}

func TestGetModelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	_, err = client.GetModel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetModelsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "landscape", r.URL.Query().Get("query"))
		assert.Equal(t, []string{"Checkpoint", "LORA"}, r.URL.Query()["types"])
		fmt.Fprint(w, `{"items":[{"id":1}],"metadata":{"nextCursor":"abc"}}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	result, err := client.GetModels(context.Background(), QueryParams{
		Limit: 20,
		Query: "landscape",
		Types: []string{"Checkpoint", "LORA"},
	})
	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "abc", result.Metadata.NextCursor)
}

func TestResolveDownloadURLFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/download/models/100", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		http.Redirect(w, r, server.URL+"/cdn/file.safetensors?sig=xyz", http.StatusFound)
	})
	mux.HandleFunc("/cdn/file.safetensors", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	client, err := NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	finalURL, err := client.ResolveDownloadURL(context.Background(), server.URL+"/download/models/100", "")
	assert.NoError(t, err)
	assert.Equal(t, server.URL+"/cdn/file.safetensors?sig=xyz", finalURL)
}

func TestResolveDownloadURLWithoutToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	assert.NoError(t, err)

	// 没有任何可用 token 时不发起网络请求
	_, err = client.ResolveDownloadURL(context.Background(), server.URL+"/download/models/100", "")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestResolveDownloadURLPerCallToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer per-call", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "client-token")
	assert.NoError(t, err)

	// 逐次传入的 token 优先于客户端配置的 token
	_, err = client.ResolveDownloadURL(context.Background(), server.URL+"/download", "per-call")
	assert.NoError(t, err)
}

func TestResolveDownloadURLUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "bad-token")
	assert.NoError(t, err)

	_, err = client.ResolveDownloadURL(context.Background(), server.URL+"/download", "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveDownloadURLServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	assert.NoError(t, err)

	_, err = client.ResolveDownloadURL(context.Background(), server.URL+"/download", "")
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}
