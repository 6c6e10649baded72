package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lms-admin/internal/apiclient"
	"lms-admin/internal/requestid"
	"lms-admin/internal/resilience/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type course struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func newClient(t *testing.T, serverURL string, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	opts = append([]apiclient.Option{apiclient.WithRetryConfig(retry.NoRetryConfig())}, opts...)
	c, err := apiclient.New(serverURL, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	tests := []string{"", "not-a-url", "ftp://example.com", "/just/a/path"}
	for _, baseURL := range tests {
		t.Run(baseURL, func(t *testing.T) {
			_, err := apiclient.New(baseURL)
			assert.Error(t, err)
		})
	}
}

func TestGetData_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/courses/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 7, "title": "Go 101"},
		})
	}))
	defer server.Close()

	res := apiclient.GetData[course](context.Background(), newClient(t, server.URL), "/v1/courses/7", nil)

	require.True(t, res.Success, res.Message)
	assert.Equal(t, course{ID: 7, Title: "Go 101"}, res.Data)
}

func TestGetData_QueryStringForwarded(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	query := apiclient.NewQuery().Set("page", "1").Bool("deleted", boolPtr(false)).Values()
	apiclient.GetData[struct{}](context.Background(), newClient(t, server.URL), "/v1/courses", query)

	assert.Contains(t, gotQuery, "deleted=false")
	assert.Contains(t, gotQuery, "page=1")
}

func TestGetData_ServerErrorBecomesFailureResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"database down"}`))
	}))
	defer server.Close()

	res := apiclient.GetData[course](context.Background(), newClient(t, server.URL), "/v1/courses/1", nil)

	assert.False(t, res.Success)
	assert.Equal(t, "database down", res.Message)
}

func TestGetData_NetworkFailureBecomesFailureResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately, so the port refuses connections

	res := apiclient.GetData[course](context.Background(), newClient(t, server.URL), "/v1/courses/1", nil)

	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestGetData_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": 1}})
	}))
	defer server.Close()

	c, err := apiclient.New(server.URL, apiclient.WithRetryConfig(retry.Config{
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}))
	require.NoError(t, err)

	res := apiclient.GetData[course](context.Background(), c, "/v1/courses/1", nil)

	assert.True(t, res.Success, res.Message)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPostData_JSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Go 101", body["title"])
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": 9, "title": "Go 101"}})
	}))
	defer server.Close()

	res := apiclient.PostData[course](context.Background(), newClient(t, server.URL), "/v1/courses", map[string]any{"title": "Go 101"})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, int64(9), res.Data.ID)
}

func TestPostData_MultipartBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"), contentType)
		assert.NotContains(t, contentType, "application/json")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Lesson 1", r.FormValue("title"))
		_, header, err := r.FormFile("thumbnail")
		require.NoError(t, err)
		assert.Equal(t, "thumb.png", header.Filename)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	form := apiclient.NewForm().
		Set("title", "Lesson 1").
		AddFile("thumbnail", "thumb.png", strings.NewReader("png"))
	res := apiclient.PostData[struct{}](context.Background(), newClient(t, server.URL), "/v1/lessons", form)

	assert.True(t, res.Success, res.Message)
}

func TestPostData_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	res := apiclient.PostData[struct{}](context.Background(), newClient(t, server.URL), "/v1/courses", map[string]any{})

	assert.False(t, res.Success)
	assert.Equal(t, int32(1), calls.Load(), "mutations must never be replayed")
}

func TestDeleteData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/courses/soft/5", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "course deleted"})
	}))
	defer server.Close()

	res := apiclient.DeleteData(context.Background(), newClient(t, server.URL), "/v1/courses/soft/5")

	assert.True(t, res.Success)
	assert.Equal(t, "course deleted", res.Message)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	c := newClient(t, server.URL, apiclient.WithTokenSource(apiclient.NewStaticTokenSource("tok-123")))
	res := apiclient.GetData[struct{}](context.Background(), c, "/v1/users", nil)

	assert.True(t, res.Success, res.Message)
}

func TestClient_AttachesRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(requestid.RequestIDHeader)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	ctx := requestid.WithRequestID(context.Background(), "req-outer")
	apiclient.GetData[struct{}](ctx, newClient(t, server.URL), "/v1/users", nil)

	assert.Equal(t, "req-outer", gotID)
}

func boolPtr(v bool) *bool { return &v }
