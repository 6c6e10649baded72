package console_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"lms-admin/internal/console"
	"lms-admin/internal/domain/entity"
	"lms-admin/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferences_FetchesBothCollections(t *testing.T) {
	var categoryHits, instructorHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/categories":
			categoryHits.Add(1)
			assert.Equal(t, "100", r.URL.Query().Get("limit"))
			listResponse(t, w, []entity.Category{
				{ID: 1, Name: "Backend"},
				{ID: 2, Name: "Frontend"},
			}, 2)
		case "/v1/instructors":
			instructorHits.Add(1)
			listResponse(t, w, []entity.Instructor{
				{ID: 7, Name: "Dana"},
			}, 1)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	reg := newRegistry(t, srv.URL)
	refs, err := console.LoadReferences(context.Background(), reg)
	require.NoError(t, err)

	assert.Equal(t, int32(1), categoryHits.Load())
	assert.Equal(t, int32(1), instructorHits.Load())
	require.Len(t, refs.Categories, 2)
	require.Len(t, refs.Instructors, 1)

	assert.True(t, refs.HasCategory(2))
	assert.False(t, refs.HasCategory(99))
	assert.True(t, refs.HasInstructor(7))
	assert.False(t, refs.HasInstructor(1))
}

func TestLoadReferences_EitherFailureFailsTheLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/instructors" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "backend down"})
			return
		}
		listResponse(t, w, []entity.Category{{ID: 1, Name: "Backend"}}, 1)
	}))
	defer srv.Close()

	reg := newRegistry(t, srv.URL)
	refs, err := console.LoadReferences(context.Background(), reg)
	require.Error(t, err)

	var listErr *resource.ListError
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, "instructors", listErr.Entity)
	assert.Empty(t, refs.Categories)
}
