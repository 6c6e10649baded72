package actions_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"lms-admin/internal/domain/entity"
	"lms-admin/internal/notify"
	"lms-admin/internal/usecase/actions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchRecorder struct {
	mu     sync.Mutex
	bodies []map[string]any
	paths  []string
	fail   bool
}

func (p *patchRecorder) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(raw, &body)
		p.bodies = append(p.bodies, body)
		p.paths = append(p.paths, r.URL.Path)
		fail := p.fail
		p.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "validation failed"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "saved"})
	}
}

func (p *patchRecorder) snapshot() ([]string, []map[string]any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.paths...), append([]map[string]any(nil), p.bodies...)
}

func TestInlineEditor_DebounceCollapsesToLatestValue(t *testing.T) {
	rec := &patchRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	list := &refetchSpy{}
	e := actions.NewInlineEditor(newResource(t, srv.URL, "courses"), list, notify.NewRecorder(), nil)
	ctx := context.Background()

	// Rapid edits to the same cell collapse into one PATCH with the last value.
	e.Set(ctx, 5, "title", "G")
	e.Set(ctx, 5, "title", "Go")
	e.Set(ctx, 5, "title", "Go Basics")
	e.Flush(ctx)

	paths, bodies := rec.snapshot()
	require.Len(t, paths, 1)
	assert.Equal(t, "/v1/courses/5", paths[0])
	assert.Equal(t, map[string]any{"title": "Go Basics"}, bodies[0])
	assert.Equal(t, int32(1), list.calls.Load())
}

func TestInlineEditor_DistinctCellsCommitIndependently(t *testing.T) {
	rec := &patchRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	e := actions.NewInlineEditor(newResource(t, srv.URL, "courses"), &refetchSpy{}, notify.NewRecorder(), nil)
	ctx := context.Background()

	e.Set(ctx, 5, "title", "Go Basics")
	e.Set(ctx, 5, "published", true)
	e.Set(ctx, 6, "title", "Advanced Go")
	e.Flush(ctx)

	paths, _ := rec.snapshot()
	assert.Len(t, paths, 3)
}

func TestInlineEditor_FailedPatchRefetchesBackendTruth(t *testing.T) {
	rec := &patchRecorder{fail: true}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	list := &refetchSpy{}
	recorder := notify.NewRecorder()
	e := actions.NewInlineEditor(newResource(t, srv.URL, "courses"), list, recorder, nil)
	ctx := context.Background()

	e.Set(ctx, 9, "price", 0)
	e.Flush(ctx)

	// The edit is never applied locally: the refetch after the failed PATCH
	// is what the table renders from, so it shows the stored value.
	assert.Equal(t, int32(1), list.calls.Load())
	last, found := recorder.Last()
	require.True(t, found)
	assert.Equal(t, notify.SeverityError, last.Severity)
	assert.Contains(t, last.Message, "validation failed")
}

func TestInlineEditor_TimerFiresWithoutFlush(t *testing.T) {
	rec := &patchRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	e := actions.NewInlineEditor(newResource(t, srv.URL, "courses"), &refetchSpy{}, notify.NewRecorder(), nil,
		actions.WithDebounce[entity.Course](5*time.Millisecond))

	e.Set(context.Background(), 2, "title", "Renamed")

	require.Eventually(t, func() bool {
		paths, _ := rec.snapshot()
		return len(paths) == 1
	}, time.Second, time.Millisecond)
}

func TestInlineEditor_CloseDropsPendingEdits(t *testing.T) {
	rec := &patchRecorder{}
	srv := httptest.NewServer(rec.handler())
	defer srv.Close()

	e := actions.NewInlineEditor(newResource(t, srv.URL, "courses"), &refetchSpy{}, notify.NewRecorder(), nil)
	e.Set(context.Background(), 4, "title", "never sent")
	e.Close()
	e.Flush(context.Background())

	paths, _ := rec.snapshot()
	assert.Empty(t, paths)
}
