package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOffset(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 10, want: 0},
		{name: "second page", page: 2, limit: 10, want: 10},
		{name: "third page smaller limit", page: 3, limit: 5, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateOffset(tt.page, tt.limit))
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "empty list still has one page", total: 0, limit: 10, want: 1},
		{name: "partial page", total: 7, limit: 10, want: 1},
		{name: "exact boundary", total: 30, limit: 10, want: 3},
		{name: "attendance scenario", total: 23, limit: 10, want: 3},
		{name: "single item pages", total: 5, limit: 1, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalPages(tt.total, tt.limit))
		})
	}
}

func TestParams_WithDefaults(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{name: "zero values filled", in: Params{}, want: Params{Page: 1, Limit: 10}},
		{name: "negative page reset", in: Params{Page: -2, Limit: 25}, want: Params{Page: 1, Limit: 25}},
		{name: "limit capped", in: Params{Page: 4, Limit: 500}, want: Params{Page: 4, Limit: 100}},
		{name: "valid untouched", in: Params{Page: 3, Limit: 50}, want: Params{Page: 3, Limit: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.WithDefaults(cfg))
		})
	}
}

func TestParams_Validate(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, Params{Page: 1, Limit: 10}.Validate(cfg))
	assert.Error(t, Params{Page: 0, Limit: 10}.Validate(cfg))
	assert.Error(t, Params{Page: 1, Limit: 0}.Validate(cfg))
	assert.Error(t, Params{Page: 1, Limit: cfg.MaxLimit + 1}.Validate(cfg))
}

func TestParams_Encode(t *testing.T) {
	values := url.Values{}
	Params{Page: 3, Limit: 10}.Encode(values)

	assert.Equal(t, "3", values.Get("page"))
	assert.Equal(t, "10", values.Get("limit"))
}

func TestMetadata_Normalize(t *testing.T) {
	t.Run("fills missing total pages", func(t *testing.T) {
		m := Metadata{Total: 23, Page: 1, Limit: 10}.Normalize()
		assert.Equal(t, 3, m.TotalPages)
	})

	t.Run("keeps server-provided total pages", func(t *testing.T) {
		m := Metadata{Total: 23, Page: 1, Limit: 10, TotalPages: 3}.Normalize()
		assert.Equal(t, 3, m.TotalPages)
	})

	t.Run("zero limit left as-is", func(t *testing.T) {
		m := Metadata{}.Normalize()
		assert.Equal(t, 0, m.TotalPages)
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "25")

	cfg := LoadFromEnv()
	assert.Equal(t, 1, cfg.DefaultPage)
	assert.Equal(t, 25, cfg.DefaultLimit)
	assert.Equal(t, 100, cfg.MaxLimit)
}
