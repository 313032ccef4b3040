package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   joinedCategory
	}{
		{
			name:   "single object",
			raw:    `{"id":"c1","name":"Phones","slug":"phones"}`,
			wantOK: true,
			want:   joinedCategory{ID: "c1", Name: "Phones", Slug: "phones"},
		},
		{
			name:   "one-element array",
			raw:    `[{"id":"c1","name":"Phones","slug":"phones"}]`,
			wantOK: true,
			want:   joinedCategory{ID: "c1", Name: "Phones", Slug: "phones"},
		},
		{
			name:   "multi-element array takes first",
			raw:    `[{"id":"c1","name":"Phones","slug":"phones"},{"id":"c2","name":"Audio","slug":"audio"}]`,
			wantOK: true,
			want:   joinedCategory{ID: "c1", Name: "Phones", Slug: "phones"},
		},
		{name: "empty array", raw: `[]`, wantOK: false},
		{name: "empty input", raw: ``, wantOK: false},
		{name: "null element", raw: `[null]`, wantOK: false},
		{name: "garbage", raw: `not json`, wantOK: false},
		{name: "object without id", raw: `{"name":"Phones"}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeCategory([]byte(tt.raw))
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
