package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name        string
		limit, page int
		want        Page
	}{
		{name: "first page", limit: 10, page: 1, want: Page{Limit: 10, Offset: 0}},
		{name: "second page", limit: 10, page: 2, want: Page{Limit: 10, Offset: 10}},
		{name: "defaults", limit: 0, page: 0, want: Page{Limit: DefaultPageLimit, Offset: 0}},
		{name: "negative page", limit: 5, page: -3, want: Page{Limit: 5, Offset: 0}},
		{name: "limit capped", limit: 1000, page: 2, want: Page{Limit: maxPageLimit, Offset: maxPageLimit}},
		{name: "huge page does not overflow", limit: 10, page: math.MaxInt, want: Page{Limit: 10, Offset: (math.MaxInt/10 - 1) * 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPage(tt.limit, tt.page)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.Offset, 0)
		})
	}
}
