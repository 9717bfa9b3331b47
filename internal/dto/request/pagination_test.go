package request

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PaginatedRequest
		want PaginatedRequest
	}{
		{"defaults", PaginatedRequest{}, PaginatedRequest{Page: DefaultPage, Limit: DefaultLimit}},
		{"negative", PaginatedRequest{Page: -2, Limit: -5}, PaginatedRequest{Page: DefaultPage, Limit: DefaultLimit}},
		{"limit capped", PaginatedRequest{Page: 3, Limit: 1000}, PaginatedRequest{Page: 3, Limit: MaxLimit}},
		{"huge page kept for validation", PaginatedRequest{Page: MaxPage + 1, Limit: 100}, PaginatedRequest{Page: MaxPage + 1, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPaginatedRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginatedRequest{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PaginatedRequest{Page: 3, Limit: 20}.Offset())

	last := PaginatedRequest{Page: MaxPage, Limit: MaxLimit}.Offset()
	assert.Positive(t, last)
	assert.LessOrEqual(t, last, math.MaxInt32)

	// never negative, even for a page validation would reject
	assert.Equal(t, 0, PaginatedRequest{Page: MaxPage + 1, Limit: 100}.Offset())
}
