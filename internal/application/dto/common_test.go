package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_RedondeaHaciaArriba(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"total exacto", 1, 10, 20, 2},
		{"resto parcial", 1, 10, 21, 3},
		{"menos que una página", 1, 10, 3, 1},
		{"sin elementos", 1, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.wantPages, p.TotalPages)
			assert.Equal(t, tc.total, p.TotalItems)
			assert.Equal(t, tc.limit, p.ItemsPerPage)
		})
	}
}

func TestPageRequest_Normalize(t *testing.T) {
	p := PageRequest{}
	p.Normalize(20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PageRequest{Page: -2, Limit: 500}
	p.Normalize(20)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit, "el límite se acota a 100")
}

func TestPageRequest_Offset(t *testing.T) {
	p := PageRequest{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}
