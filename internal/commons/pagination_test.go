package commons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	cases := []struct {
		name string
		p    Pagination
		want []int
	}{
		{"zero window returns everything", Pagination{}, []int{1, 2, 3, 4, 5}},
		{"offset skips", Pagination{Offset: 2}, []int{3, 4, 5}},
		{"limit caps", Pagination{Limit: 2}, []int{1, 2}},
		{"offset and limit", Pagination{Offset: 1, Limit: 2}, []int{2, 3}},
		{"limit past end", Pagination{Offset: 3, Limit: 10}, []int{4, 5}},
		{"offset past end", Pagination{Offset: 10}, []int{}},
		{"negative offset treated as zero", Pagination{Offset: -3, Limit: 1}, []int{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Paginate(items, tc.p))
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate([]string{}, Pagination{Limit: 5}))
}
