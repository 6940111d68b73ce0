package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page, size int
		wantFrom   int
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page clamps", 0, 10, 0, 10},
		{"negative page clamps", -5, 10, 0, 10},
		{"zero size defaults", 2, 0, 10, DefaultPageSize},
		{"oversized clamps", 1, 500, 0, DefaultPageSize},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			from, limit := Calculate(tc.page, tc.size)
			require.Equal(t, tc.wantFrom, from)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}
