package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of many", 1, 10, 35, 4, true, false},
		{"middle page", 2, 10, 35, 4, true, true},
		{"last page", 4, 10, 35, 4, false, true},
		{"exact fit", 2, 10, 20, 2, false, true},
		{"empty result", 1, 10, 0, 0, false, false},
		{"single partial page", 1, 20, 7, 1, false, false},
		{"page past the end", 5, 10, 12, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			require.Equal(t, tt.page, p.CurrentPage)
			require.Equal(t, tt.totalPages, p.TotalPages)
			require.Equal(t, tt.total, p.Total)
			require.Equal(t, tt.hasNext, p.HasNext)
			require.Equal(t, tt.hasPrev, p.HasPrev)
		})
	}
}

func TestEnvelopes(t *testing.T) {
	t.Parallel()

	ok := Success("payload")
	require.True(t, ok.Success)
	require.Equal(t, "payload", ok.Data)

	withMsg := SuccessWithMessage("created", 42)
	require.True(t, withMsg.Success)
	require.Equal(t, "created", withMsg.Message)

	fail := FailureWithDetail("boom", "connection refused")
	require.False(t, fail.Success)
	require.Equal(t, "boom", fail.Message)
	require.Equal(t, "connection refused", fail.Detail)
}
