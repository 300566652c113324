//go:build unit

package reservation_test

import (
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/pkg/pager"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 {
	return &v
}

func TestFilter_Normalize(t *testing.T) {
	f := reservation.Filter{UserID: "luckychacha-id"}

	require.NoError(t, f.NormalizeAndValidate())

	assert.Equal(t, reservation.StatusPending, f.Status)
	assert.Equal(t, reservation.DefaultPageSize, f.PageSize)
	assert.Nil(t, f.Cursor)
	assert.Equal(t, int64(0), f.CursorOrDefault())
	assert.Equal(t, int64(11), f.FetchLimit())
}

func TestFilter_NormalizeKeepsExplicitValues(t *testing.T) {
	f := reservation.Filter{Status: reservation.StatusBlocked, PageSize: 50, Cursor: i64(3), Desc: true}

	require.NoError(t, f.NormalizeAndValidate())

	assert.Equal(t, reservation.StatusBlocked, f.Status)
	assert.Equal(t, int64(50), f.PageSize)
	assert.Equal(t, int64(3), f.CursorOrDefault())
	assert.Equal(t, int64(52), f.FetchLimit())
}

func TestFilter_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		filter  reservation.Filter
		wantErr error
	}{
		{name: "min size", filter: reservation.Filter{PageSize: 10}},
		{name: "max size", filter: reservation.Filter{PageSize: 100}},
		{name: "below min", filter: reservation.Filter{PageSize: 9}, wantErr: errs.ErrInvalidPageSize},
		{name: "above max", filter: reservation.Filter{PageSize: 101}, wantErr: errs.ErrInvalidPageSize},
		{name: "negative size", filter: reservation.Filter{PageSize: -1}, wantErr: errs.ErrInvalidPageSize},
		{name: "negative cursor", filter: reservation.Filter{Cursor: i64(-1)}, wantErr: errs.ErrInvalidCursor},
		{name: "zero cursor", filter: reservation.Filter{Cursor: i64(0)}},
		{name: "bad status", filter: reservation.Filter{Status: reservation.Status(9)}, wantErr: errs.ErrInvalidStatus},
		{
			name:    "page size reported before cursor",
			filter:  reservation.Filter{PageSize: 500, Cursor: i64(-3)},
			wantErr: errs.ErrInvalidPageSize,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.filter
			err := f.NormalizeAndValidate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestFilter_CursorOrDefaultDesc(t *testing.T) {
	f := reservation.Filter{Desc: true}
	assert.Equal(t, int64(1<<63-1), f.CursorOrDefault())
}

func TestFilter_NextAndPrevPage(t *testing.T) {
	f := reservation.Filter{
		ResourceID: "ocean-view-room-713",
		UserID:     "luckychacha-id",
		Status:     reservation.StatusConfirmed,
		Cursor:     i64(10),
		PageSize:   10,
		Desc:       true,
	}
	pg := pager.Pager{Prev: i64(11), Next: i64(20)}

	next, ok := f.NextPage(pg)
	require.True(t, ok)
	want := f
	want.Cursor = i64(20)
	if diff := cmp.Diff(want, next); diff != "" {
		t.Errorf("next page mismatch (-want +got):\n%s", diff)
	}

	prev, ok := f.PrevPage(pg)
	require.True(t, ok)
	want.Cursor = i64(11)
	if diff := cmp.Diff(want, prev); diff != "" {
		t.Errorf("prev page mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(10), *f.Cursor, "receiver must be untouched")

	_, ok = f.NextPage(pager.Pager{})
	assert.False(t, ok)
	_, ok = f.PrevPage(pager.Pager{})
	assert.False(t, ok)
}
