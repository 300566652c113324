//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tp(t time.Time) *time.Time {
	return &t
}

func TestNewWindow(t *testing.T) {
	start := time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	testCases := []struct {
		name    string
		start   *time.Time
		end     *time.Time
		wantErr bool
	}{
		{name: "valid window", start: tp(start), end: tp(end)},
		{name: "missing start", start: nil, end: tp(end), wantErr: true},
		{name: "missing end", start: tp(start), end: nil, wantErr: true},
		{name: "missing both", wantErr: true},
		{name: "start equals end", start: tp(start), end: tp(start), wantErr: true},
		{name: "start after end", start: tp(end), end: tp(start), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := reservation.NewWindow(tc.start, tc.end)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidTime), "expected ErrInvalidTime, got %v", err)
				assert.Equal(t, reservation.Window{}, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, start, w.Start())
			assert.Equal(t, end, w.End())
			assert.Equal(t, time.Hour, w.Duration())
		})
	}
}

func TestWindow_StoresUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	start := time.Date(2026, 12, 25, 21, 0, 0, 0, tokyo)
	end := start.Add(2 * time.Hour)

	w, err := reservation.NewWindow(&start, &end)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, w.Start().Location())
	assert.True(t, w.Start().Equal(start))
	assert.Equal(t, "[2026-12-25T12:00:00Z,2026-12-25T14:00:00Z)", w.String())
}

func TestWindow_Overlaps(t *testing.T) {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	mk := func(fromH, toH int) reservation.Window {
		w, err := reservation.NewWindow(tp(base.Add(time.Duration(fromH)*time.Hour)), tp(base.Add(time.Duration(toH)*time.Hour)))
		require.NoError(t, err)
		return w
	}

	testCases := []struct {
		name string
		a, b reservation.Window
		want bool
	}{
		{name: "identical", a: mk(0, 2), b: mk(0, 2), want: true},
		{name: "partial overlap", a: mk(0, 2), b: mk(1, 3), want: true},
		{name: "contained", a: mk(0, 4), b: mk(1, 2), want: true},
		{name: "adjacent is not overlap", a: mk(0, 2), b: mk(2, 4), want: false},
		{name: "disjoint", a: mk(0, 1), b: mk(3, 4), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestNewBounds(t *testing.T) {
	start := time.Date(2026, 12, 25, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("unbounded", func(t *testing.T) {
		b, err := reservation.NewBounds(nil, nil)
		require.NoError(t, err)
		assert.True(t, b.IsUnbounded())
		assert.Nil(t, b.Start())
		assert.Nil(t, b.End())
	})

	t.Run("half open sides are allowed", func(t *testing.T) {
		b, err := reservation.NewBounds(&start, nil)
		require.NoError(t, err)
		assert.False(t, b.IsUnbounded())
		require.NotNil(t, b.Start())
		assert.Equal(t, start, *b.Start())

		b, err = reservation.NewBounds(nil, &end)
		require.NoError(t, err)
		require.NotNil(t, b.End())
		assert.Equal(t, end, *b.End())
	})

	t.Run("inverted bounds", func(t *testing.T) {
		_, err := reservation.NewBounds(&end, &start)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTime))
	})
}
