//go:build unit

package reservation_test

import (
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusUnknown,
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusBlocked,
	}

	for _, from := range all {
		for _, to := range all {
			want := from == reservation.StatusPending && to == reservation.StatusConfirmed
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_IsPersistable(t *testing.T) {
	assert.False(t, reservation.StatusUnknown.IsPersistable())
	assert.True(t, reservation.StatusPending.IsPersistable())
	assert.True(t, reservation.StatusConfirmed.IsPersistable())
	assert.True(t, reservation.StatusBlocked.IsPersistable())
	assert.False(t, reservation.Status(42).IsPersistable())
	assert.False(t, reservation.Status(42).IsValid())
	assert.Equal(t, "invalid", reservation.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	testCases := []struct {
		raw     string
		want    reservation.Status
		wantErr bool
	}{
		{raw: "", want: reservation.StatusUnknown},
		{raw: "pending", want: reservation.StatusPending},
		{raw: " Confirmed ", want: reservation.StatusConfirmed},
		{raw: "BLOCKED", want: reservation.StatusBlocked},
		{raw: "unknown", want: reservation.StatusUnknown},
		{raw: "cancelled", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := reservation.ParseStatus(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrInvalidStatus))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
