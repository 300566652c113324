//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"reservation-service/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exclusionDetail = `Key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")) ` +
	`conflicts with existing key (resource_id, timespan)=(ocean-view-room-713, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).`

func TestParseConflictInfo_Parsed(t *testing.T) {
	info := reservation.ParseConflictInfo(exclusionDetail)

	require.True(t, info.IsParsed())
	want := &reservation.Conflict{
		New: reservation.ConflictWindow{
			ResourceID: "ocean-view-room-713",
			Start:      time.Date(2022, 12, 26, 22, 0, 0, 0, time.UTC),
			End:        time.Date(2022, 12, 30, 19, 0, 0, 0, time.UTC),
		},
		Old: reservation.ConflictWindow{
			ResourceID: "ocean-view-room-713",
			Start:      time.Date(2022, 12, 25, 22, 0, 0, 0, time.UTC),
			End:        time.Date(2022, 12, 28, 19, 0, 0, 0, time.UTC),
		},
	}
	if diff := cmp.Diff(want, info.Conflict); diff != "" {
		t.Errorf("conflict mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, exclusionDetail, info.Raw)
}

func TestParseConflictInfo_NonUTCOffset(t *testing.T) {
	detail := `Key (resource_id, timespan)=(room-1, ["2022-12-26 07:00:00+09","2022-12-26 09:00:00+09")) ` +
		`conflicts with existing key (resource_id, timespan)=(room-1, ["2022-12-26 06:00:00+09:00","2022-12-26 08:00:00+09:00")).`

	info := reservation.ParseConflictInfo(detail)

	require.True(t, info.IsParsed())
	assert.Equal(t, time.Date(2022, 12, 25, 22, 0, 0, 0, time.UTC), info.Conflict.New.Start)
	assert.Equal(t, time.Date(2022, 12, 25, 21, 0, 0, 0, time.UTC), info.Conflict.Old.Start)
}

func TestParseConflictInfo_Unparsed(t *testing.T) {
	testCases := []struct {
		name   string
		detail string
	}{
		{name: "empty", detail: ""},
		{name: "free text", detail: "something went wrong"},
		{
			name:   "single group",
			detail: `Key (resource_id, timespan)=(room-1, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")).`,
		},
		{
			name: "three groups",
			detail: exclusionDetail +
				` (resource_id, timespan)=(room-1, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00"))`,
		},
		{
			name: "bad time",
			detail: `Key (resource_id, timespan)=(room-1, ["yesterday","2022-12-30 19:00:00+00")) ` +
				`conflicts with existing key (resource_id, timespan)=(room-1, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).`,
		},
		{
			name: "missing resource key",
			detail: `Key (user_id, timespan)=(someone, ["2022-12-26 22:00:00+00","2022-12-30 19:00:00+00")) ` +
				`conflicts with existing key (user_id, timespan)=(someone, ["2022-12-25 22:00:00+00","2022-12-28 19:00:00+00")).`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := reservation.ParseConflictInfo(tc.detail)
			assert.False(t, info.IsParsed())
			assert.Nil(t, info.Conflict)
			assert.Equal(t, tc.detail, info.Raw)
			assert.Equal(t, tc.detail, info.String())
		})
	}
}

func TestConflictError_Error(t *testing.T) {
	err := &reservation.ConflictError{Info: reservation.ParseConflictInfo(exclusionDetail)}

	assert.Equal(t,
		"reservation conflict: new ocean-view-room-713 [2022-12-26T22:00:00Z,2022-12-30T19:00:00Z) "+
			"conflicts with old ocean-view-room-713 [2022-12-25T22:00:00Z,2022-12-28T19:00:00Z)",
		err.Error(),
	)
}
