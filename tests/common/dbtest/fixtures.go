//go:build integration || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertReservation writes a row directly, bypassing the exclusion check only
// when status is not pending or confirmed.
func InsertReservation(t *testing.T, db DBLike, userID, resourceID string, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO rsvp.reservation (user_id, resource_id, timespan, status)
		VALUES ($1, $2, tstzrange($3, $4, '[)'), $5::rsvp.reservation_status)
		RETURNING id`,
		userID, resourceID, start, end, status,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountReservations(t *testing.T, db DBLike) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM rsvp.reservation").Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties the reservation table and restarts the id sequence so ids
// are predictable per test.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE rsvp.reservation RESTART IDENTITY CASCADE")
	return err
}
