//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts a slot row directly, bypassing the application layers
func CreateTestSlot(t *testing.T, db DBLike, date string, teeMinutes, maxPlayers, priceCents int) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	slotTime := time.Date(0, 1, 1, teeMinutes/60, teeMinutes%60, 0, 0, time.UTC)
	_, err := db.Exec(ctx, `
		INSERT INTO tee_slots (id, slot_date, slot_time, max_players, price_cents)
		VALUES ($1, $2, $3, $4, $5)`,
		slotID, date, slotTime, maxPlayers, priceCents)
	require.NoError(t, err)

	return slotID
}

func AddTestPlayer(t *testing.T, db DBLike, slotID uuid.UUID, position int, userID, name, playerType, transport, holes string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO slot_players (slot_id, position, user_id, player_name, player_type, transport_mode, holes_playing)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		slotID, position, userID, name, playerType, transport, holes)
	require.NoError(t, err)
}

func CountPlayers(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM slot_players WHERE slot_id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountSlotsOnDate(t *testing.T, db DBLike, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM tee_slots WHERE slot_date = $1", date).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB wipes all slot state between subtests. TRUNCATE on the parent
// cascades to slot_players.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE tee_slots CASCADE")
	return err
}
