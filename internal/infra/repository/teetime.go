package repository

import (
	"context"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/infra"
	"tee-sheet/internal/infra/db"
	"tee-sheet/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SlotRepository is the write side of the slot store. It is stateless; the
// caller supplies the transaction or pool to run against.
type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Insert(ctx context.Context, dbx db.DBTX, slot *teetime.Slot) error {
	_, err := dbx.Exec(ctx, `
		INSERT INTO tee_slots (id, slot_date, slot_time, max_players, price_cents)
		VALUES ($1, $2, $3, $4, $5)`,
		slot.ID(),
		pgconv.DateToPgtype(slot.Date().Time()),
		pgconv.MinutesToPgtypeTime(slot.Tee().Minutes()),
		slot.MaxPlayers(),
		slot.Price().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert slot", err)
	}
	return nil
}

// SeedDay materializes the day's grid. ON CONFLICT DO NOTHING makes the
// check-then-insert race between concurrent first readers harmless.
func (r *SlotRepository) SeedDay(ctx context.Context, dbx db.DBTX, date teetime.Date, tees []teetime.TimeOfDay, maxPlayers, priceCents int) error {
	batch := &pgx.Batch{}
	for _, tee := range tees {
		batch.Queue(`
			INSERT INTO tee_slots (id, slot_date, slot_time, max_players, price_cents)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (slot_date, slot_time) DO NOTHING`,
			uuid.New(),
			pgconv.DateToPgtype(date.Time()),
			pgconv.MinutesToPgtypeTime(tee.Minutes()),
			maxPlayers,
			priceCents,
		)
	}

	results := dbx.SendBatch(ctx, batch)
	defer results.Close()

	for range tees {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to seed day grid", err)
		}
	}
	return nil
}

// FindForUpdate locks the slot row for the rest of the transaction and
// returns the aggregate with its players in booking order.
func (r *SlotRepository) FindForUpdate(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*teetime.Slot, error) {
	row := dbx.QueryRow(ctx, `
		SELECT id, slot_date, slot_time, max_players, price_cents
		FROM tee_slots
		WHERE id = $1
		FOR UPDATE`,
		id,
	)

	slot, err := scanSlotRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	players, err := r.loadPlayers(ctx, dbx, id)
	if err != nil {
		return nil, err
	}

	return teetime.ReconstructSlot(slot.id, slot.date, slot.tee, slot.maxPlayers, teetime.NewMoney(slot.priceCents), players), nil
}

func (r *SlotRepository) AppendPlayers(ctx context.Context, dbx db.DBTX, slotID uuid.UUID, fromPosition int, players []teetime.Player) error {
	batch := &pgx.Batch{}
	for i, p := range players {
		batch.Queue(`
			INSERT INTO slot_players (slot_id, position, user_id, player_name, player_type, transport_mode, holes_playing)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			slotID, fromPosition+i, p.UserID, p.Name, string(p.Type), string(p.Transport), string(p.Holes),
		)
	}
	batch.Queue(`UPDATE tee_slots SET updated_at = now() WHERE id = $1`, slotID)

	results := dbx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i <= len(players); i++ {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to append players", err)
		}
	}
	return nil
}

// ReplacePlayers rewrites the full player list, renumbering positions from
// zero so the remaining booking order is preserved without gaps.
func (r *SlotRepository) ReplacePlayers(ctx context.Context, dbx db.DBTX, slotID uuid.UUID, players []teetime.Player) error {
	if _, err := dbx.Exec(ctx, `DELETE FROM slot_players WHERE slot_id = $1`, slotID); err != nil {
		return infra.WrapRepoErr("failed to clear players", err)
	}
	if len(players) > 0 {
		if err := r.AppendPlayers(ctx, dbx, slotID, 0, players); err != nil {
			return err
		}
		return nil
	}

	if _, err := dbx.Exec(ctx, `UPDATE tee_slots SET updated_at = now() WHERE id = $1`, slotID); err != nil {
		return infra.WrapRepoErr("failed to touch slot", err)
	}
	return nil
}

func (r *SlotRepository) UpdateSlot(ctx context.Context, dbx db.DBTX, slot *teetime.Slot) error {
	tag, err := dbx.Exec(ctx, `
		UPDATE tee_slots
		SET slot_time = $2, max_players = $3, price_cents = $4, updated_at = now()
		WHERE id = $1`,
		slot.ID(),
		pgconv.MinutesToPgtypeTime(slot.Tee().Minutes()),
		slot.MaxPlayers(),
		slot.Price().Cents(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) ClearBookingsBefore(ctx context.Context, dbx db.DBTX, date teetime.Date) (int64, error) {
	tag, err := dbx.Exec(ctx, `
		DELETE FROM slot_players sp
		USING tee_slots s
		WHERE sp.slot_id = s.id AND s.slot_date < $1`,
		pgconv.DateToPgtype(date.Time()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear past bookings", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) ClearAllBookings(ctx context.Context, dbx db.DBTX) (int64, error) {
	tag, err := dbx.Exec(ctx, `DELETE FROM slot_players`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear bookings", err)
	}
	return tag.RowsAffected(), nil
}

func (r *SlotRepository) loadPlayers(ctx context.Context, dbx db.DBTX, slotID uuid.UUID) ([]teetime.Player, error) {
	rows, err := dbx.Query(ctx, `
		SELECT user_id, player_name, player_type, transport_mode, holes_playing
		FROM slot_players
		WHERE slot_id = $1
		ORDER BY position`,
		slotID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load players", err)
	}
	defer rows.Close()

	var players []teetime.Player
	for rows.Next() {
		var p teetime.Player
		var pType, transport, holes string
		if err := rows.Scan(&p.UserID, &p.Name, &pType, &transport, &holes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan player", err)
		}
		p.Type = teetime.PlayerType(pType)
		p.Transport = teetime.TransportMode(transport)
		p.Holes = teetime.HolesOption(holes)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read players", err)
	}
	return players, nil
}

type slotRow struct {
	id         uuid.UUID
	date       teetime.Date
	tee        teetime.TimeOfDay
	maxPlayers int
	priceCents int
}

func scanSlotRow(row pgx.Row) (slotRow, error) {
	var (
		s        slotRow
		slotDate pgtype.Date
		slotTime pgtype.Time
	)
	if err := row.Scan(&s.id, &slotDate, &slotTime, &s.maxPlayers, &s.priceCents); err != nil {
		return slotRow{}, err
	}
	s.date = teetime.DateOf(pgconv.DateFromPgtype(slotDate))
	s.tee = teetime.TimeOfDay(pgconv.MinutesFromPgtypeTime(slotTime))
	return s, nil
}

// SlotSeeder binds the stateless repository to the pool for the read path's
// populate-on-read generation.
type SlotSeeder struct {
	pool *pgxpool.Pool
	repo *SlotRepository
}

func NewSlotSeeder(pool *pgxpool.Pool, repo *SlotRepository) *SlotSeeder {
	return &SlotSeeder{pool: pool, repo: repo}
}

func (s *SlotSeeder) SeedDay(ctx context.Context, date teetime.Date, tees []teetime.TimeOfDay, maxPlayers, priceCents int) error {
	return s.repo.SeedDay(ctx, s.pool, date, tees, maxPlayers, priceCents)
}
