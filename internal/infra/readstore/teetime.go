package readstore

import (
	"context"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/infra"
	"tee-sheet/internal/infra/db"
	"tee-sheet/internal/pkg/pgconv"
	"tee-sheet/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const slotColumns = `id, slot_date, slot_time, max_players, price_cents, created_at, updated_at`

type SlotReadStore struct {
	dbx db.DBTX
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{dbx: pool}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.dbx.QueryRow(ctx, `
		SELECT `+slotColumns+`
		FROM tee_slots
		WHERE id = $1`,
		id,
	)

	view, err := scanSlotView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}

	players, err := r.loadPlayersFor(ctx, `sp.slot_id = $1`, id)
	if err != nil {
		return nil, err
	}
	view.Players = players[view.ID]
	if view.Players == nil {
		view.Players = []queries.SlotPlayerView{}
	}

	return view, nil
}

func (r *SlotReadStore) FindByDate(ctx context.Context, date teetime.Date) ([]*queries.SlotView, error) {
	rows, err := r.dbx.Query(ctx, `
		SELECT `+slotColumns+`
		FROM tee_slots
		WHERE slot_date = $1
		ORDER BY slot_time`,
		pgconv.DateToPgtype(date.Time()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by date", err)
	}

	views, err := collectSlotViews(rows)
	if err != nil {
		return nil, err
	}

	players, err := r.loadPlayersFor(ctx,
		`sp.slot_id IN (SELECT id FROM tee_slots WHERE slot_date = $1)`,
		pgconv.DateToPgtype(date.Time()),
	)
	if err != nil {
		return nil, err
	}

	attachPlayers(views, players)
	return views, nil
}

func (r *SlotReadStore) FindByUserID(ctx context.Context, userID string) ([]*queries.SlotView, error) {
	rows, err := r.dbx.Query(ctx, `
		SELECT `+slotColumns+`
		FROM tee_slots s
		WHERE EXISTS (
			SELECT 1 FROM slot_players sp
			WHERE sp.slot_id = s.id AND sp.user_id = $1
		)
		ORDER BY slot_date, slot_time`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find slots by user", err)
	}

	views, err := collectSlotViews(rows)
	if err != nil {
		return nil, err
	}

	players, err := r.loadPlayersFor(ctx, `
		sp.slot_id IN (
			SELECT slot_id FROM slot_players WHERE user_id = $1
		)`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	attachPlayers(views, players)
	return views, nil
}

func (r *SlotReadStore) loadPlayersFor(ctx context.Context, where string, arg any) (map[uuid.UUID][]queries.SlotPlayerView, error) {
	rows, err := r.dbx.Query(ctx, `
		SELECT sp.slot_id, sp.user_id, sp.player_name, sp.player_type, sp.transport_mode, sp.holes_playing
		FROM slot_players sp
		WHERE `+where+`
		ORDER BY sp.slot_id, sp.position`,
		arg,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load slot players", err)
	}
	defer rows.Close()

	bySlot := make(map[uuid.UUID][]queries.SlotPlayerView)
	for rows.Next() {
		var slotID uuid.UUID
		var p queries.SlotPlayerView
		if err := rows.Scan(&slotID, &p.UserID, &p.Name, &p.Type, &p.Transport, &p.Holes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot player", err)
		}
		bySlot[slotID] = append(bySlot[slotID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slot players", err)
	}
	return bySlot, nil
}

func collectSlotViews(rows pgx.Rows) ([]*queries.SlotView, error) {
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read slots", err)
	}
	return views, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var (
		view      queries.SlotView
		slotDate  pgtype.Date
		slotTime  pgtype.Time
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&view.ID, &slotDate, &slotTime, &view.MaxPlayers, &view.PriceCents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	tee := teetime.TimeOfDay(pgconv.MinutesFromPgtypeTime(slotTime))
	view.Date = teetime.DateOf(pgconv.DateFromPgtype(slotDate)).String()
	view.Tee = tee.Label()
	view.TeeMinutes = tee.Minutes()
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func attachPlayers(views []*queries.SlotView, players map[uuid.UUID][]queries.SlotPlayerView) {
	for _, view := range views {
		if ps, ok := players[view.ID]; ok {
			view.Players = ps
		} else {
			view.Players = []queries.SlotPlayerView{}
		}
	}
}
