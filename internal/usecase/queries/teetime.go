package queries

import (
	"context"
	"time"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/infra"
	"tee-sheet/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound = errs.New("tee slot not found")
	ErrReadFailed   = errs.New("slot read failed")
	ErrSeedFailed   = errs.New("slot generation failed")
)

// Read models (DTO for read side)
type SlotView struct {
	ID         uuid.UUID        `json:"id"`
	Date       string           `json:"date"`
	Tee        string           `json:"tee"`
	TeeMinutes int              `json:"tee_minutes"`
	MaxPlayers int              `json:"max_players"`
	PriceCents int              `json:"price_cents"`
	Players    []SlotPlayerView `json:"players"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

type SlotPlayerView struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Transport string `json:"transport"`
	Holes     string `json:"holes"`
}

// GridSpec is the fixed daily inventory shape, resolved from configuration
// at bootstrap.
type GridSpec struct {
	Tees       []teetime.TimeOfDay
	MaxPlayers int
	PriceCents int
}

type TeeTimeQueries interface {
	// ListByDate materializes the day's grid on first access, then lists it.
	ListByDate(ctx context.Context, date teetime.Date) ([]*SlotView, error)
	ListByUser(ctx context.Context, userID string) ([]*SlotView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	FindByDate(ctx context.Context, date teetime.Date) ([]*SlotView, error)
	FindByUserID(ctx context.Context, userID string) ([]*SlotView, error)
}

// SlotSeeder inserts the day's grid, skipping (date, time) pairs that
// already exist. Safe for concurrent callers on the same date.
type SlotSeeder interface {
	SeedDay(ctx context.Context, date teetime.Date, tees []teetime.TimeOfDay, maxPlayers, priceCents int) error
}

type teeTimeQueriesImpl struct {
	store  SlotReadStore
	seeder SlotSeeder
	grid   GridSpec
}

func NewTeeTimeQueries(store SlotReadStore, seeder SlotSeeder, grid GridSpec) TeeTimeQueries {
	return &teeTimeQueriesImpl{
		store:  store,
		seeder: seeder,
		grid:   grid,
	}
}

func (q *teeTimeQueriesImpl) ListByDate(ctx context.Context, date teetime.Date) ([]*SlotView, error) {
	if err := q.seeder.SeedDay(ctx, date, q.grid.Tees, q.grid.MaxPlayers, q.grid.PriceCents); err != nil {
		return nil, errs.Mark(err, ErrSeedFailed)
	}

	views, err := q.store.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return views, nil
}

func (q *teeTimeQueriesImpl) ListByUser(ctx context.Context, userID string) ([]*SlotView, error) {
	views, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return views, nil
}

func (q *teeTimeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SlotView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrReadFailed)
	}
	return view, nil
}
