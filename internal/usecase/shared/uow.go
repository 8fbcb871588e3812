package shared

import (
	"context"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbx db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	DB() db.DBTX
}

// SlotRepository is the write side of the slot store. Reads used by
// commands go through FindForUpdate so the capacity check and the write
// happen under the same row lock.
type SlotRepository interface {
	Insert(ctx context.Context, dbx db.DBTX, slot *teetime.Slot) error
	SeedDay(ctx context.Context, dbx db.DBTX, date teetime.Date, tees []teetime.TimeOfDay, maxPlayers, priceCents int) error
	FindForUpdate(ctx context.Context, dbx db.DBTX, id uuid.UUID) (*teetime.Slot, error)
	AppendPlayers(ctx context.Context, dbx db.DBTX, slotID uuid.UUID, fromPosition int, players []teetime.Player) error
	ReplacePlayers(ctx context.Context, dbx db.DBTX, slotID uuid.UUID, players []teetime.Player) error
	UpdateSlot(ctx context.Context, dbx db.DBTX, slot *teetime.Slot) error
	ClearBookingsBefore(ctx context.Context, dbx db.DBTX, date teetime.Date) (int64, error)
	ClearAllBookings(ctx context.Context, dbx db.DBTX) (int64, error)
}
