package commands

import (
	"context"
	"log/slog"

	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/infra"
	"tee-sheet/internal/pkg/errs"
	"tee-sheet/internal/usecase/queries"
	"tee-sheet/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound            = errs.New("tee slot not found")
	ErrDuplicateSlot           = errs.New("slot already exists for date and time")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CreateSlotInput describes an ad-hoc slot. Nil MaxPlayers/PriceCents fall
// back to the configured grid defaults.
type CreateSlotInput struct {
	Date       teetime.Date
	Tee        teetime.TimeOfDay
	MaxPlayers *int
	PriceCents *int
}

// UpdateSlotInput carries the admin override; nil fields are left untouched.
type UpdateSlotInput struct {
	Tee        *teetime.TimeOfDay
	MaxPlayers *int
	PriceCents *int
}

type TeeTimeCommands interface {
	Book(ctx context.Context, slotID uuid.UUID, userID string, players []teetime.PlayerSpec) (*queries.SlotView, error)
	Cancel(ctx context.Context, slotID uuid.UUID, userID string) (*queries.SlotView, error)
	Create(ctx context.Context, in CreateSlotInput) (*queries.SlotView, error)
	Update(ctx context.Context, slotID uuid.UUID, in UpdateSlotInput) (*queries.SlotView, error)
	// ClearBookingsBefore removes every booking on slots dated before the
	// given day. Slots themselves stay. Idempotent.
	ClearBookingsBefore(ctx context.Context, date teetime.Date) (int64, error)
	// ResetAllBookings is the administrative full reset across all dates.
	ResetAllBookings(ctx context.Context) (int64, error)
}

type teeTimeCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.TeeTimeQueries
	grid    queries.GridSpec
}

func NewTeeTimeCommands(uow shared.UnitOfWork, q queries.TeeTimeQueries, grid queries.GridSpec) TeeTimeCommands {
	return &teeTimeCommandsImpl{
		uow:     uow,
		queries: q,
		grid:    grid,
	}
}

// Book appends the party to the slot. The slot row is locked for the whole
// read-check-append span, so two bookings racing for the last spots
// serialize and the loser sees the true remaining capacity.
func (c *teeTimeCommandsImpl) Book(ctx context.Context, slotID uuid.UUID, userID string, players []teetime.PlayerSpec) (*queries.SlotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := c.lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}

		from := slot.Occupancy()
		booked, err := slot.Book(userID, players)
		if err != nil {
			return err
		}

		if err := tx.Slots().AppendPlayers(ctx, tx.DB(), slotID, from, booked); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reloadView(ctx, slotID)
}

func (c *teeTimeCommandsImpl) Cancel(ctx context.Context, slotID uuid.UUID, userID string) (*queries.SlotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := c.lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}

		removed, err := slot.Cancel(userID)
		if err != nil {
			return err
		}
		slog.Debug("booking cancelled", "slot_id", slotID, "user_id", userID, "seats_freed", removed)

		if err := tx.Slots().ReplacePlayers(ctx, tx.DB(), slotID, slot.Players()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reloadView(ctx, slotID)
}

func (c *teeTimeCommandsImpl) Create(ctx context.Context, in CreateSlotInput) (*queries.SlotView, error) {
	maxPlayers := c.grid.MaxPlayers
	if in.MaxPlayers != nil {
		maxPlayers = *in.MaxPlayers
	}
	priceCents := c.grid.PriceCents
	if in.PriceCents != nil {
		priceCents = *in.PriceCents
	}

	price, err := teetime.NewMoneyFromCents(priceCents)
	if err != nil {
		return nil, err
	}
	slot, err := teetime.NewSlot(in.Date, in.Tee, maxPlayers, price)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Insert(ctx, tx.DB(), slot); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateSlot
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reloadView(ctx, slot.ID())
}

func (c *teeTimeCommandsImpl) Update(ctx context.Context, slotID uuid.UUID, in UpdateSlotInput) (*queries.SlotView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := c.lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}

		if in.MaxPlayers != nil {
			if err := slot.Resize(*in.MaxPlayers); err != nil {
				return err
			}
		}
		if in.PriceCents != nil {
			price, err := teetime.NewMoneyFromCents(*in.PriceCents)
			if err != nil {
				return err
			}
			slot.Reprice(price)
		}
		if in.Tee != nil {
			slot.Reschedule(*in.Tee)
		}

		if err := tx.Slots().UpdateSlot(ctx, tx.DB(), slot); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateSlot
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reloadView(ctx, slotID)
}

func (c *teeTimeCommandsImpl) ClearBookingsBefore(ctx context.Context, date teetime.Date) (int64, error) {
	var cleared int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().ClearBookingsBefore(ctx, tx.DB(), date)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cleared = n
		return nil
	})
	return cleared, err
}

func (c *teeTimeCommandsImpl) ResetAllBookings(ctx context.Context) (int64, error) {
	var cleared int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Slots().ClearAllBookings(ctx, tx.DB())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		cleared = n
		return nil
	})
	return cleared, err
}

func (c *teeTimeCommandsImpl) lockSlot(ctx context.Context, tx shared.Tx, slotID uuid.UUID) (*teetime.Slot, error) {
	slot, err := tx.Slots().FindForUpdate(ctx, tx.DB(), slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return slot, nil
}

// Read-after-write: serve the committed state from the read store.
func (c *teeTimeCommandsImpl) reloadView(ctx context.Context, slotID uuid.UUID) (*queries.SlotView, error) {
	view, err := c.queries.GetByID(ctx, slotID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
