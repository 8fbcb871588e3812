//go:build unit || e2e

package builder

import (
	"time"

	"tee-sheet/internal/domain/teetime"
	reqdto "tee-sheet/internal/handler/dto/request"
	"tee-sheet/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID         uuid.UUID
	Date       string
	Time       string
	MaxPlayers int
	PriceCents int
	UserID     string
	Players    []queries.SlotPlayerView
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewSlotBuilder() *SlotBuilder {
	now := time.Now()
	return &SlotBuilder{
		ID:         uuid.New(),
		Date:       "2026-06-15",
		Time:       "8:00 AM",
		MaxPlayers: 4,
		PriceCents: 6500,
		UserID:     "member-42",
		Players:    []queries.SlotPlayerView{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithPlayer(userID, name, playerType, transport, holes string) *SlotBuilder {
	b.Players = append(b.Players, queries.SlotPlayerView{
		UserID:    userID,
		Name:      name,
		Type:      playerType,
		Transport: transport,
		Holes:     holes,
	})
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() (*teetime.Slot, error) {
	date, err := teetime.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	tee, err := teetime.ParseTeeLabel(b.Time)
	if err != nil {
		return nil, err
	}
	return teetime.NewSlot(date, tee, b.MaxPlayers, teetime.NewMoney(b.PriceCents))
}

func (b *SlotBuilder) BuildViewQuery() *queries.SlotView {
	tee, _ := teetime.ParseTeeLabel(b.Time)
	return &queries.SlotView{
		ID:         b.ID,
		Date:       b.Date,
		Tee:        b.Time,
		TeeMinutes: tee.Minutes(),
		MaxPlayers: b.MaxPlayers,
		PriceCents: b.PriceCents,
		Players:    b.Players,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func (b *SlotBuilder) BuildBookRequestDTO() reqdto.BookSlotRequest {
	return reqdto.BookSlotRequest{
		UserID: b.UserID,
		Players: []reqdto.PlayerSpecRequest{
			{Name: "Alice", Type: "member", TransportMode: "riding", HolesPlaying: "18"},
		},
	}
}

func (b *SlotBuilder) BuildCancelRequestDTO() reqdto.CancelSlotRequest {
	return reqdto.CancelSlotRequest{UserID: b.UserID}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	maxPlayers := b.MaxPlayers
	priceCents := b.PriceCents
	return reqdto.CreateSlotRequest{
		Date:       b.Date,
		Time:       b.Time,
		MaxPlayers: &maxPlayers,
		PriceCents: &priceCents,
	}
}

func (b *SlotBuilder) BuildUpdateRequestDTO() reqdto.UpdateSlotRequest {
	t := b.Time
	maxPlayers := b.MaxPlayers
	priceCents := b.PriceCents
	return reqdto.UpdateSlotRequest{
		Time:       &t,
		MaxPlayers: &maxPlayers,
		PriceCents: &priceCents,
	}
}
