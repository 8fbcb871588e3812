package response

import (
	"time"

	"tee-sheet/internal/usecase/queries"

	"github.com/google/uuid"
)

// TeeSlotResponse keeps the legacy wire shape the club's client expects:
// one index-aligned list per player attribute. Internally players are
// records; the parallel arrays exist only here.
type TeeSlotResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	MaxPlayers     int       `json:"maxPlayers"`
	BookedBy       []string  `json:"bookedBy"`
	PlayerNames    []string  `json:"playerNames"`
	PlayerTypes    []string  `json:"playerTypes"`
	TransportModes []string  `json:"transportModes"`
	HolesPlaying   []string  `json:"holesPlaying"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ResetResponse struct {
	ClearedBookings int64 `json:"clearedBookings"`
}

func FromSlotView(v *queries.SlotView) *TeeSlotResponse {
	resp := &TeeSlotResponse{
		ID:             v.ID,
		Date:           v.Date,
		Time:           v.Tee,
		MaxPlayers:     v.MaxPlayers,
		BookedBy:       make([]string, len(v.Players)),
		PlayerNames:    make([]string, len(v.Players)),
		PlayerTypes:    make([]string, len(v.Players)),
		TransportModes: make([]string, len(v.Players)),
		HolesPlaying:   make([]string, len(v.Players)),
		Price:          float64(v.PriceCents) / 100.0,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}

	for i, p := range v.Players {
		resp.BookedBy[i] = p.UserID
		resp.PlayerNames[i] = p.Name
		resp.PlayerTypes[i] = p.Type
		resp.TransportModes[i] = p.Transport
		resp.HolesPlaying[i] = p.Holes
	}
	return resp
}

func FromSlotViews(views []*queries.SlotView) []*TeeSlotResponse {
	resp := make([]*TeeSlotResponse, len(views))
	for i, v := range views {
		resp[i] = FromSlotView(v)
	}
	return resp
}
