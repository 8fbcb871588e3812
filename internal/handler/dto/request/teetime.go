package request

import (
	"tee-sheet/internal/domain/teetime"
	"tee-sheet/internal/usecase/commands"
)

// PlayerSpecRequest mirrors the client's PlayerSpec. Every field may be
// blank; blanks are defaulted downstream, only non-blank invalid values are
// rejected at binding.
type PlayerSpecRequest struct {
	Name          string `json:"name" binding:"omitempty,max=100"`
	Type          string `json:"type" binding:"omitempty,oneof=member guest"`
	TransportMode string `json:"transportMode" binding:"omitempty,oneof=riding walking"`
	HolesPlaying  string `json:"holesPlaying" binding:"omitempty,oneof=9 18"`
}

type BookSlotRequest struct {
	UserID  string              `json:"userId" binding:"required"`
	Players []PlayerSpecRequest `json:"players" binding:"required,min=1,dive"`
}

func (r BookSlotRequest) ToPlayerSpecs() []teetime.PlayerSpec {
	specs := make([]teetime.PlayerSpec, len(r.Players))
	for i, p := range r.Players {
		specs[i] = teetime.PlayerSpec{
			Name:      p.Name,
			Type:      teetime.PlayerType(p.Type),
			Transport: teetime.TransportMode(p.TransportMode),
			Holes:     teetime.HolesOption(p.HolesPlaying),
		}
	}
	return specs
}

type CancelSlotRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type CreateSlotRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	MaxPlayers *int   `json:"maxPlayers" binding:"omitempty,min=1"`
	PriceCents *int   `json:"priceCents" binding:"omitempty,min=0"`
}

func (r CreateSlotRequest) ToInput() (commands.CreateSlotInput, error) {
	date, err := teetime.ParseDate(r.Date)
	if err != nil {
		return commands.CreateSlotInput{}, err
	}
	tee, err := teetime.ParseTeeLabel(r.Time)
	if err != nil {
		return commands.CreateSlotInput{}, err
	}
	return commands.CreateSlotInput{
		Date:       date,
		Tee:        tee,
		MaxPlayers: r.MaxPlayers,
		PriceCents: r.PriceCents,
	}, nil
}

type UpdateSlotRequest struct {
	Time       *string `json:"time" binding:"omitempty"`
	MaxPlayers *int    `json:"maxPlayers" binding:"omitempty,min=1"`
	PriceCents *int    `json:"priceCents" binding:"omitempty,min=0"`
}

func (r UpdateSlotRequest) ToInput() (commands.UpdateSlotInput, error) {
	in := commands.UpdateSlotInput{
		MaxPlayers: r.MaxPlayers,
		PriceCents: r.PriceCents,
	}
	if r.Time != nil {
		tee, err := teetime.ParseTeeLabel(*r.Time)
		if err != nil {
			return commands.UpdateSlotInput{}, err
		}
		in.Tee = &tee
	}
	return in, nil
}
