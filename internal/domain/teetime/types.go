package teetime

import "errors"

var (
	ErrInvalidPlayerType    = errors.New("invalid player type")
	ErrInvalidTransportMode = errors.New("invalid transport mode")
	ErrInvalidHolesOption   = errors.New("invalid holes option")
	ErrAlreadyBooked        = errors.New("user already booked on this slot")
	ErrNotBooked            = errors.New("user is not booked on this slot")
	ErrNoPlayers            = errors.New("at least one player required")
	ErrCapacityBelowBooked  = errors.New("capacity below current occupancy")
	ErrInvalidCapacity      = errors.New("capacity must be positive")
	ErrNegativePrice        = errors.New("price cannot be negative")
)

type PlayerType string

const (
	PlayerTypeMember PlayerType = "member"
	PlayerTypeGuest  PlayerType = "guest"
)

func (t PlayerType) Validate() error {
	switch t {
	case PlayerTypeMember, PlayerTypeGuest:
		return nil
	}
	return ErrInvalidPlayerType
}

type TransportMode string

const (
	TransportRiding  TransportMode = "riding"
	TransportWalking TransportMode = "walking"
)

func (m TransportMode) Validate() error {
	switch m {
	case TransportRiding, TransportWalking:
		return nil
	}
	return ErrInvalidTransportMode
}

type HolesOption string

const (
	HolesNine     HolesOption = "9"
	HolesEighteen HolesOption = "18"
)

func (h HolesOption) Validate() error {
	switch h {
	case HolesNine, HolesEighteen:
		return nil
	}
	return ErrInvalidHolesOption
}

// Player is one filled seat on a slot. Guests carry the booking member's
// user id, so UserID alone identifies the party that owns the seat.
type Player struct {
	UserID    string
	Name      string
	Type      PlayerType
	Transport TransportMode
	Holes     HolesOption
}

// PlayerSpec is the caller-supplied description of one player to book.
// Zero-value fields are filled with defaults rather than rejected.
type PlayerSpec struct {
	Name      string
	Type      PlayerType
	Transport TransportMode
	Holes     HolesOption
}
