package teetime

import (
	"fmt"

	"github.com/google/uuid"
)

// Slot is one bookable tee time on one date. All booking rules live here;
// persistence only reads the player list back out.
type Slot struct {
	id         uuid.UUID
	date       Date
	tee        TimeOfDay
	maxPlayers int
	price      Money
	players    []Player
}

// CapacityError reports how many seats were actually free when a booking
// asked for more.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	if e.Available == 1 {
		return "only 1 spot available"
	}
	return fmt.Sprintf("only %d spots available", e.Available)
}

func NewSlot(date Date, tee TimeOfDay, maxPlayers int, price Money) (*Slot, error) {
	if maxPlayers <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Slot{
		id:         uuid.New(),
		date:       date,
		tee:        tee,
		maxPlayers: maxPlayers,
		price:      price,
	}, nil
}

// ReconstructSlot rebuilds a slot from storage without re-running creation
// rules. The player order must be the stored booking order.
func ReconstructSlot(id uuid.UUID, date Date, tee TimeOfDay, maxPlayers int, price Money, players []Player) *Slot {
	return &Slot{
		id:         id,
		date:       date,
		tee:        tee,
		maxPlayers: maxPlayers,
		price:      price,
		players:    players,
	}
}

func (s *Slot) ID() uuid.UUID     { return s.id }
func (s *Slot) Date() Date        { return s.date }
func (s *Slot) Tee() TimeOfDay    { return s.tee }
func (s *Slot) MaxPlayers() int   { return s.maxPlayers }
func (s *Slot) Price() Money      { return s.price }
func (s *Slot) Players() []Player { return s.players }

func (s *Slot) Occupancy() int {
	return len(s.players)
}

func (s *Slot) Available() int {
	return s.maxPlayers - len(s.players)
}

func (s *Slot) HasUser(userID string) bool {
	for _, p := range s.players {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// Book appends one player per spec, all attributed to userID. Guests never
// get an identity of their own. Checks run before any append, so a failed
// booking leaves the slot untouched.
func (s *Slot) Book(userID string, specs []PlayerSpec) ([]Player, error) {
	if len(specs) == 0 {
		return nil, ErrNoPlayers
	}
	if s.HasUser(userID) {
		return nil, ErrAlreadyBooked
	}
	if len(specs) > s.Available() {
		return nil, &CapacityError{Available: s.Available()}
	}

	booked := make([]Player, 0, len(specs))
	for i, spec := range specs {
		p, err := s.fillDefaults(spec, s.Occupancy()+i+1)
		if err != nil {
			return nil, err
		}
		p.UserID = userID
		booked = append(booked, p)
	}

	s.players = append(s.players, booked...)
	return booked, nil
}

// Cancel removes every seat held under userID, the booking member and their
// guests as one unit, preserving the order of the remaining players.
func (s *Slot) Cancel(userID string) (int, error) {
	if !s.HasUser(userID) {
		return 0, ErrNotBooked
	}

	remaining := s.players[:0:0]
	removed := 0
	for _, p := range s.players {
		if p.UserID == userID {
			removed++
			continue
		}
		remaining = append(remaining, p)
	}
	s.players = remaining
	return removed, nil
}

// Resize changes capacity; shrinking below current occupancy is refused.
func (s *Slot) Resize(maxPlayers int) error {
	if maxPlayers <= 0 {
		return ErrInvalidCapacity
	}
	if maxPlayers < len(s.players) {
		return ErrCapacityBelowBooked
	}
	s.maxPlayers = maxPlayers
	return nil
}

func (s *Slot) Reprice(price Money) {
	s.price = price
}

func (s *Slot) Reschedule(tee TimeOfDay) {
	s.tee = tee
}

// Blank fields are individually defaulted; non-blank fields must be valid.
func (s *Slot) fillDefaults(spec PlayerSpec, seat int) (Player, error) {
	p := Player{
		Name:      spec.Name,
		Type:      spec.Type,
		Transport: spec.Transport,
		Holes:     spec.Holes,
	}

	if p.Name == "" {
		p.Name = fmt.Sprintf("Player %d", seat)
	}
	if p.Type == "" {
		p.Type = PlayerTypeMember
	}
	if p.Transport == "" {
		p.Transport = TransportRiding
	}
	if p.Holes == "" {
		p.Holes = HolesEighteen
	}

	if err := p.Type.Validate(); err != nil {
		return Player{}, err
	}
	if err := p.Transport.Validate(); err != nil {
		return Player{}, err
	}
	if err := p.Holes.Validate(); err != nil {
		return Player{}, err
	}
	return p, nil
}
