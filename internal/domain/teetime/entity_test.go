//go:build unit

package teetime_test

import (
	"testing"

	"tee-sheet/internal/domain/teetime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlot(t *testing.T, maxPlayers int) *teetime.Slot {
	t.Helper()

	date, err := teetime.ParseDate("2026-06-15")
	require.NoError(t, err)
	tee, err := teetime.ParseTeeLabel("8:00 AM")
	require.NoError(t, err)

	slot, err := teetime.NewSlot(date, tee, maxPlayers, teetime.NewMoney(6500))
	require.NoError(t, err)
	return slot
}

func specs(n int) []teetime.PlayerSpec {
	out := make([]teetime.PlayerSpec, n)
	return out
}

func TestNewSlot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		assert.NotEqual(t, uuid.Nil, slot.ID())
		assert.Equal(t, "2026-06-15", slot.Date().String())
		assert.Equal(t, "8:00 AM", slot.Tee().Label())
		assert.Equal(t, 4, slot.MaxPlayers())
		assert.Equal(t, 6500, slot.Price().Cents())
		assert.Equal(t, 0, slot.Occupancy())
		assert.Equal(t, 4, slot.Available())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		date, _ := teetime.ParseDate("2026-06-15")
		tee, _ := teetime.ParseTeeLabel("8:00 AM")

		_, err := teetime.NewSlot(date, tee, 0, teetime.NewMoney(6500))
		assert.ErrorIs(t, err, teetime.ErrInvalidCapacity)

		_, err = teetime.NewSlot(date, tee, -1, teetime.NewMoney(6500))
		assert.ErrorIs(t, err, teetime.ErrInvalidCapacity)
	})
}

func TestSlotBook(t *testing.T) {
	t.Run("books member with guests as one unit", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		booked, err := slot.Book("member-1", []teetime.PlayerSpec{
			{Name: "Alice", Type: teetime.PlayerTypeMember, Transport: teetime.TransportRiding, Holes: teetime.HolesEighteen},
			{Name: "Guest of Alice", Type: teetime.PlayerTypeGuest, Transport: teetime.TransportWalking, Holes: teetime.HolesNine},
		})
		require.NoError(t, err)
		require.Len(t, booked, 2)

		assert.Equal(t, 2, slot.Occupancy())
		assert.Equal(t, 2, slot.Available())
		assert.True(t, slot.HasUser("member-1"))

		// every seat is attributed to the booking member
		for _, p := range slot.Players() {
			assert.Equal(t, "member-1", p.UserID)
		}
		assert.Equal(t, teetime.PlayerTypeGuest, slot.Players()[1].Type)
	})

	t.Run("defaults blank fields per seat", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(2))
		require.NoError(t, err)

		players := slot.Players()
		assert.Equal(t, "Player 1", players[0].Name)
		assert.Equal(t, "Player 2", players[1].Name)
		for _, p := range players {
			assert.Equal(t, teetime.PlayerTypeMember, p.Type)
			assert.Equal(t, teetime.TransportRiding, p.Transport)
			assert.Equal(t, teetime.HolesEighteen, p.Holes)
		}
	})

	t.Run("default names continue from current occupancy", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(2))
		require.NoError(t, err)
		_, err = slot.Book("member-2", specs(2))
		require.NoError(t, err)

		assert.Equal(t, "Player 3", slot.Players()[2].Name)
		assert.Equal(t, "Player 4", slot.Players()[3].Name)
	})

	t.Run("rejects empty player list", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", nil)
		assert.ErrorIs(t, err, teetime.ErrNoPlayers)
	})

	t.Run("rejects a user who already holds seats", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(1))
		require.NoError(t, err)

		_, err = slot.Book("member-1", specs(1))
		assert.ErrorIs(t, err, teetime.ErrAlreadyBooked)
		assert.Equal(t, 1, slot.Occupancy())
	})

	t.Run("rejects group larger than remaining capacity", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(3))
		require.NoError(t, err)

		_, err = slot.Book("member-2", specs(2))

		var capErr *teetime.CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 1, capErr.Available)
		assert.Equal(t, "only 1 spot available", capErr.Error())

		// failed booking leaves the slot untouched
		assert.Equal(t, 3, slot.Occupancy())
		assert.False(t, slot.HasUser("member-2"))
	})

	t.Run("rejects invalid enum values without defaulting them", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", []teetime.PlayerSpec{{Type: "vip"}})
		assert.ErrorIs(t, err, teetime.ErrInvalidPlayerType)

		_, err = slot.Book("member-1", []teetime.PlayerSpec{{Transport: "cart"}})
		assert.ErrorIs(t, err, teetime.ErrInvalidTransportMode)

		_, err = slot.Book("member-1", []teetime.PlayerSpec{{Holes: "27"}})
		assert.ErrorIs(t, err, teetime.ErrInvalidHolesOption)

		assert.Equal(t, 0, slot.Occupancy())
	})

	t.Run("fills slot to exact capacity", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(4))
		require.NoError(t, err)
		assert.Equal(t, 0, slot.Available())
	})
}

func TestSlotCancel(t *testing.T) {
	t.Run("removes member and their guests together", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(2))
		require.NoError(t, err)
		_, err = slot.Book("member-2", specs(1))
		require.NoError(t, err)

		removed, err := slot.Cancel("member-1")
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		assert.Equal(t, 1, slot.Occupancy())
		assert.False(t, slot.HasUser("member-1"))
		assert.True(t, slot.HasUser("member-2"))
	})

	t.Run("preserves remaining player order", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", []teetime.PlayerSpec{{Name: "Alice"}})
		require.NoError(t, err)
		_, err = slot.Book("member-2", []teetime.PlayerSpec{{Name: "Bob"}})
		require.NoError(t, err)
		_, err = slot.Book("member-3", []teetime.PlayerSpec{{Name: "Carol"}})
		require.NoError(t, err)

		_, err = slot.Cancel("member-2")
		require.NoError(t, err)

		players := slot.Players()
		require.Len(t, players, 2)
		assert.Equal(t, "Alice", players[0].Name)
		assert.Equal(t, "Carol", players[1].Name)
	})

	t.Run("rejects user without a booking", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Cancel("member-1")
		assert.ErrorIs(t, err, teetime.ErrNotBooked)
	})

	t.Run("freed seats can be rebooked", func(t *testing.T) {
		slot := newTestSlot(t, 2)

		_, err := slot.Book("member-1", specs(2))
		require.NoError(t, err)

		_, err = slot.Cancel("member-1")
		require.NoError(t, err)

		_, err = slot.Book("member-1", specs(2))
		require.NoError(t, err)
		assert.Equal(t, 2, slot.Occupancy())
	})
}

func TestSlotResize(t *testing.T) {
	t.Run("grows and shrinks within occupancy", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(2))
		require.NoError(t, err)

		require.NoError(t, slot.Resize(8))
		assert.Equal(t, 6, slot.Available())

		require.NoError(t, slot.Resize(2))
		assert.Equal(t, 0, slot.Available())
	})

	t.Run("refuses shrink below current occupancy", func(t *testing.T) {
		slot := newTestSlot(t, 4)

		_, err := slot.Book("member-1", specs(3))
		require.NoError(t, err)

		err = slot.Resize(2)
		assert.ErrorIs(t, err, teetime.ErrCapacityBelowBooked)
		assert.Equal(t, 4, slot.MaxPlayers())
	})

	t.Run("refuses non-positive capacity", func(t *testing.T) {
		slot := newTestSlot(t, 4)
		assert.ErrorIs(t, slot.Resize(0), teetime.ErrInvalidCapacity)
	})
}
