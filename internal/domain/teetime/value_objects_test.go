//go:build unit

package teetime_test

import (
	"testing"
	"time"

	"tee-sheet/internal/domain/teetime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	t.Run("parses and renders the date-only form", func(t *testing.T) {
		d, err := teetime.ParseDate("2026-06-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-06-15", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "06/15/2026", "2026-6-15", "2026-06-15T00:00:00Z", "not-a-date"} {
			_, err := teetime.ParseDate(s)
			assert.ErrorIs(t, err, teetime.ErrInvalidDate, "input %q", s)
		}
	})

	t.Run("drops time-of-day when derived from an instant", func(t *testing.T) {
		at := time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC)
		assert.Equal(t, "2026-06-15", teetime.DateOf(at).String())
	})

	t.Run("ordering", func(t *testing.T) {
		d1, _ := teetime.ParseDate("2026-06-14")
		d2, _ := teetime.ParseDate("2026-06-15")

		assert.True(t, d1.Before(d2))
		assert.False(t, d2.Before(d1))
		assert.True(t, d1.AddDays(1).Equal(d2))
	})
}

func TestTimeOfDay(t *testing.T) {
	t.Run("round trips between label and minutes", func(t *testing.T) {
		cases := []struct {
			label   string
			minutes int
		}{
			{"7:00 AM", 7 * 60},
			{"12:00 PM", 12 * 60},
			{"12:00 AM", 0},
			{"3:45 PM", 15*60 + 45},
			{"6:45 PM", 18*60 + 45},
		}
		for _, tc := range cases {
			tod, err := teetime.ParseTeeLabel(tc.label)
			require.NoError(t, err, tc.label)
			assert.Equal(t, tc.minutes, tod.Minutes(), tc.label)
			assert.Equal(t, tc.label, tod.Label(), tc.label)
		}
	})

	t.Run("parses the 24h configuration form", func(t *testing.T) {
		tod, err := teetime.ParseTimeOfDay("19:00")
		require.NoError(t, err)
		assert.Equal(t, 19*60, tod.Minutes())
		assert.Equal(t, "7:00 PM", tod.Label())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "7:00", "25:00", "7 AM"} {
			_, err := teetime.ParseTeeLabel(s)
			assert.ErrorIs(t, err, teetime.ErrInvalidTimeOfDay, "input %q", s)
		}

		_, err := teetime.NewTimeOfDay(24, 0)
		assert.ErrorIs(t, err, teetime.ErrInvalidTimeOfDay)
	})
}

func TestDayGrid(t *testing.T) {
	t.Run("standard day yields 48 quarter-hour tees", func(t *testing.T) {
		first, _ := teetime.ParseTimeOfDay("07:00")
		last, _ := teetime.ParseTimeOfDay("19:00")

		grid, err := teetime.DayGrid(first, last, 15*time.Minute)
		require.NoError(t, err)
		require.Len(t, grid, 48)

		assert.Equal(t, "7:00 AM", grid[0].Label())
		assert.Equal(t, "7:15 AM", grid[1].Label())
		assert.Equal(t, "6:45 PM", grid[47].Label())
	})

	t.Run("last tee is exclusive", func(t *testing.T) {
		first, _ := teetime.ParseTimeOfDay("07:00")
		last, _ := teetime.ParseTimeOfDay("19:00")

		grid, err := teetime.DayGrid(first, last, 15*time.Minute)
		require.NoError(t, err)
		for _, tee := range grid {
			assert.Less(t, tee.Minutes(), last.Minutes())
		}
	})

	t.Run("rejects inverted or empty windows", func(t *testing.T) {
		first, _ := teetime.ParseTimeOfDay("19:00")
		last, _ := teetime.ParseTimeOfDay("07:00")

		_, err := teetime.DayGrid(first, last, 15*time.Minute)
		assert.ErrorIs(t, err, teetime.ErrInvalidWindow)

		_, err = teetime.DayGrid(first, first, 15*time.Minute)
		assert.ErrorIs(t, err, teetime.ErrInvalidWindow)
	})

	t.Run("rejects non-positive interval", func(t *testing.T) {
		first, _ := teetime.ParseTimeOfDay("07:00")
		last, _ := teetime.ParseTimeOfDay("19:00")

		_, err := teetime.DayGrid(first, last, 0)
		assert.ErrorIs(t, err, teetime.ErrInvalidInterval)
	})
}

func TestMoney(t *testing.T) {
	t.Run("converts cents to dollars on display", func(t *testing.T) {
		m := teetime.NewMoney(6500)
		assert.Equal(t, 6500, m.Cents())
		assert.InDelta(t, 65.0, m.Dollars(), 0.001)
	})

	t.Run("validated constructor rejects negative amounts", func(t *testing.T) {
		_, err := teetime.NewMoneyFromCents(-1)
		assert.ErrorIs(t, err, teetime.ErrNegativePrice)

		m, err := teetime.NewMoneyFromCents(0)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Cents())
	})
}
