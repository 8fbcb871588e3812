package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	return uuid.UUID(pu.Bytes)
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateToPgtype maps a calendar date onto a DATE column with no time zone
// shift: the stored day is exactly the day passed in.
func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	return pd.Time
}

// MinutesToPgtypeTime maps minutes-from-midnight onto a TIME column.
func MinutesToPgtypeTime(minutes int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(minutes) * 60 * 1_000_000, Valid: true}
}

func MinutesFromPgtypeTime(pt pgtype.Time) int {
	return int(pt.Microseconds / (60 * 1_000_000))
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
