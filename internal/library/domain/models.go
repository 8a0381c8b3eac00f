package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one (user, movie) membership in a per-user movie list,
// either the favorites or the watch list. At most one entry exists per
// pair per list.
type Entry struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	MovieID uuid.UUID
	AddedOn time.Time
}
