package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/library/domain"
)

// Favorite is the favorites table row.
type Favorite struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_favorites_user_movie"`
	MovieID uuid.UUID `gorm:"column:movie_id;type:uuid;not null;uniqueIndex:idx_favorites_user_movie"`
	AddedOn time.Time `gorm:"column:added_on;not null;autoCreateTime"`
}

// WatchListEntry is the watch_list table row.
type WatchListEntry struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_watch_list_user_movie"`
	MovieID uuid.UUID `gorm:"column:movie_id;type:uuid;not null;uniqueIndex:idx_watch_list_user_movie"`
	AddedOn time.Time `gorm:"column:added_on;not null;autoCreateTime"`
}

func (Favorite) TableName() string       { return "favorites" }
func (WatchListEntry) TableName() string { return "watch_list" }

// Models returns the library models for migration.
func Models() []interface{} {
	return []interface{}{&Favorite{}, &WatchListEntry{}}
}

func (row *Favorite) toDomain() domain.Entry {
	return domain.Entry{
		ID:      row.ID,
		UserID:  row.UserID,
		MovieID: row.MovieID,
		AddedOn: row.AddedOn,
	}
}

func (row *WatchListEntry) toDomain() domain.Entry {
	return domain.Entry{
		ID:      row.ID,
		UserID:  row.UserID,
		MovieID: row.MovieID,
		AddedOn: row.AddedOn,
	}
}
