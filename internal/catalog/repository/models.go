package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/catalog/domain"
)

// Movie is the movies table row. Genres, directors and actors live in
// auxiliary tables keyed by (movie_id, value) so they behave as sets.
type Movie struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string    `gorm:"uniqueIndex;not null;size:255"`
	RunTime     int       `gorm:"column:run_time;not null"`
	ReleaseDate time.Time `gorm:"column:release_date;not null"`
	Rating      *float64
	Description string `gorm:"size:1000"`
	PosterURL   string `gorm:"column:poster_url;size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Genres    []MovieGenre    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Directors []MovieDirector `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
	Actors    []MovieActor    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// MovieGenre is a single genre attribute row.
type MovieGenre struct {
	MovieID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Genre   string    `gorm:"primaryKey;size:100"`
}

// MovieDirector is a single director attribute row.
type MovieDirector struct {
	MovieID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Director string    `gorm:"primaryKey;size:255"`
}

// MovieActor is a single actor attribute row.
type MovieActor struct {
	MovieID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor   string    `gorm:"primaryKey;size:255"`
}

func (Movie) TableName() string         { return "movies" }
func (MovieGenre) TableName() string    { return "movie_genres" }
func (MovieDirector) TableName() string { return "movie_directors" }
func (MovieActor) TableName() string    { return "movie_actors" }

// Models returns the catalog models for migration.
func Models() []interface{} {
	return []interface{}{&Movie{}, &MovieGenre{}, &MovieDirector{}, &MovieActor{}}
}

func toRow(m *domain.Movie) *Movie {
	row := &Movie{
		ID:          m.ID,
		Title:       m.Title,
		RunTime:     m.RunTime,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		Description: m.Description,
		PosterURL:   m.PosterURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, g := range dedupe(m.Genres) {
		row.Genres = append(row.Genres, MovieGenre{MovieID: m.ID, Genre: g})
	}
	for _, d := range dedupe(m.Directors) {
		row.Directors = append(row.Directors, MovieDirector{MovieID: m.ID, Director: d})
	}
	for _, a := range dedupe(m.Actors) {
		row.Actors = append(row.Actors, MovieActor{MovieID: m.ID, Actor: a})
	}
	return row
}

func toDomain(row *Movie) *domain.Movie {
	m := &domain.Movie{
		ID:          row.ID,
		Title:       row.Title,
		RunTime:     row.RunTime,
		ReleaseDate: row.ReleaseDate,
		Rating:      row.Rating,
		Description: row.Description,
		PosterURL:   row.PosterURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	for _, g := range row.Genres {
		m.Genres = append(m.Genres, g.Genre)
	}
	for _, d := range row.Directors {
		m.Directors = append(m.Directors, d.Director)
	}
	for _, a := range row.Actors {
		m.Actors = append(m.Actors, a.Actor)
	}
	return m
}

// dedupe drops duplicate values so the composite primary keys on the
// auxiliary tables are never violated by a single request.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
