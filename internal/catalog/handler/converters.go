package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/cineflix/dbservice/internal/catalog/domain"
	pb "github.com/cineflix/dbservice/pkg/cineflix/v1"
	"github.com/cineflix/dbservice/pkg/errors"
)

const releaseDateLayout = "2006-01-02"

func movieFromCreateRequest(req *pb.CreateMovieRequest) (*domain.Movie, error) {
	releaseDate, err := parseReleaseDate(req.GetReleaseDate())
	if err != nil {
		return nil, err
	}

	return &domain.Movie{
		Title:       req.GetTitle(),
		Genres:      req.GetGenres(),
		Directors:   req.GetDirectors(),
		Actors:      req.GetActors(),
		RunTime:     int(req.GetRunTime()),
		ReleaseDate: releaseDate,
		Description: req.GetDescription(),
		PosterURL:   req.GetPosterUrl(),
	}, nil
}

func movieFromUpdateRequest(req *pb.UpdateMovieRequest) (*domain.Movie, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, errors.InvalidArgument("invalid movie ID")
	}

	releaseDate, err := parseReleaseDate(req.GetReleaseDate())
	if err != nil {
		return nil, err
	}

	return &domain.Movie{
		ID:          id,
		Title:       req.GetTitle(),
		Genres:      req.GetGenres(),
		Directors:   req.GetDirectors(),
		Actors:      req.GetActors(),
		RunTime:     int(req.GetRunTime()),
		ReleaseDate: releaseDate,
		Description: req.GetDescription(),
		PosterURL:   req.GetPosterUrl(),
	}, nil
}

func parseReleaseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.InvalidArgument("release date must be specified")
	}
	releaseDate, err := time.Parse(releaseDateLayout, value)
	if err != nil {
		return time.Time{}, errors.InvalidArgument("release date must use the YYYY-MM-DD format")
	}
	return releaseDate, nil
}

func movieToProto(movie *domain.Movie) *pb.MovieResponse {
	return &pb.MovieResponse{
		Id:          movie.ID.String(),
		Title:       movie.Title,
		Genres:      movie.Genres,
		Directors:   movie.Directors,
		Actors:      movie.Actors,
		RunTime:     int32(movie.RunTime),
		ReleaseDate: movie.ReleaseDate.Format(releaseDateLayout),
		Rating:      movie.Rating,
		Description: movie.Description,
		PosterUrl:   movie.PosterURL,
	}
}

func moviesToProto(movies []*domain.Movie) *pb.ListMoviesResponse {
	resp := &pb.ListMoviesResponse{Movies: make([]*pb.MovieResponse, 0, len(movies))}
	for _, movie := range movies {
		resp.Movies = append(resp.Movies, movieToProto(movie))
	}
	return resp
}
