package services

import (
	"context"
	"mime/multipart"

	"gorm.io/gorm"

	"filmoteca_backend/internal/logger"
	"filmoteca_backend/internal/models"
	"filmoteca_backend/internal/repositories"
	"filmoteca_backend/internal/services/dto"
	"filmoteca_backend/pkg/apperrors"
)

type MovieService interface {
	ListMovies(db *gorm.DB) ([]models.Movie, error)
	GetMovie(db *gorm.DB, id uint) (*dto.MovieDetailResponse, error)
	GetMoviesByPerson(db *gorm.DB, personID uint) ([]dto.MovieDetailResponse, error)
	CreateMovie(db *gorm.DB, req *dto.MovieRequest) (*models.Movie, error)
	ReplaceMovie(db *gorm.DB, id uint, req *dto.MovieRequest) (*models.Movie, error)
	PatchMovie(db *gorm.DB, id uint, req *dto.MoviePatchRequest) (*models.Movie, error)
	DeleteMovie(db *gorm.DB, id uint) error
	AttachImage(ctx context.Context, db *gorm.DB, id uint, file *multipart.FileHeader) (*models.Movie, error)
}

type MovieServiceImpl struct {
	movieRepo repositories.MovieRepository
	castRepo  repositories.CastRepository
	images    *ImageStore
}

func NewMovieService(
	movieRepo repositories.MovieRepository,
	castRepo repositories.CastRepository,
	images *ImageStore,
) MovieService {
	return &MovieServiceImpl{
		movieRepo: movieRepo,
		castRepo:  castRepo,
		images:    images,
	}
}

func (s *MovieServiceImpl) ListMovies(db *gorm.DB) ([]models.Movie, error) {
	movies, err := s.movieRepo.ListWithCast(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// empty collections render as [], never null
	if movies == nil {
		movies = []models.Movie{}
	}
	for i := range movies {
		if movies[i].Cast == nil {
			movies[i].Cast = []models.CastEntry{}
		}
	}
	return movies, nil
}

func (s *MovieServiceImpl) GetMovie(db *gorm.DB, id uint) (*dto.MovieDetailResponse, error) {
	movie, err := s.movieRepo.FindByIDWithCast(db, id)
	if err != nil {
		return nil, movieStoreError(err)
	}
	resp := movieDetail(movie)
	return &resp, nil
}

func (s *MovieServiceImpl) GetMoviesByPerson(db *gorm.DB, personID uint) ([]dto.MovieDetailResponse, error) {
	movies, err := s.movieRepo.ListByPersonID(db, personID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// a person with zero appearances is a collection-level 404
	if len(movies) == 0 {
		return nil, apperrors.ErrNoMoviesForPerson
	}

	out := make([]dto.MovieDetailResponse, 0, len(movies))
	for i := range movies {
		out = append(out, movieDetail(&movies[i]))
	}
	return out, nil
}

func (s *MovieServiceImpl) CreateMovie(db *gorm.DB, req *dto.MovieRequest) (*models.Movie, error) {
	movie := &models.Movie{
		Name:        req.Nombre,
		Synopsis:    req.Sinopsis,
		ReleaseDate: req.FechaLanzamiento,
		Rating:      req.Calificacion,
		TrailerURL:  req.TrailerYoutube,
	}

	if err := s.movieRepo.Create(db, movie); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(req.Reparto) > 0 {
		if err := s.castRepo.BulkCreate(db, castEntries(movie.ID, req.Reparto)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return movie, nil
}

func (s *MovieServiceImpl) ReplaceMovie(db *gorm.DB, id uint, req *dto.MovieRequest) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(db, id)
	if err != nil {
		return nil, movieStoreError(err)
	}

	// full update: all five mutable fields are overwritten, so an
	// omitted trailer clears the stored one
	movie.Name = req.Nombre
	movie.Synopsis = req.Sinopsis
	movie.ReleaseDate = req.FechaLanzamiento
	movie.Rating = req.Calificacion
	movie.TrailerURL = req.TrailerYoutube

	if err := s.movieRepo.Update(db, movie); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.replaceCast(db, movie.ID, req.Reparto); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieServiceImpl) PatchMovie(db *gorm.DB, id uint, req *dto.MoviePatchRequest) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(db, id)
	if err != nil {
		return nil, movieStoreError(err)
	}

	// partial update keeps the presence rule of the old API: a zero
	// value (empty string, rating 0) means "not sent"
	if req.Nombre != "" {
		movie.Name = req.Nombre
	}
	if req.Sinopsis != "" {
		movie.Synopsis = req.Sinopsis
	}
	if req.FechaLanzamiento != "" {
		movie.ReleaseDate = req.FechaLanzamiento
	}
	if req.Calificacion != 0 {
		movie.Rating = req.Calificacion
	}
	if req.TrailerYoutube != "" {
		movie.TrailerURL = req.TrailerYoutube
	}

	if err := s.movieRepo.Update(db, movie); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.replaceCast(db, movie.ID, req.Reparto); err != nil {
		return nil, err
	}

	return movie, nil
}

func (s *MovieServiceImpl) DeleteMovie(db *gorm.DB, id uint) error {
	movie, err := s.movieRepo.FindByID(db, id)
	if err != nil {
		return movieStoreError(err)
	}

	// explicit cascade first; the store-level constraint is the net
	if err := s.castRepo.DeleteByMovieID(db, movie.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.movieRepo.Delete(db, movie); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("movie deleted", "movie_id", movie.ID)
	return nil
}

func (s *MovieServiceImpl) AttachImage(ctx context.Context, db *gorm.DB, id uint, file *multipart.FileHeader) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(db, id)
	if err != nil {
		return nil, movieStoreError(err)
	}

	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	fileName, err := s.images.SaveEntityImage(ctx, ImageKindMovie, movie.ID, file)
	if err != nil {
		return nil, err
	}

	movie.Image = fileName
	if err := s.movieRepo.Update(db, movie); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return movie, nil
}

// replaceCast implements wholesale replacement: when a non-empty cast
// array accompanies an update, the existing entries are deleted and the
// new set inserted. An absent or empty array leaves the cast alone.
func (s *MovieServiceImpl) replaceCast(db *gorm.DB, movieID uint, items []dto.CastItemRequest) error {
	if len(items) == 0 {
		return nil
	}
	if err := s.castRepo.DeleteByMovieID(db, movieID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.castRepo.BulkCreate(db, castEntries(movieID, items)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func castEntries(movieID uint, items []dto.CastItemRequest) []models.CastEntry {
	entries := make([]models.CastEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.CastEntry{
			MovieID:    movieID,
			PersonID:   item.PersonaID,
			IsDirector: item.EsDirector,
		})
	}
	return entries
}

// movieDetail trims each cast entry's persona to the name fields.
func movieDetail(movie *models.Movie) dto.MovieDetailResponse {
	reparto := make([]dto.CastEntryResponse, 0, len(movie.Cast))
	for _, entry := range movie.Cast {
		item := dto.CastEntryResponse{
			ID:         entry.ID,
			MovieID:    entry.MovieID,
			PersonaID:  entry.PersonID,
			EsDirector: entry.IsDirector,
		}
		if entry.Person != nil {
			item.Persona = &dto.PersonNameResponse{
				Nombre:   entry.Person.FirstName,
				Apellido: entry.Person.LastName,
			}
		}
		reparto = append(reparto, item)
	}

	return dto.MovieDetailResponse{
		ID:               movie.ID,
		Nombre:           movie.Name,
		Sinopsis:         movie.Synopsis,
		FechaLanzamiento: movie.ReleaseDate,
		Calificacion:     movie.Rating,
		TrailerYoutube:   movie.TrailerURL,
		Imagen:           movie.Image,
		Reparto:          reparto,
	}
}

func movieStoreError(err error) error {
	if apperrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrMovieNotFound
	}
	return apperrors.InternalError(err)
}
