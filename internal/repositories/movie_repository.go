package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmoteca_backend/internal/models"
)

type MovieRepository interface {
	ListWithCast(db *gorm.DB) ([]models.Movie, error)
	FindByID(db *gorm.DB, id uint) (*models.Movie, error)
	FindByIDWithCast(db *gorm.DB, id uint) (*models.Movie, error)
	ListByPersonID(db *gorm.DB, personID uint) ([]models.Movie, error)
	Create(db *gorm.DB, movie *models.Movie) error
	Update(db *gorm.DB, movie *models.Movie) error
	Delete(db *gorm.DB, movie *models.Movie) error
}

type MovieRepositoryImpl struct{}

func NewMovieRepository() MovieRepository {
	return &MovieRepositoryImpl{}
}

// ListWithCast returns every movie with its cast entries and each
// entry's person eagerly loaded.
func (r *MovieRepositoryImpl) ListWithCast(db *gorm.DB) ([]models.Movie, error) {
	var movies []models.Movie
	err := db.
		Preload("Cast").
		Preload("Cast.Person").
		Find(&movies).Error
	return movies, err
}

func (r *MovieRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := db.First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepositoryImpl) FindByIDWithCast(db *gorm.DB, id uint) (*models.Movie, error) {
	var movie models.Movie
	err := db.
		Preload("Cast").
		Preload("Cast.Person").
		First(&movie, id).Error
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// ListByPersonID returns the movies having at least one cast entry for
// the person. Done as a composed query: collect the movie ids from the
// join table, then fetch those movies with the cast preload scoped to
// the person.
func (r *MovieRepositoryImpl) ListByPersonID(db *gorm.DB, personID uint) ([]models.Movie, error) {
	var movieIDs []uint
	err := db.Model(&models.CastEntry{}).
		Where("person_id = ?", personID).
		Distinct().
		Pluck("movie_id", &movieIDs).Error
	if err != nil {
		return nil, err
	}
	if len(movieIDs) == 0 {
		return nil, nil
	}

	var movies []models.Movie
	err = db.
		Preload("Cast", "person_id = ?", personID).
		Preload("Cast.Person").
		Where("id IN ?", movieIDs).
		Find(&movies).Error
	return movies, err
}

// Create inserts the movie row only. Cast rows travel through the cast
// repository, never as a side effect of saving a movie.
func (r *MovieRepositoryImpl) Create(db *gorm.DB, movie *models.Movie) error {
	return db.Omit(clause.Associations).Create(movie).Error
}

func (r *MovieRepositoryImpl) Update(db *gorm.DB, movie *models.Movie) error {
	// Save writes all columns, so cleared optional fields stick
	return db.Omit(clause.Associations).Save(movie).Error
}

func (r *MovieRepositoryImpl) Delete(db *gorm.DB, movie *models.Movie) error {
	return db.Delete(movie).Error
}
