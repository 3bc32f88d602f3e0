package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmoteca_backend/internal/models"
)

type CastRepository interface {
	ListWithRelations(db *gorm.DB) ([]models.CastEntry, error)
	FindByID(db *gorm.DB, id uint) (*models.CastEntry, error)
	FindByIDWithRelations(db *gorm.DB, id uint) (*models.CastEntry, error)
	Create(db *gorm.DB, entry *models.CastEntry) error
	BulkCreate(db *gorm.DB, entries []models.CastEntry) error
	Update(db *gorm.DB, entry *models.CastEntry) error
	Delete(db *gorm.DB, entry *models.CastEntry) error
	DeleteByMovieID(db *gorm.DB, movieID uint) error
}

type CastRepositoryImpl struct{}

func NewCastRepository() CastRepository {
	return &CastRepositoryImpl{}
}

// ListWithRelations returns every cast entry with its movie and person
// eagerly loaded.
func (r *CastRepositoryImpl) ListWithRelations(db *gorm.DB) ([]models.CastEntry, error) {
	var entries []models.CastEntry
	err := db.
		Preload("Movie").
		Preload("Person").
		Find(&entries).Error
	return entries, err
}

func (r *CastRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.CastEntry, error) {
	var entry models.CastEntry
	if err := db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *CastRepositoryImpl) FindByIDWithRelations(db *gorm.DB, id uint) (*models.CastEntry, error) {
	var entry models.CastEntry
	err := db.
		Preload("Movie").
		Preload("Person").
		First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *CastRepositoryImpl) Create(db *gorm.DB, entry *models.CastEntry) error {
	return db.Omit(clause.Associations).Create(entry).Error
}

func (r *CastRepositoryImpl) BulkCreate(db *gorm.DB, entries []models.CastEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).Create(&entries).Error
}

func (r *CastRepositoryImpl) Update(db *gorm.DB, entry *models.CastEntry) error {
	return db.Omit(clause.Associations).Save(entry).Error
}

func (r *CastRepositoryImpl) Delete(db *gorm.DB, entry *models.CastEntry) error {
	return db.Delete(entry).Error
}

// DeleteByMovieID removes every cast entry for the movie. Used for the
// wholesale replacement on movie updates and the explicit cleanup on
// movie delete.
func (r *CastRepositoryImpl) DeleteByMovieID(db *gorm.DB, movieID uint) error {
	return db.Where("movie_id = ?", movieID).Delete(&models.CastEntry{}).Error
}
