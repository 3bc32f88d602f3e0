package services

import (
	"gorm.io/gorm"

	"filmoteca_backend/internal/models"
	"filmoteca_backend/internal/repositories"
	"filmoteca_backend/internal/services/dto"
	"filmoteca_backend/pkg/apperrors"
)

type CastService interface {
	ListCast(db *gorm.DB) ([]models.CastEntry, error)
	GetCastEntry(db *gorm.DB, id uint) (*models.CastEntry, error)
	CreateCastEntry(db *gorm.DB, req *dto.CastEntryRequest) (*models.CastEntry, error)
	ReplaceCastEntry(db *gorm.DB, id uint, req *dto.CastEntryRequest) (*models.CastEntry, error)
	DeleteCastEntry(db *gorm.DB, id uint) error
}

type CastServiceImpl struct {
	castRepo repositories.CastRepository
}

func NewCastService(castRepo repositories.CastRepository) CastService {
	return &CastServiceImpl{
		castRepo: castRepo,
	}
}

func (s *CastServiceImpl) ListCast(db *gorm.DB) ([]models.CastEntry, error) {
	entries, err := s.castRepo.ListWithRelations(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if entries == nil {
		entries = []models.CastEntry{}
	}
	return entries, nil
}

func (s *CastServiceImpl) GetCastEntry(db *gorm.DB, id uint) (*models.CastEntry, error) {
	entry, err := s.castRepo.FindByIDWithRelations(db, id)
	if err != nil {
		return nil, castStoreError(err)
	}
	return entry, nil
}

// CreateCastEntry inserts the entry as sent. A movieId or personaId
// pointing at a missing row fails at the store with a foreign-key
// violation, surfaced as a plain server error.
func (s *CastServiceImpl) CreateCastEntry(db *gorm.DB, req *dto.CastEntryRequest) (*models.CastEntry, error) {
	entry := &models.CastEntry{
		MovieID:    req.MovieID,
		PersonID:   req.PersonaID,
		IsDirector: req.EsDirector,
	}

	if err := s.castRepo.Create(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return entry, nil
}

func (s *CastServiceImpl) ReplaceCastEntry(db *gorm.DB, id uint, req *dto.CastEntryRequest) (*models.CastEntry, error) {
	entry, err := s.castRepo.FindByID(db, id)
	if err != nil {
		return nil, castStoreError(err)
	}

	// all three fields overwritten; an omitted esDirector stores false
	entry.MovieID = req.MovieID
	entry.PersonID = req.PersonaID
	entry.IsDirector = req.EsDirector

	if err := s.castRepo.Update(db, entry); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return entry, nil
}

func (s *CastServiceImpl) DeleteCastEntry(db *gorm.DB, id uint) error {
	entry, err := s.castRepo.FindByID(db, id)
	if err != nil {
		return castStoreError(err)
	}

	if err := s.castRepo.Delete(db, entry); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func castStoreError(err error) error {
	if apperrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrCastEntryNotFound
	}
	return apperrors.InternalError(err)
}
