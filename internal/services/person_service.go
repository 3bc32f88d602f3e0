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

type PersonService interface {
	ListPeople(db *gorm.DB) ([]models.Person, error)
	GetPerson(ctx context.Context, db *gorm.DB, id uint) (*dto.PersonDetailResponse, error)
	CreatePerson(db *gorm.DB, req *dto.PersonRequest) (*models.Person, error)
	ReplacePerson(db *gorm.DB, id uint, req *dto.PersonRequest) (*models.Person, error)
	PatchPerson(db *gorm.DB, id uint, req *dto.PersonPatchRequest) (*models.Person, error)
	DeletePerson(db *gorm.DB, id uint) error
	AttachImage(ctx context.Context, db *gorm.DB, id uint, file *multipart.FileHeader) (*models.Person, error)
}

type PersonServiceImpl struct {
	personRepo repositories.PersonRepository
	images     *ImageStore
}

func NewPersonService(personRepo repositories.PersonRepository, images *ImageStore) PersonService {
	return &PersonServiceImpl{
		personRepo: personRepo,
		images:     images,
	}
}

func (s *PersonServiceImpl) ListPeople(db *gorm.DB) ([]models.Person, error) {
	people, err := s.personRepo.List(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if people == nil {
		people = []models.Person{}
	}
	return people, nil
}

// GetPerson returns the person with the computed image URL attached.
// The URL is built from the stored filename without checking the file
// exists, matching the behavior this API inherited.
func (s *PersonServiceImpl) GetPerson(ctx context.Context, db *gorm.DB, id uint) (*dto.PersonDetailResponse, error) {
	person, err := s.personRepo.FindByID(db, id)
	if err != nil {
		return nil, personStoreError(err)
	}

	return &dto.PersonDetailResponse{
		Person:    *person,
		ImagenURL: s.images.URL(ctx, ImageKindPerson, person.Image),
	}, nil
}

func (s *PersonServiceImpl) CreatePerson(db *gorm.DB, req *dto.PersonRequest) (*models.Person, error) {
	person := &models.Person{
		FirstName:  req.Nombre,
		LastName:   req.Apellido,
		BirthDate:  req.FechaNacimiento,
		BirthPlace: req.LugarNacimiento,
	}

	if err := s.personRepo.Create(db, person); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return person, nil
}

// ReplacePerson overwrites the mandatory name fields and merges the
// optional ones with the presence rule (empty string means "not sent"),
// same as the old API, where full and partial update collapse to the
// same behavior for optional fields.
func (s *PersonServiceImpl) ReplacePerson(db *gorm.DB, id uint, req *dto.PersonRequest) (*models.Person, error) {
	person, err := s.personRepo.FindByID(db, id)
	if err != nil {
		return nil, personStoreError(err)
	}

	person.FirstName = req.Nombre
	person.LastName = req.Apellido
	if req.FechaNacimiento != "" {
		person.BirthDate = req.FechaNacimiento
	}
	if req.LugarNacimiento != "" {
		person.BirthPlace = req.LugarNacimiento
	}

	if err := s.personRepo.Update(db, person); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return person, nil
}

func (s *PersonServiceImpl) PatchPerson(db *gorm.DB, id uint, req *dto.PersonPatchRequest) (*models.Person, error) {
	person, err := s.personRepo.FindByID(db, id)
	if err != nil {
		return nil, personStoreError(err)
	}

	if req.Nombre != "" {
		person.FirstName = req.Nombre
	}
	if req.Apellido != "" {
		person.LastName = req.Apellido
	}
	if req.FechaNacimiento != "" {
		person.BirthDate = req.FechaNacimiento
	}
	if req.LugarNacimiento != "" {
		person.BirthPlace = req.LugarNacimiento
	}

	if err := s.personRepo.Update(db, person); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return person, nil
}

// DeletePerson removes the person row only; dependent cast entries are
// cleaned up by the store-level cascade.
func (s *PersonServiceImpl) DeletePerson(db *gorm.DB, id uint) error {
	person, err := s.personRepo.FindByID(db, id)
	if err != nil {
		return personStoreError(err)
	}

	if err := s.personRepo.Delete(db, person); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("person deleted", "person_id", person.ID)
	return nil
}

func (s *PersonServiceImpl) AttachImage(ctx context.Context, db *gorm.DB, id uint, file *multipart.FileHeader) (*models.Person, error) {
	person, err := s.personRepo.FindByID(db, id)
	if err != nil {
		return nil, personStoreError(err)
	}

	if file == nil {
		return nil, apperrors.ErrNoFileUploaded
	}

	fileName, err := s.images.SaveEntityImage(ctx, ImageKindPerson, person.ID, file)
	if err != nil {
		return nil, err
	}

	person.Image = fileName
	if err := s.personRepo.Update(db, person); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return person, nil
}

func personStoreError(err error) error {
	if apperrors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrPersonNotFound
	}
	return apperrors.InternalError(err)
}
