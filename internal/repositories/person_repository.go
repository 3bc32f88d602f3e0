package repositories

import (
	"gorm.io/gorm"

	"filmoteca_backend/internal/models"
)

type PersonRepository interface {
	List(db *gorm.DB) ([]models.Person, error)
	FindByID(db *gorm.DB, id uint) (*models.Person, error)
	Create(db *gorm.DB, person *models.Person) error
	Update(db *gorm.DB, person *models.Person) error
	Delete(db *gorm.DB, person *models.Person) error
}

type PersonRepositoryImpl struct{}

func NewPersonRepository() PersonRepository {
	return &PersonRepositoryImpl{}
}

func (r *PersonRepositoryImpl) List(db *gorm.DB) ([]models.Person, error) {
	var people []models.Person
	err := db.Find(&people).Error
	return people, err
}

func (r *PersonRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Person, error) {
	var person models.Person
	if err := db.First(&person, id).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepositoryImpl) Create(db *gorm.DB, person *models.Person) error {
	return db.Create(person).Error
}

func (r *PersonRepositoryImpl) Update(db *gorm.DB, person *models.Person) error {
	return db.Save(person).Error
}

// Delete removes the person row. Dependent cast entries go with it via
// the store-level cascade.
func (r *PersonRepositoryImpl) Delete(db *gorm.DB, person *models.Person) error {
	return db.Delete(person).Error
}
