package models

import "time"

// Person is an individual who can appear in movie casts, as actor or
// director.
type Person struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"not null" json:"nombre"`
	LastName   string    `gorm:"not null" json:"apellido"`
	BirthDate  string    `json:"fechaNacimiento"`
	BirthPlace string    `json:"lugarNacimiento"`
	Image      string    `json:"imagen"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
