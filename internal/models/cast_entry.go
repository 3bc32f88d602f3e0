package models

import "time"

// CastEntry joins one Movie to one Person, flagged as director or not.
// Both foreign keys cascade on update and delete at the store level;
// movie deletion additionally removes its entries explicitly.
type CastEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MovieID    uint      `gorm:"not null;index" json:"movieId"`
	PersonID   uint      `gorm:"not null;index" json:"personaId"`
	IsDirector bool      `gorm:"default:false" json:"esDirector"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Movie  *Movie  `gorm:"foreignKey:MovieID" json:"pelicula,omitempty"`
	Person *Person `gorm:"foreignKey:PersonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"persona,omitempty"`
}
