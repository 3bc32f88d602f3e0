package models

import "time"

// Movie is a film record. The json tags are the public API's field
// names, inherited from the service this backend replaced.
type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"nombre"`
	Synopsis    string    `gorm:"type:text;not null" json:"sinopsis"`
	ReleaseDate string    `gorm:"not null" json:"fecha_lanzamiento"`
	Rating      float64   `gorm:"not null" json:"calificacion_rotten_tomatoes"`
	TrailerURL  string    `json:"trailer_youtube"`
	Image       string    `json:"imagen"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	Cast []CastEntry `gorm:"foreignKey:MovieID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reparto,omitempty"`
}
