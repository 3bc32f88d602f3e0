package dto

import "filmoteca_backend/internal/models"

// PersonRequest is the body of POST /personas and PUT /personas/:id.
type PersonRequest struct {
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	FechaNacimiento string `json:"fechaNacimiento"`
	LugarNacimiento string `json:"lugarNacimiento"`
}

// PersonPatchRequest is the body of PATCH /personas/:id. All fields
// optional, zero values leave the stored value untouched.
type PersonPatchRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	FechaNacimiento string `json:"fechaNacimiento"`
	LugarNacimiento string `json:"lugarNacimiento"`
}

// PersonDetailResponse is a person plus the computed image URL. The URL
// is derived from the stored filename whether or not an image was ever
// uploaded.
type PersonDetailResponse struct {
	models.Person
	ImagenURL string `json:"imagen_url"`
}
