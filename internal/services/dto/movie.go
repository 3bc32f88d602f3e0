package dto

// CastItemRequest is a cast entry bundled inside a movie create/update
// body. The movie id comes from the enclosing request.
type CastItemRequest struct {
	PersonaID  uint `json:"personaId" validate:"required"`
	EsDirector bool `json:"esDirector"`
}

// MovieRequest is the body of POST /peliculas and PUT /peliculas/:id.
// The four mandatory fields follow the presence rule of the old API:
// a zero value counts as missing.
type MovieRequest struct {
	Nombre           string            `json:"nombre" validate:"required"`
	Sinopsis         string            `json:"sinopsis" validate:"required"`
	FechaLanzamiento string            `json:"fecha_lanzamiento" validate:"required"`
	Calificacion     float64           `json:"calificacion_rotten_tomatoes" validate:"required"`
	TrailerYoutube   string            `json:"trailer_youtube"`
	Reparto          []CastItemRequest `json:"reparto"`
}

// MoviePatchRequest is the body of PATCH /peliculas/:id. Every field is
// optional; zero values leave the stored value untouched.
type MoviePatchRequest struct {
	Nombre           string            `json:"nombre"`
	Sinopsis         string            `json:"sinopsis"`
	FechaLanzamiento string            `json:"fecha_lanzamiento"`
	Calificacion     float64           `json:"calificacion_rotten_tomatoes"`
	TrailerYoutube   string            `json:"trailer_youtube"`
	Reparto          []CastItemRequest `json:"reparto"`
}

// PersonNameResponse is the trimmed persona projection used on movie
// detail and by-person listings.
type PersonNameResponse struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// CastEntryResponse is a cast row with its persona projected to the
// name fields only.
type CastEntryResponse struct {
	ID         uint                `json:"id"`
	MovieID    uint                `json:"movieId"`
	PersonaID  uint                `json:"personaId"`
	EsDirector bool                `json:"esDirector"`
	Persona    *PersonNameResponse `json:"persona,omitempty"`
}

// MovieDetailResponse is a movie with its cast, persona trimmed to
// name fields.
type MovieDetailResponse struct {
	ID               uint                `json:"id"`
	Nombre           string              `json:"nombre"`
	Sinopsis         string              `json:"sinopsis"`
	FechaLanzamiento string              `json:"fecha_lanzamiento"`
	Calificacion     float64             `json:"calificacion_rotten_tomatoes"`
	TrailerYoutube   string              `json:"trailer_youtube"`
	Imagen           string              `json:"imagen"`
	Reparto          []CastEntryResponse `json:"reparto"`
}
