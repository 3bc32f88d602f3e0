package dto

// CastEntryRequest is the body of POST /reparto and PUT /reparto/:id.
// Referential integrity is the store's job: pointing at a missing movie
// or person fails the insert with a foreign-key violation.
type CastEntryRequest struct {
	MovieID    uint `json:"movieId" validate:"required"`
	PersonaID  uint `json:"personaId" validate:"required"`
	EsDirector bool `json:"esDirector"`
}

// CreatedResponse is the 201 body shared by every create endpoint.
type CreatedResponse struct {
	ID  uint   `json:"id"`
	Msg string `json:"msg"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Msg string `json:"msg"`
}
