package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	MovieHandler  *MovieHandler
	PersonHandler *PersonHandler
	CastHandler   *CastHandler
}
