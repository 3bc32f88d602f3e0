package services

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	MovieService  MovieService
	PersonService PersonService
	CastService   CastService
}
