package services

import (
	portsrepo "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/repositories"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Movie and client services first since the rental and reporting services
	// resolve entities through them
	container.Movie = NewMovieService(repos.MovieRepo)
	container.Client = NewClientService(repos.ClientRepo)

	container.Rental = NewRentalService(repos.RentalRepo, container.Movie, container.Client)
	container.Reporting = NewReportingService(repos.RentalRepo, container.Movie, container.Client)

	return container
}
