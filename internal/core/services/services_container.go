package services

import (
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	portssvc "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Till:   NewTillService(repos.TillRepo),
		Change: NewChangeService(WithTillReader(repos.TillRepo)),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ChangeSvcFacade = (*changeService)(nil)
	_ portssvc.TillSvcFacade   = (*tillService)(nil)
)
