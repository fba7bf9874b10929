package pgsql

import (
	portsrepo "github.com/ahmedhedefa/cashier-ca-web/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tillRepo := newPgxTillRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TillRepo: tillRepo,
	}
}
