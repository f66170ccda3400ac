package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:  newPgxCurrencyRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		QuotationRepo: newPgxQuotationRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
