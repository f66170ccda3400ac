package services

import (
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency service first since the document services depend on it
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Product = NewProductService(repos.ProductRepo, container.Currency)
	container.Sale = NewSaleService(repos.SaleRepo, container.Currency)
	container.Quotation = NewQuotationService(repos.QuotationRepo, container.Currency)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
