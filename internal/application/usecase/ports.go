package usecase

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Repos agrupa los puertos de persistencia. Los casos de uso reciben una
// instancia atada al pool y el TxRunner entrega otra atada a la transacción.
type Repos struct {
	Companies  repository.CompanyRepository
	Invoices   repository.InvoiceRepository
	Industries repository.IndustryRepository
	Links      repository.CompanyIndustryRepository
}

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error se hace rollback y el error se propaga sin envolver.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
