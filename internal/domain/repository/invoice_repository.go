package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error)
	// GetWithCompany devuelve la factura unida a su empresa; nil, nil si no existe.
	GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error)
	// Create inserta con paid=false, paid_date=NULL y add_date=CURRENT_DATE.
	// Devuelve domain.ErrNotFound si comp_code no existe (violación de FK).
	Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error)
	// Update cambia amt y aplica change al estado de pago; nil, nil si no existe.
	Update(ctx context.Context, id int64, amt decimal.Decimal, change entity.PaymentChange) (*entity.Invoice, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
