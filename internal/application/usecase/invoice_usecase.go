package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/validation"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	repos Repos
	tx    TxRunner
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repos Repos, tx TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{repos: repos, tx: tx}
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.repos.Invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return items, nil
}

// Get devuelve la factura con la empresa que la emite.
// Un id que no es entero no puede existir: NotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, rawID string) (*dto.InvoiceDetailResponse, error) {
	id, err := parseInvoiceID(rawID)
	if err != nil {
		return nil, err
	}
	row, err := uc.repos.Invoices.GetWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, invoiceNotFound(rawID)
	}
	out := toInvoiceDetail(row)
	return &out, nil
}

// Create registra una factura sin pagar para una empresa existente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var created *entity.Invoice
	err := uc.tx.Run(ctx, func(r Repos) error {
		company, err := r.Companies.GetByCode(ctx, in.CompCode)
		if err != nil {
			return err
		}
		if company == nil {
			return companyNotFound(in.CompCode)
		}
		created, err = r.Invoices.Create(ctx, in.CompCode, *in.Amt)
		if errors.Is(err, domain.ErrNotFound) {
			// la empresa se borró entre la comprobación y el insert
			return companyNotFound(in.CompCode)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	out := toInvoiceResponse(created)
	return &out, nil
}

// Update cambia el monto y, si viene paid, el estado de pago:
// paid=true fija paid_date a hoy salvo que ya estuviera pagada; paid=false lo limpia.
func (uc *InvoiceUseCase) Update(ctx context.Context, rawID string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	id, err := parseInvoiceID(rawID)
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	inv, err := uc.repos.Invoices.Update(ctx, id, *in.Amt, entity.PaymentChangeFrom(in.Paid))
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, invoiceNotFound(rawID)
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// Delete elimina la factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := parseInvoiceID(rawID)
	if err != nil {
		return err
	}
	found, err := uc.repos.Invoices.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return invoiceNotFound(rawID)
	}
	return nil
}

func parseInvoiceID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 32) // SERIAL
	if err != nil || id <= 0 {
		return 0, invoiceNotFound(raw)
	}
	return id, nil
}

func invoiceNotFound(id string) error {
	return domain.NotFoundf("no existe la factura con id %q", id)
}
