package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest entrada para crear una factura (siempre nace sin pagar).
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code" validate:"required"`
	Amt      *decimal.Decimal `json:"amt" validate:"required,gt=0" swaggertype:"number"`
}

// UpdateInvoiceRequest entrada para actualizar una factura.
// Paid omitido deja el estado de pago como está.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt" validate:"required,gt=0" swaggertype:"number"`
	Paid *bool            `json:"paid"`
}

// InvoiceResponse salida plana de una factura.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceSummaryResponse factura dentro del detalle de su empresa (sin comp_code).
type InvoiceSummaryResponse struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt" swaggertype:"number"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetailResponse factura con la empresa que la emite.
type InvoiceDetailResponse struct {
	InvoiceSummaryResponse
	Company CompanyResponse `json:"company"`
}

// InvoiceEnvelope {"invoice": {...}}
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope {"invoice": {..., "company": {...}}}
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// InvoiceListEnvelope {"invoices": [...]}
type InvoiceListEnvelope struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
