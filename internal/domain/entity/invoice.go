package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de una empresa.
// Invariante: PaidDate != nil si y solo si Paid.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// InvoiceWithCompany es una factura unida a la empresa que la emite.
type InvoiceWithCompany struct {
	Invoice
	Company Company
}

// PaymentChange indica qué hacer con el estado de pago al actualizar una factura.
type PaymentChange int

const (
	PaymentUnchanged  PaymentChange = iota // solo cambia amt
	PaymentMarkPaid                        // paid=true, paid_date=hoy (si no estaba pagada)
	PaymentMarkUnpaid                      // paid=false, paid_date=NULL
)

// PaymentChangeFrom traduce el campo opcional "paid" de la petición.
func PaymentChangeFrom(paid *bool) PaymentChange {
	switch {
	case paid == nil:
		return PaymentUnchanged
	case *paid:
		return PaymentMarkPaid
	default:
		return PaymentMarkUnpaid
	}
}
