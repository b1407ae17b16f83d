package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// Una sentencia por rama de PaymentChange. paid_date solo se fija al pasar de no pagada a pagada;
// marcar de nuevo una factura ya pagada conserva la fecha original.
var invoiceUpdateSQL = map[entity.PaymentChange]string{
	entity.PaymentUnchanged: `
		UPDATE invoices SET amt = $2
		WHERE id = $1
		RETURNING ` + invoiceColumns,
	entity.PaymentMarkPaid: `
		UPDATE invoices
		SET amt       = $2,
		    paid      = true,
		    paid_date = CASE WHEN paid THEN COALESCE(paid_date, CURRENT_DATE) ELSE CURRENT_DATE END
		WHERE id = $1
		RETURNING ` + invoiceColumns,
	entity.PaymentMarkUnpaid: `
		UPDATE invoices SET amt = $2, paid = false, paid_date = NULL
		WHERE id = $1
		RETURNING ` + invoiceColumns,
}

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// List devuelve todas las facturas ordenadas por id.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
}

// ListByCompany devuelve las facturas de una empresa.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
}

// GetWithCompany obtiene la factura y su empresa en una sola consulta.
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		  FROM invoices AS i
		  JOIN companies AS c ON c.code = i.comp_code
		 WHERE i.id = $1`
	var out entity.InvoiceWithCompany
	err := r.q.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.CompCode, &out.Amt, &out.Paid, &out.AddDate, &out.PaidDate,
		&out.Company.Code, &out.Company.Name, &out.Company.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &out, nil
}

// Create persiste una factura nueva sin pagar; add_date lo pone la BD.
func (r *InvoiceRepo) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx,
		`INSERT INTO invoices (comp_code, amt) VALUES ($1, $2) RETURNING `+invoiceColumns,
		compCode, amt,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

// Update cambia el monto y aplica change al estado de pago.
func (r *InvoiceRepo) Update(ctx context.Context, id int64, amt decimal.Decimal, change entity.PaymentChange) (*entity.Invoice, error) {
	query, ok := invoiceUpdateSQL[change]
	if !ok {
		return nil, fmt.Errorf("update invoice: cambio de pago desconocido %d", change)
	}
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, id, amt))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete invoice: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
