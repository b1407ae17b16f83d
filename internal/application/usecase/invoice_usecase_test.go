package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/mocks"
)

func newInvoiceUC(m *mocks.Set) (*usecase.InvoiceUseCase, *mocks.TxRunner) {
	tx := &mocks.TxRunner{Repos: m.Repos()}
	return usecase.NewInvoiceUseCase(m.Repos(), tx), tx
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestInvoiceCreate_EmpresaInexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("GetByCode", mock.Anything, "nope").Return(nil, nil)
	uc, tx := newInvoiceUC(m)

	_, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "nope", Amt: dec("10")})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, 1, tx.Runs)
	m.Invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceCreate_NaceSinPagar(t *testing.T) {
	m := mocks.NewSet()
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	m.Companies.On("GetByCode", mock.Anything, "apple").Return(&entity.Company{Code: "apple"}, nil)
	m.Invoices.On("Create", mock.Anything, "apple", decimal.RequireFromString("100")).
		Return(&entity.Invoice{ID: 5, CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: today}, nil)
	uc, _ := newInvoiceUC(m)

	out, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "apple", Amt: dec("100")})

	require.NoError(t, err)
	assert.False(t, out.Paid)
	assert.Nil(t, out.PaidDate)
	assert.Equal(t, "2024-05-10", out.AddDate)
	m.AssertExpectations(t)
}

func TestInvoiceCreate_FKVioladaEsNotFound(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("GetByCode", mock.Anything, "apple").Return(&entity.Company{Code: "apple"}, nil)
	m.Invoices.On("Create", mock.Anything, "apple", mock.Anything).Return(nil, domain.ErrNotFound)
	uc, _ := newInvoiceUC(m)

	_, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "apple", Amt: dec("1")})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Contains(t, err.Error(), "apple")
}

func TestInvoiceCreate_SinCamposEsInvalid(t *testing.T) {
	m := mocks.NewSet()
	uc, tx := newInvoiceUC(m)

	_, err := uc.Create(ctx, dto.CreateInvoiceRequest{})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Zero(t, tx.Runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: rama según paid
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_RamaSegunPaid(t *testing.T) {
	yes, no := true, false
	cases := []struct {
		name   string
		paid   *bool
		change entity.PaymentChange
	}{
		{"paid omitido", nil, entity.PaymentUnchanged},
		{"paid true", &yes, entity.PaymentMarkPaid},
		{"paid false", &no, entity.PaymentMarkUnpaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mocks.NewSet()
			m.Invoices.On("Update", mock.Anything, int64(3), decimal.RequireFromString("300"), tc.change).
				Return(&entity.Invoice{ID: 3, Amt: decimal.NewFromInt(300)}, nil)
			uc, _ := newInvoiceUC(m)

			_, err := uc.Update(ctx, "3", dto.UpdateInvoiceRequest{Amt: dec("300"), Paid: tc.paid})

			require.NoError(t, err)
			m.AssertExpectations(t)
		})
	}
}

func TestInvoiceUpdate_MarcarPagadaFijaPaidDate(t *testing.T) {
	m := mocks.NewSet()
	today := time.Now().UTC().Truncate(24 * time.Hour)
	m.Invoices.On("Update", mock.Anything, int64(3), mock.Anything, entity.PaymentMarkPaid).
		Return(&entity.Invoice{ID: 3, Amt: decimal.NewFromInt(300), Paid: true, AddDate: today, PaidDate: &today}, nil)
	yes := true
	uc, _ := newInvoiceUC(m)

	out, err := uc.Update(ctx, "3", dto.UpdateInvoiceRequest{Amt: dec("300"), Paid: &yes})

	require.NoError(t, err)
	assert.True(t, out.Paid)
	require.NotNil(t, out.PaidDate)
	assert.Equal(t, today.Format(dto.DateLayout), *out.PaidDate)
}

func TestInvoiceUpdate_Inexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Invoices.On("Update", mock.Anything, int64(99), mock.Anything, entity.PaymentUnchanged).Return(nil, nil)
	uc, _ := newInvoiceUC(m)

	_, err := uc.Update(ctx, "99", dto.UpdateInvoiceRequest{Amt: dec("1")})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Ids no numéricos
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoice_IdNoNumericoEsNotFound(t *testing.T) {
	m := mocks.NewSet()
	uc, _ := newInvoiceUC(m)

	_, err := uc.Get(ctx, "abc")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.Update(ctx, "-1", dto.UpdateInvoiceRequest{Amt: dec("1")})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	assert.True(t, errors.Is(uc.Delete(ctx, "1.5"), domain.ErrNotFound))

	m.AssertExpectations(t)
}

func TestInvoiceGet_AnidaEmpresa(t *testing.T) {
	m := mocks.NewSet()
	m.Invoices.On("GetWithCompany", mock.Anything, int64(1)).Return(&entity.InvoiceWithCompany{
		Invoice: entity.Invoice{ID: 1, CompCode: "ibm", Amt: decimal.NewFromInt(400)},
		Company: entity.Company{Code: "ibm", Name: "IBM"},
	}, nil)
	m.Invoices.On("GetWithCompany", mock.Anything, int64(2)).Return(nil, nil)
	uc, _ := newInvoiceUC(m)

	out, err := uc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "ibm", out.Company.Code)

	_, err = uc.Get(ctx, "2")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestInvoiceDelete(t *testing.T) {
	m := mocks.NewSet()
	m.Invoices.On("Delete", mock.Anything, int64(1)).Return(true, nil)
	m.Invoices.On("Delete", mock.Anything, int64(2)).Return(false, nil)
	uc, _ := newInvoiceUC(m)

	assert.NoError(t, uc.Delete(ctx, "1"))
	assert.True(t, errors.Is(uc.Delete(ctx, "2"), domain.ErrNotFound))
}
