package usecase_test

import (
	"context"
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
	"github.com/jhoicas/biztime-api/pkg/slug"
)

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_DerivaCodigoDelNombre(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Company) bool {
		return c.Code == "test_company_2" && c.Name == "Test Company 2" && c.Description == nil
	})).Return(nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	out, err := uc.Create(ctx, dto.CreateCompanyRequest{Name: "Test Company 2"})

	require.NoError(t, err)
	assert.Equal(t, "test_company_2", out.Code)
	assert.Equal(t, slug.Make("Test Company 2"), out.Code)
	assert.Nil(t, out.Description)
	m.AssertExpectations(t)
}

func TestCompanyCreate_NombreVacioNoTocaPersistencia(t *testing.T) {
	m := mocks.NewSet()
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.Create(ctx, dto.CreateCompanyRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.Companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyCreate_NombreSinCaracteresValidos(t *testing.T) {
	m := mocks.NewSet()
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.Create(ctx, dto.CreateCompanyRequest{Name: "¡¿?!"})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	m.Companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompanyCreate_CodigoDuplicadoEsConflict(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.Create(ctx, dto.CreateCompanyRequest{Name: "Apple"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), `"apple"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyGet_IncluyeFacturasYSectores(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("GetByCode", mock.Anything, "apple").Return(&entity.Company{Code: "apple", Name: "Apple"}, nil)
	m.Invoices.On("ListByCompany", mock.Anything, "apple").Return([]*entity.Invoice{
		{ID: 1, CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	}, nil)
	m.Links.On("IndustriesFor", mock.Anything, "apple").Return([]*entity.Industry{{Code: "tech", Name: "Technology"}}, nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	out, err := uc.Get(ctx, "apple")

	require.NoError(t, err)
	require.Len(t, out.Invoices, 1)
	assert.Equal(t, int64(1), out.Invoices[0].ID)
	assert.Equal(t, "2024-01-02", out.Invoices[0].AddDate)
	assert.Nil(t, out.Invoices[0].PaidDate)
	assert.Equal(t, []string{"Technology"}, out.Industries)
	m.AssertExpectations(t)
}

func TestCompanyGet_Inexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("GetByCode", mock.Anything, "nope").Return(nil, nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.Get(ctx, "nope")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
	m.Invoices.AssertNotCalled(t, "ListByCompany", mock.Anything, mock.Anything)
}

func TestCompanyUpdate_Inexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("Update", mock.Anything, mock.Anything).Return(false, nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.Update(ctx, "nope", dto.UpdateCompanyRequest{Name: "Nope"})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCompanyUpdate_ConservaCodigo(t *testing.T) {
	m := mocks.NewSet()
	desc := "nueva"
	m.Companies.On("Update", mock.Anything, &entity.Company{Code: "apple", Name: "Apple Inc", Description: &desc}).Return(true, nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	out, err := uc.Update(ctx, "apple", dto.UpdateCompanyRequest{Name: "Apple Inc", Description: &desc})

	require.NoError(t, err)
	assert.Equal(t, "apple", out.Code)
	assert.Equal(t, "Apple Inc", out.Name)
	m.AssertExpectations(t)
}

func TestCompanyDelete(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("Delete", mock.Anything, "apple").Return(true, nil)
	m.Companies.On("Delete", mock.Anything, "nope").Return(false, nil)
	uc := usecase.NewCompanyUseCase(m.Repos())

	assert.NoError(t, uc.Delete(ctx, "apple"))
	assert.True(t, errors.Is(uc.Delete(ctx, "nope"), domain.ErrNotFound))
}

func TestCompanyList_ErrorDeBDEsInterno(t *testing.T) {
	m := mocks.NewSet()
	m.Companies.On("List", mock.Anything).Return(nil, errors.New("conexión cerrada"))
	uc := usecase.NewCompanyUseCase(m.Repos())

	_, err := uc.List(ctx)

	require.Error(t, err)
	assert.Nil(t, domain.KindOf(err))
}
