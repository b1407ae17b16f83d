package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/mocks"
)

func TestIndustryList_UnaConsultaDeAsociaciones(t *testing.T) {
	m := mocks.NewSet()
	m.Industries.On("List", mock.Anything).Return([]*entity.Industry{
		{Code: "acct", Name: "Accounting"},
		{Code: "tech", Name: "Technology"},
	}, nil)
	m.Links.On("ListAll", mock.Anything).Return([]*entity.CompanyIndustry{
		{CompCode: "apple", IndustryCode: "tech"},
	}, nil).Once()
	uc := usecase.NewIndustryUseCase(m.Repos())

	out, err := uc.List(ctx)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Companies)
	assert.NotNil(t, out[0].Companies)
	assert.Equal(t, []string{"apple"}, out[1].Companies)
	m.Links.AssertNotCalled(t, "CompanyCodesFor", mock.Anything, mock.Anything)
	m.AssertExpectations(t)
}

func TestIndustryGet_SinEmpresasNoEsNotFound(t *testing.T) {
	m := mocks.NewSet()
	m.Industries.On("GetByCode", mock.Anything, "empty").Return(&entity.Industry{Code: "empty", Name: "Empty"}, nil)
	m.Links.On("CompanyCodesFor", mock.Anything, "empty").Return(nil, nil)
	uc := usecase.NewIndustryUseCase(m.Repos())

	out, err := uc.Get(ctx, "empty")

	require.NoError(t, err)
	assert.Equal(t, []string{}, out.Companies)
}

func TestIndustryGet_Inexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Industries.On("GetByCode", mock.Anything, "nope").Return(nil, nil)
	uc := usecase.NewIndustryUseCase(m.Repos())

	_, err := uc.Get(ctx, "nope")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestIndustryCreate(t *testing.T) {
	m := mocks.NewSet()
	m.Industries.On("Create", mock.Anything, &entity.Industry{Code: "acct", Name: "Accounting"}).Return(nil).Once()
	m.Industries.On("Create", mock.Anything, &entity.Industry{Code: "acct", Name: "Accounting"}).Return(domain.ErrConflict).Once()
	uc := usecase.NewIndustryUseCase(m.Repos())

	out, err := uc.Create(ctx, dto.CreateIndustryRequest{Code: "acct", Name: "Accounting"})
	require.NoError(t, err)
	assert.Equal(t, "acct", out.Code)

	_, err = uc.Create(ctx, dto.CreateIndustryRequest{Code: "acct", Name: "Accounting"})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = uc.Create(ctx, dto.CreateIndustryRequest{Name: "Sin código"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestIndustryUpdateYDelete_Inexistente(t *testing.T) {
	m := mocks.NewSet()
	m.Industries.On("Update", mock.Anything, mock.Anything).Return(false, nil)
	m.Industries.On("Delete", mock.Anything, "nope").Return(false, nil)
	uc := usecase.NewIndustryUseCase(m.Repos())

	_, err := uc.Update(ctx, "nope", dto.UpdateIndustryRequest{Name: "x"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(uc.Delete(ctx, "nope"), domain.ErrNotFound))
}
