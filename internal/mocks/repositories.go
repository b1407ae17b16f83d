// Package mocks contiene dobles de prueba (testify/mock) de los puertos de persistencia.
package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository         = (*CompanyRepository)(nil)
	_ repository.InvoiceRepository         = (*InvoiceRepository)(nil)
	_ repository.IndustryRepository        = (*IndustryRepository)(nil)
	_ repository.CompanyIndustryRepository = (*CompanyIndustryRepository)(nil)
	_ usecase.TxRunner                     = (*TxRunner)(nil)
)

// CompanyRepository mock de repository.CompanyRepository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Company), args.Error(1)
}

func (m *CompanyRepository) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *CompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *CompanyRepository) Update(ctx context.Context, company *entity.Company) (bool, error) {
	args := m.Called(ctx, company)
	return args.Bool(0), args.Error(1)
}

func (m *CompanyRepository) Delete(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// InvoiceRepository mock de repository.InvoiceRepository.
type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	args := m.Called(ctx, compCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) GetWithCompany(ctx context.Context, id int64) (*entity.InvoiceWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.InvoiceWithCompany), args.Error(1)
}

func (m *InvoiceRepository) Create(ctx context.Context, compCode string, amt decimal.Decimal) (*entity.Invoice, error) {
	args := m.Called(ctx, compCode, amt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) Update(ctx context.Context, id int64, amt decimal.Decimal, change entity.PaymentChange) (*entity.Invoice, error) {
	args := m.Called(ctx, id, amt, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// IndustryRepository mock de repository.IndustryRepository.
type IndustryRepository struct {
	mock.Mock
}

func (m *IndustryRepository) List(ctx context.Context) ([]*entity.Industry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Industry), args.Error(1)
}

func (m *IndustryRepository) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Industry), args.Error(1)
}

func (m *IndustryRepository) Create(ctx context.Context, industry *entity.Industry) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *IndustryRepository) Update(ctx context.Context, industry *entity.Industry) (bool, error) {
	args := m.Called(ctx, industry)
	return args.Bool(0), args.Error(1)
}

func (m *IndustryRepository) Delete(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// CompanyIndustryRepository mock de repository.CompanyIndustryRepository.
type CompanyIndustryRepository struct {
	mock.Mock
}

func (m *CompanyIndustryRepository) Exists(ctx context.Context, compCode, industryCode string) (bool, error) {
	args := m.Called(ctx, compCode, industryCode)
	return args.Bool(0), args.Error(1)
}

func (m *CompanyIndustryRepository) Link(ctx context.Context, compCode, industryCode string) (*entity.CompanyIndustry, error) {
	args := m.Called(ctx, compCode, industryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CompanyIndustry), args.Error(1)
}

func (m *CompanyIndustryRepository) Unlink(ctx context.Context, compCode, industryCode string) (bool, error) {
	args := m.Called(ctx, compCode, industryCode)
	return args.Bool(0), args.Error(1)
}

func (m *CompanyIndustryRepository) ListAll(ctx context.Context) ([]*entity.CompanyIndustry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CompanyIndustry), args.Error(1)
}

func (m *CompanyIndustryRepository) CompanyCodesFor(ctx context.Context, industryCode string) ([]string, error) {
	args := m.Called(ctx, industryCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *CompanyIndustryRepository) IndustriesFor(ctx context.Context, compCode string) ([]*entity.Industry, error) {
	args := m.Called(ctx, compCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Industry), args.Error(1)
}

// Set agrupa un mock por puerto y los expone como usecase.Repos.
type Set struct {
	Companies  *CompanyRepository
	Invoices   *InvoiceRepository
	Industries *IndustryRepository
	Links      *CompanyIndustryRepository
}

// NewSet crea mocks vacíos para los cuatro puertos.
func NewSet() *Set {
	return &Set{
		Companies:  new(CompanyRepository),
		Invoices:   new(InvoiceRepository),
		Industries: new(IndustryRepository),
		Links:      new(CompanyIndustryRepository),
	}
}

// Repos devuelve los mocks como usecase.Repos.
func (s *Set) Repos() usecase.Repos {
	return usecase.Repos{
		Companies:  s.Companies,
		Invoices:   s.Invoices,
		Industries: s.Industries,
		Links:      s.Links,
	}
}

// AssertExpectations verifica las expectativas de los cuatro mocks.
func (s *Set) AssertExpectations(t mock.TestingT) {
	s.Companies.AssertExpectations(t)
	s.Invoices.AssertExpectations(t)
	s.Industries.AssertExpectations(t)
	s.Links.AssertExpectations(t)
}

// TxRunner ejecuta fn directamente con los repos dados, sin transacción real.
// Runs cuenta las llamadas.
type TxRunner struct {
	Repos usecase.Repos
	Runs  int
}

func (r *TxRunner) Run(ctx context.Context, fn func(repos usecase.Repos) error) error {
	r.Runs++
	return fn(r.Repos)
}
