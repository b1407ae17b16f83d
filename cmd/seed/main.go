// seed crea las tablas (si no existen) y carga datos de ejemplo: empresas,
// sectores, asociaciones y facturas. Pasa por los casos de uso, así que los
// datos cumplen las mismas validaciones que la API. Es re-ejecutable.
//
// Uso: go run ./cmd/seed [-reset]
// Con -reset vacía las cuatro tablas antes de cargar.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

type seedCompany struct {
	name, description string
	industries        []string
	invoices          []string // montos
}

var industries = []dto.CreateIndustryRequest{
	{Code: "acct", Name: "Accounting"},
	{Code: "tech", Name: "Technology"},
	{Code: "hw", Name: "Hardware"},
}

var companies = []seedCompany{
	{name: "Apple Computer", description: "Maker of OSX.", industries: []string{"tech", "hw"}, invoices: []string{"100", "200", "300"}},
	{name: "IBM", description: "Big blue.", industries: []string{"tech", "acct"}, invoices: []string{"400"}},
}

func main() {
	reset := flag.Bool("reset", false, "vaciar las tablas antes de cargar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	if *reset {
		if _, err := pool.Exec(ctx, `TRUNCATE companies, industries, companies_industries, invoices RESTART IDENTITY CASCADE`); err != nil {
			log.Fatal().Err(err).Msg("vaciar tablas")
		}
		log.Info().Msg("tablas vaciadas")
	}

	repos := usecase.Repos{
		Companies:  postgres.NewCompanyRepository(pool),
		Invoices:   postgres.NewInvoiceRepository(pool),
		Industries: postgres.NewIndustryRepository(pool),
		Links:      postgres.NewCompanyIndustryRepository(pool),
	}
	tx := postgres.NewTxRunner(pool)
	companyUC := usecase.NewCompanyUseCase(repos)
	invoiceUC := usecase.NewInvoiceUseCase(repos, tx)
	industryUC := usecase.NewIndustryUseCase(repos)
	relUC := usecase.NewRelationshipUseCase(repos, tx)

	for _, in := range industries {
		if _, err := industryUC.Create(ctx, in); skip(err) != nil {
			log.Fatal().Err(err).Str("industry", in.Code).Msg("crear sector")
		}
	}

	var nInvoices int
	for _, sc := range companies {
		desc := sc.description
		c, err := companyUC.Create(ctx, dto.CreateCompanyRequest{Name: sc.name, Description: &desc})
		if errors.Is(err, domain.ErrConflict) {
			log.Info().Str("company", sc.name).Msg("empresa ya existe, se omite")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("company", sc.name).Msg("crear empresa")
		}
		for _, code := range sc.industries {
			if _, err := relUC.Link(ctx, c.Code, code); skip(err) != nil {
				log.Fatal().Err(err).Str("company", c.Code).Str("industry", code).Msg("asociar sector")
			}
		}
		for _, raw := range sc.invoices {
			amt := decimal.RequireFromString(raw)
			if _, err := invoiceUC.Create(ctx, dto.CreateInvoiceRequest{CompCode: c.Code, Amt: &amt}); err != nil {
				log.Fatal().Err(err).Str("company", c.Code).Msg("crear factura")
			}
			nInvoices++
		}
	}

	log.Info().
		Int("companies", len(companies)).
		Int("industries", len(industries)).
		Int("invoices", nInvoices).
		Msg("datos de ejemplo cargados")
}

// skip ignora los conflictos: el dato ya estaba cargado.
func skip(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	return err
}
