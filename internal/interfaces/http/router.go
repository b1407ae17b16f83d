package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Service        string
	DB             Pinger
	CompanyUC      *usecase.CompanyUseCase
	InvoiceUC      *usecase.InvoiceUseCase
	IndustryUC     *usecase.IndustryUseCase
	RelationshipUC *usecase.RelationshipUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", HealthHandler(deps.Service, deps.DB))

	// Companies
	companies := app.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:code", companyHandler.Get)
	companies.Put("/:code", companyHandler.Update)
	companies.Patch("/:code", companyHandler.Update)
	companies.Delete("/:code", companyHandler.Delete)

	// Invoices
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Patch("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)

	// Industries y asociación con empresas
	industries := app.Group("/industries")
	industryHandler := NewIndustryHandler(deps.IndustryUC, deps.RelationshipUC)
	industries.Get("/", industryHandler.List)
	industries.Post("/", industryHandler.Create)
	industries.Get("/:code", industryHandler.Get)
	industries.Post("/:code", industryHandler.Link)
	industries.Put("/:code", industryHandler.Update)
	industries.Patch("/:code", industryHandler.Update)
	industries.Delete("/:code", industryHandler.Delete)
	industries.Delete("/:code/companies/:comp_code", industryHandler.Unlink)
}
