package dto

// CreateCompanyRequest entrada para crear una empresa. El código se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest reemplazo completo de los campos mutables de una empresa.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description"`
}

// CompanyResponse salida de una empresa. description es null si no se informó.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse empresa con sus facturas y los nombres de sus sectores.
type CompanyDetailResponse struct {
	CompanyResponse
	Invoices   []InvoiceSummaryResponse `json:"invoices"`
	Industries []string                 `json:"industries"`
}

// CompanyEnvelope {"company": {...}}
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope {"company": {..., "invoices": [...], "industries": [...]}}
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}

// CompanyListEnvelope {"companies": [...]}
type CompanyListEnvelope struct {
	Companies []CompanyResponse `json:"companies"`
}
