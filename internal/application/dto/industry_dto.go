package dto

// CreateIndustryRequest entrada para crear un sector.
type CreateIndustryRequest struct {
	Code string `json:"code" validate:"required,max=50"`
	Name string `json:"name" validate:"required,max=200"`
}

// UpdateIndustryRequest entrada para renombrar un sector.
type UpdateIndustryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// LinkCompanyRequest entrada de POST /industries/:code.
type LinkCompanyRequest struct {
	CompanyCode string `json:"company_code" validate:"required"`
}

// IndustryResponse salida de un sector.
type IndustryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IndustryDetailResponse sector con los códigos de sus empresas.
type IndustryDetailResponse struct {
	IndustryResponse
	Companies []string `json:"companies"`
}

// CompanyIndustryResponse par asociado empresa ↔ sector.
type CompanyIndustryResponse struct {
	CompCode     string `json:"comp_code"`
	IndustryCode string `json:"industry_code"`
}

// IndustryEnvelope {"industry": {...}}
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryDetailEnvelope {"industry": {..., "companies": [...]}}
type IndustryDetailEnvelope struct {
	Industry IndustryDetailResponse `json:"industry"`
}

// IndustryListEnvelope {"industries": [...]}
type IndustryListEnvelope struct {
	Industries []IndustryDetailResponse `json:"industries"`
}

// CompanyIndustryEnvelope {"company_industry_relationship": {...}}
type CompanyIndustryEnvelope struct {
	Relationship CompanyIndustryResponse `json:"company_industry_relationship"`
}
