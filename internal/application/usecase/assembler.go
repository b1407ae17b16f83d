package usecase

import (
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

func formatDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func toCompanyResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// toCompanyDetail arma la empresa con sus facturas y nombres de sector.
// Las listas vacías salen como [] y no como null.
func toCompanyDetail(c *entity.Company, invoices []*entity.Invoice, industries []*entity.Industry) dto.CompanyDetailResponse {
	out := dto.CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(c),
		Invoices:        make([]dto.InvoiceSummaryResponse, 0, len(invoices)),
		Industries:      make([]string, 0, len(industries)),
	}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, toInvoiceSummary(inv))
	}
	for _, i := range industries {
		out.Industries = append(out.Industries, i.Name)
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  formatDate(inv.AddDate),
		PaidDate: formatOptionalDate(inv.PaidDate),
	}
}

func toInvoiceSummary(inv *entity.Invoice) dto.InvoiceSummaryResponse {
	return dto.InvoiceSummaryResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  formatDate(inv.AddDate),
		PaidDate: formatOptionalDate(inv.PaidDate),
	}
}

func toInvoiceDetail(row *entity.InvoiceWithCompany) dto.InvoiceDetailResponse {
	return dto.InvoiceDetailResponse{
		InvoiceSummaryResponse: toInvoiceSummary(&row.Invoice),
		Company:                toCompanyResponse(&row.Company),
	}
}

func toIndustryResponse(i *entity.Industry) dto.IndustryResponse {
	return dto.IndustryResponse{Code: i.Code, Name: i.Name}
}

func toIndustryDetail(i *entity.Industry, companyCodes []string) dto.IndustryDetailResponse {
	if companyCodes == nil {
		companyCodes = []string{}
	}
	return dto.IndustryDetailResponse{
		IndustryResponse: toIndustryResponse(i),
		Companies:        companyCodes,
	}
}

// groupCompanyCodes agrupa las filas de asociación por sector, conservando el orden de llegada.
func groupCompanyCodes(links []*entity.CompanyIndustry) map[string][]string {
	byIndustry := make(map[string][]string)
	for _, l := range links {
		byIndustry[l.IndustryCode] = append(byIndustry[l.IndustryCode], l.CompCode)
	}
	return byIndustry
}

func toIndustryList(industries []*entity.Industry, links []*entity.CompanyIndustry) []dto.IndustryDetailResponse {
	byIndustry := groupCompanyCodes(links)
	out := make([]dto.IndustryDetailResponse, 0, len(industries))
	for _, i := range industries {
		out = append(out, toIndustryDetail(i, byIndustry[i.Code]))
	}
	return out
}

func toCompanyIndustryResponse(l *entity.CompanyIndustry) dto.CompanyIndustryResponse {
	return dto.CompanyIndustryResponse{CompCode: l.CompCode, IndustryCode: l.IndustryCode}
}
