package dto

import "github.com/shopspring/decimal"

func init() {
	// Los montos viajan como números JSON (300.5), no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fechas en las respuestas (add_date, paid_date).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeletedResponse confirmación de borrado: {"status": "deleted"}.
type DeletedResponse struct {
	Status string `json:"status"`
}

// Deleted devuelve la confirmación estándar de borrado.
func Deleted() DeletedResponse {
	return DeletedResponse{Status: "deleted"}
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
