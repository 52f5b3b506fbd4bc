package dto

// SuccessResponse envoltorio de toda respuesta exitosa.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse cuerpo de error HTTP. Details solo viaja en errores de validación.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// OK construye la respuesta exitosa.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// Fail construye la respuesta de error.
func Fail(code, message string, details any) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Code: code, Details: details}
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination calcula totalPages = ceil(total/limit); 0 si no hay filas.
func NewPagination(total, page, limit int) Pagination {
	p := Pagination{Total: total, Page: page, Limit: limit}
	if total > 0 && limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}
