package dto

// RemoveRequest body para las eliminaciones por lote (productos o movimientos).
type RemoveRequest struct {
	IDs []string `json:"ids"`
}

// RemoveResponse cantidad de registros efectivamente eliminados.
// Los ids que no existían no cuentan.
type RemoveResponse struct {
	Removed int64 `json:"removed"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Available solo se informa con INSUFFICIENT_STOCK.
	Available *int64 `json:"available,omitempty"`
}

// HealthResponse estado del proceso y del backend de persistencia activo.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
