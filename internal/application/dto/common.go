package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y el tope máximo.
func (p *PageRequest) DefaultPage(def, max int) {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if max > 0 && p.Limit > max {
		p.Limit = max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP: {success:false, code, error}.
// Retryable solo aparece en fallos de transacción que pueden reintentarse.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Message   string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

// MessageResponse respuesta simple de éxito.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
