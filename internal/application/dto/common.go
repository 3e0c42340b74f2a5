package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Page    int `query:"page" validate:"min=0"`
	PerPage int `query:"per_page" validate:"min=0,max=200"`
}

// DefaultPage aplica valores por defecto si Page/PerPage vienen en cero.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = 50
	}
}

// PageMeta metadatos de página en respuestas del backend.
type PageMeta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
