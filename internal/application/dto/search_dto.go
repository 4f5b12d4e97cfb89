package dto

// SearchRequest query para GET /api/search.
type SearchRequest struct {
	Query string `query:"q"`
	Limit int    `query:"limit"`
}

// SearchResult un resultado de la búsqueda global.
type SearchResult struct {
	Type     string `json:"type"` // client|project|invoice
	ID       string `json:"id"`
	Title    string `json:"title"`    // nombre del cliente/proyecto o número de factura
	Subtitle string `json:"subtitle"` // contexto secundario (email, cliente, estado)
	URL      string `json:"url"`      // ruta relativa en el frontend
}

// SearchResponse resultados agrupados.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}
