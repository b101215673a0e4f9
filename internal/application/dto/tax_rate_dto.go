package dto

// TaxRateRequest cuerpo de PUT /api/tax-rates/:year (porcentajes, 0.1 = 0,1%).
type TaxRateRequest struct {
	PercIBS       float64 `json:"perc_ibs"`
	PercCBS       float64 `json:"perc_cbs"`
	PercReducICMS float64 `json:"perc_reduc_icms"`
}

// TaxRateResponse una entrada del cronograma.
type TaxRateResponse struct {
	Year          int     `json:"year"`
	PercIBS       float64 `json:"perc_ibs"`
	PercCBS       float64 `json:"perc_cbs"`
	PercReducICMS float64 `json:"perc_reduc_icms"`
}

// TaxRateListResponse cronograma vigente. Default indica que la tabla estaba vacía
// y se devolvió el cronograma por defecto.
type TaxRateListResponse struct {
	Items   []TaxRateResponse `json:"items"`
	Default bool              `json:"default"`
}
