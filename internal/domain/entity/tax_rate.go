package entity

// TaxRateYear alícuotas de transición de un año fiscal (tabla tabla_aliquota).
// Los tres valores son porcentajes: 0.1 significa 0,1%.
type TaxRateYear struct {
	Year          int     `json:"year" yaml:"year"`
	PercIBS       float64 `json:"perc_ibs" yaml:"perc_ibs"`
	PercCBS       float64 `json:"perc_cbs" yaml:"perc_cbs"`
	PercReducICMS float64 `json:"perc_reduc_icms" yaml:"perc_reduc_icms"`
}
