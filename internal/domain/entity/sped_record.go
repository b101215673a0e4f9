package entity

// Category categoría de un registro de detalle de la EFD.
type Category string

// Categorías reconocidas; el valor es el tag del registro en el archivo.
const (
	CategoryGoods        Category = "C100" // mercaderías (entradas y salidas)
	CategoryEnergyCredit Category = "C500" // energía eléctrica, créditos
	CategoryEnergyDebit  Category = "C600" // energía eléctrica, débitos
	CategoryFreight      Category = "D100" // fletes
)

// Indicador de operación (IND_OPER).
const (
	IndOperIn   = 0  // entrada
	IndOperOut  = 1  // salida
	IndOperNone = -1 // sin indicador (energía) o valor no numérico
)

// SpedRecord registro de detalle con los campos monetarios que usa la simulación.
// DtDoc se conserva tal como viene en el archivo (DDMMAAAA o AAAA-MM-DD).
type SpedRecord struct {
	Category Category `json:"category"`
	CNPJ     string   `json:"cnpj"`
	DtDoc    string   `json:"dt_doc"`
	IndOper  int      `json:"ind_oper"`
	VlDoc    float64  `json:"vl_doc"`
	VlBcIcms float64  `json:"vl_bc_icms"`
	VlIcms   float64  `json:"vl_icms"`
	VlPis    float64  `json:"vl_pis"`
	VlCofins float64  `json:"vl_cofins"`
}

// SpedHeader datos del registro 0000 (abertura del archivo).
type SpedHeader struct {
	CNPJ        string `json:"cnpj"`
	Name        string `json:"name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

// SpedData resultado del parser: un slice por categoría, en el orden del archivo.
type SpedData struct {
	Header        SpedHeader   `json:"header"`
	Goods         []SpedRecord `json:"c100"`
	EnergyCredits []SpedRecord `json:"c500"`
	EnergyDebits  []SpedRecord `json:"c600"`
	Freight       []SpedRecord `json:"d100"`
}

// Energy une créditos (C500) y débitos (C600), en ese orden.
func (d *SpedData) Energy() []SpedRecord {
	out := make([]SpedRecord, 0, len(d.EnergyCredits)+len(d.EnergyDebits))
	out = append(out, d.EnergyCredits...)
	return append(out, d.EnergyDebits...)
}

// Len cantidad total de registros de detalle.
func (d *SpedData) Len() int {
	return len(d.Goods) + len(d.EnergyCredits) + len(d.EnergyDebits) + len(d.Freight)
}
