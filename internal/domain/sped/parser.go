// Package sped reconstruye los registros de detalle de un archivo EFD (SPED)
// a partir del texto plano delimitado por '|'.
//
// El archivo es jerárquico: el 0000 abre el archivo con el CNPJ de la entidad,
// C010/0140 abren el bloque de mercaderías y energía, D010 el de fletes, y los
// registros de detalle (C100, C500, C600, D100) heredan el CNPJ del último
// encabezado de su bloque. El parser nunca rechaza el archivo: las líneas
// desconocidas se ignoran y los campos ausentes valen cero.
package sped

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

const maxLineBytes = 1024 * 1024

// absent marca un campo que el registro no trae; los montos quedan en cero.
const absent = -1

// block bloque jerárquico al que pertenece un detalle.
type block int

const (
	blockGoods block = iota // bloque C: mercaderías y energía
	blockFreight            // bloque D: fletes
)

// Posiciones del registro 0000.
const (
	headerPeriodStart = 4
	headerPeriodEnd   = 5
	headerName        = 6
	headerCNPJ        = 7
)

// blockHeaderCNPJ posición del CNPJ en C010, 0140 y D010.
const blockHeaderCNPJ = 2

// layout posiciones de los campos de un registro de detalle.
type layout struct {
	category entity.Category
	block    block
	indOper  int
	dtDoc    int
	vlDoc    int
	vlBcIcms int
	vlIcms   int
	vlPis    int
	vlCofins int
}

// Las posiciones de C100 y D100 difieren aunque los campos lógicos son los mismos;
// así lo define el leiaute del arquivo.
var layouts = map[string]layout{
	"C100": {
		category: entity.CategoryGoods, block: blockGoods,
		indOper: 2, dtDoc: 10, vlDoc: 12, vlBcIcms: 21, vlIcms: 22, vlPis: 24, vlCofins: 25,
	},
	"C500": {
		category: entity.CategoryEnergyCredit, block: blockGoods,
		indOper: absent, dtDoc: 10, vlDoc: 13, vlBcIcms: 18, vlIcms: 19, vlPis: 22, vlCofins: 23,
	},
	// C600 no trae el desglose de ICMS/PIS/COFINS.
	"C600": {
		category: entity.CategoryEnergyDebit, block: blockGoods,
		indOper: absent, dtDoc: 5, vlDoc: 7, vlBcIcms: absent, vlIcms: absent, vlPis: absent, vlCofins: absent,
	},
	"D100": {
		category: entity.CategoryFreight, block: blockFreight,
		indOper: 2, dtDoc: 10, vlDoc: 13, vlBcIcms: 18, vlIcms: 19, vlPis: 21, vlCofins: 22,
	},
}

var blockHeaders = map[string]block{
	"C010": blockGoods,
	"0140": blockGoods,
	"D010": blockFreight,
}

// Stats conteo de líneas de una lectura.
type Stats struct {
	Lines      int `json:"lines"`
	Recognized int `json:"recognized"`
	Ignored    int `json:"ignored"`
}

// parseContext CNPJ vigente por bloque más el CNPJ del 0000 como respaldo.
type parseContext struct {
	root   string
	active [2]string
}

// entityFor CNPJ que hereda un detalle del bloque b.
func (c parseContext) entityFor(b block) string {
	if c.active[b] != "" {
		return c.active[b]
	}
	return c.root
}

// accumulator estado del fold sobre las líneas.
type accumulator struct {
	ctx   parseContext
	data  entity.SpedData
	stats Stats
}

func newAccumulator() accumulator {
	return accumulator{data: entity.SpedData{
		Goods:         []entity.SpedRecord{},
		EnergyCredits: []entity.SpedRecord{},
		EnergyDebits:  []entity.SpedRecord{},
		Freight:       []entity.SpedRecord{},
	}}
}

// feed procesa una línea y devuelve el nuevo estado.
func (a accumulator) feed(line string) accumulator {
	a.stats.Lines++
	p := strings.Split(strings.TrimRight(line, "\r"), "|")
	if len(p) < 2 {
		a.stats.Ignored++
		return a
	}
	tag := p[1]

	if tag == "0000" {
		a.ctx.root = field(p, headerCNPJ)
		a.data.Header = entity.SpedHeader{
			CNPJ:        a.ctx.root,
			Name:        field(p, headerName),
			PeriodStart: field(p, headerPeriodStart),
			PeriodEnd:   field(p, headerPeriodEnd),
		}
		a.stats.Recognized++
		return a
	}

	if b, ok := blockHeaders[tag]; ok {
		id := field(p, blockHeaderCNPJ)
		if id == "" {
			id = a.ctx.root
		}
		a.ctx.active[b] = id
		a.stats.Recognized++
		return a
	}

	l, ok := layouts[tag]
	if !ok {
		a.stats.Ignored++
		return a
	}
	rec := decode(l, p, a.ctx.entityFor(l.block))
	switch l.category {
	case entity.CategoryGoods:
		a.data.Goods = append(a.data.Goods, rec)
	case entity.CategoryEnergyCredit:
		a.data.EnergyCredits = append(a.data.EnergyCredits, rec)
	case entity.CategoryEnergyDebit:
		a.data.EnergyDebits = append(a.data.EnergyDebits, rec)
	case entity.CategoryFreight:
		a.data.Freight = append(a.data.Freight, rec)
	}
	a.stats.Recognized++
	return a
}

func decode(l layout, p []string, cnpj string) entity.SpedRecord {
	rec := entity.SpedRecord{
		Category: l.category,
		CNPJ:     cnpj,
		DtDoc:    field(p, l.dtDoc),
		IndOper:  entity.IndOperNone,
		VlDoc:    number(p, l.vlDoc),
		VlBcIcms: number(p, l.vlBcIcms),
		VlIcms:   number(p, l.vlIcms),
		VlPis:    number(p, l.vlPis),
		VlCofins: number(p, l.vlCofins),
	}
	if l.indOper != absent {
		rec.IndOper = parseIndOper(field(p, l.indOper))
	}
	return rec
}

// Parse interpreta el texto completo de un archivo. Es una función pura:
// la misma entrada produce siempre la misma salida.
func Parse(text string) entity.SpedData {
	acc := newAccumulator()
	for _, line := range strings.Split(text, "\n") {
		acc = acc.feed(line)
	}
	return acc.data
}

// ParseReader lee el archivo línea a línea. r ya debe entregar texto UTF-8
// (ver NewDecodingReader). Solo falla por errores de lectura.
func ParseReader(r io.Reader) (entity.SpedData, Stats, error) {
	acc := newAccumulator()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		acc = acc.feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return entity.SpedData{}, Stats{}, fmt.Errorf("sped: leer archivo: %w", err)
	}
	return acc.data, acc.stats, nil
}

func field(p []string, i int) string {
	if i == absent || i >= len(p) {
		return ""
	}
	return p[i]
}

// number convierte un monto con coma decimal ("1234,56") a float64; vacío o inválido vale 0.
// Solo se aceptan dígitos, signo y separador: NaN, Inf, exponentes y hexadecimales valen 0.
func number(p []string, i int) float64 {
	s := strings.TrimSpace(field(p, i))
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func notDecimal(r rune) bool {
	return (r < '0' || r > '9') && r != '-' && r != '+' && r != ',' && r != '.'
}

// parseIndOper conserva cualquier entero tal cual; lo no numérico queda como IndOperNone.
func parseIndOper(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return entity.IndOperNone
	}
	return n
}
