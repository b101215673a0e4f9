package sped

import (
	"strings"
	"time"
)

// ParseDate interpreta DT_DOC en cualquiera de los dos formatos que circulan:
// DDMMAAAA (archivo) o AAAA-MM-DD (ya persistido).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	layout := "02012006"
	if strings.Contains(s, "-") {
		layout = "2006-01-02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PeriodLabel devuelve "MM/AAAA" para mostrar en los paneles, o "-" si la fecha es corta.
func PeriodLabel(dtDoc string) string {
	if len(dtDoc) < 8 {
		return "-"
	}
	if strings.Contains(dtDoc, "-") {
		parts := strings.Split(dtDoc, "-")
		return parts[1] + "/" + parts[0]
	}
	return dtDoc[2:4] + "/" + dtDoc[4:8]
}
