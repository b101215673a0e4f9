// Package cnpj normaliza y valida el CNPJ (identificador fiscal de la persona jurídica, Receita Federal).
package cnpj

import (
	"fmt"
	"unicode"
)

// Length cantidad de dígitos de un CNPJ normalizado.
const Length = 14

// Placeholder se usa cuando un registro almacenado no trae CNPJ.
const Placeholder = "00000000000000"

// pesos del módulo 11 para el primer y segundo dígito verificador.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Normalize elimina todo lo que no sea dígito: "11.222.333/0001-81" → "11222333000181".
func Normalize(s string) string {
	out := make([]byte, 0, Length)
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// Validate verifica longitud y ambos dígitos verificadores.
// Acepta el CNPJ con o sin máscara.
func Validate(s string) error {
	digits := Normalize(s)
	if len(digits) != Length {
		return fmt.Errorf("cnpj: se esperaban %d dígitos, se encontraron %d", Length, len(digits))
	}
	if allSame(digits) {
		return fmt.Errorf("cnpj: secuencia repetida %s", digits)
	}
	d1 := checkDigit(digits[:12], firstWeights[:])
	d2 := checkDigit(digits[:12]+string(d1), secondWeights[:])
	if digits[12] != d1 || digits[13] != d2 {
		return fmt.Errorf("cnpj: dígitos verificadores inválidos: esperado %c%c, recibido %s", d1, d2, digits[12:])
	}
	return nil
}

// Format aplica la máscara 00.000.000/0000-00. Si no tiene 14 dígitos devuelve la entrada sin cambios.
func Format(s string) string {
	d := Normalize(s)
	if len(d) != Length {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func checkDigit(base string, weights []int) byte {
	var sum int
	for i := 0; i < len(base); i++ {
		sum += int(base[i]-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
