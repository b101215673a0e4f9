package sped

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Codificaciones del archivo de entrada. Los archivos del PVA suelen venir en ISO-8859-1.
const (
	EncodingAuto   = "auto"
	EncodingLatin1 = "latin1"
	EncodingUTF8   = "utf8"
)

// NewDecodingReader devuelve un reader que entrega UTF-8.
// En modo auto el contenido se lee completo: si ya es UTF-8 válido se usa tal cual,
// si no se decodifica como ISO-8859-1.
func NewDecodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case EncodingLatin1:
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	case EncodingUTF8:
		return r, nil
	case EncodingAuto, "":
		raw, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("sped: leer archivo: %w", err)
		}
		if utf8.Valid(raw) {
			return bytes.NewReader(raw), nil
		}
		return charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(raw)), nil
	default:
		return nil, fmt.Errorf("sped: codificación no soportada %q", encoding)
	}
}
