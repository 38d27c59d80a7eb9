package rendering

import (
	"errors"
	"strings"
)

// Format é o formato de imagem do gráfico renderizado
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// ParseFormat converte o parâmetro de query em Format. Vazio significa SVG.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}
