package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocaleDecimal interpreta números con coma decimal ("5,23") o punto ("5.23").
// Si aparecen ambos separadores, el punto se toma como separador de miles ("1.234,56").
func ParseLocaleDecimal(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("empty decimal value")
	}

	normalized := raw
	if strings.Contains(normalized, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.Replace(normalized, ",", ".", 1)
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal value %q: %w", raw, err)
	}

	f, _ := d.Float64()
	return f, nil
}
