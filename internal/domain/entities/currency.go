package entities

import "strings"

// Currency es un código ISO de moneda en mayúsculas
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	BTC Currency = "BTC"
	// BRL es la moneda local y base de todas las cotizaciones
	BRL Currency = "BRL"
)

// bacenSeries mapea cada moneda fiat a su serie en el SGS del Banco Central
var bacenSeries = map[Currency]int{
	USD: 1,
	EUR: 21619,
	GBP: 21623,
}

// NormalizeCurrency limpia y pasa a mayúsculas un código recibido del cliente
func NormalizeCurrency(code string) Currency {
	return Currency(strings.ToUpper(strings.TrimSpace(code)))
}

// String implementa fmt.Stringer
func (c Currency) String() string {
	return string(c)
}

// IsFiat indica si la moneda se obtiene del BACEN
func (c Currency) IsFiat() bool {
	_, ok := bacenSeries[c]
	return ok
}

// IsCrypto indica si la moneda se obtiene del proveedor cripto
func (c Currency) IsCrypto() bool {
	return c == BTC
}

// IsQuotable indica si la moneda tiene cotización propia (fiat o cripto)
func (c Currency) IsQuotable() bool {
	return c.IsFiat() || c.IsCrypto()
}

// IsConvertible indica si la moneda puede usarse en una conversión
func (c Currency) IsConvertible() bool {
	return c == BRL || c.IsQuotable()
}

// SeriesID retorna el identificador de la serie SGS de una moneda fiat
func (c Currency) SeriesID() (int, bool) {
	id, ok := bacenSeries[c]
	return id, ok
}

// QuotableCurrencies lista las monedas con cotización, en orden estable
func QuotableCurrencies() []Currency {
	return []Currency{USD, EUR, GBP, BTC}
}

// ConvertibleCurrencies lista las monedas aceptadas por la conversión
func ConvertibleCurrencies() []Currency {
	return []Currency{USD, EUR, GBP, BTC, BRL}
}
