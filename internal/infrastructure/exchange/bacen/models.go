package bacen

import (
	"encoding/json"
	"fmt"

	"fx-rate-service/internal/domain/entities"
	"fx-rate-service/pkg/utils"
)

// sentinelValue es el valor que el SGS publica cuando la serie no tiene dato
const sentinelValue = -1

// SeriesEntry es un punto de una serie SGS: {"data":"dd/mm/yyyy","valor":"5,23"}
type SeriesEntry struct {
	Date  string  `json:"data"`
	Value *string `json:"valor"`
}

// ParseValue convierte el valor con coma decimal a float64
func (e SeriesEntry) ParseValue() (float64, error) {
	if e.Value == nil {
		return 0, fmt.Errorf("%w (date %s)", ErrMissingValue, e.Date)
	}
	return utils.ParseLocaleDecimal(*e.Value)
}

// decodeSeries decodifica el cuerpo JSON de la respuesta
func decodeSeries(body []byte) ([]SeriesEntry, error) {
	var entries []SeriesEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptySeries
	}
	return entries, nil
}

// latestValue toma el último punto publicado
func latestValue(entries []SeriesEntry) (float64, error) {
	last := entries[len(entries)-1]
	value, err := last.ParseValue()
	if err != nil {
		return 0, err
	}
	if value == sentinelValue {
		return 0, ErrSentinelValue
	}
	return value, nil
}

// toHistory convierte los puntos a la serie indexada por fecha ISO
func toHistory(entries []SeriesEntry) (entities.HistorySeries, error) {
	series := make(entities.HistorySeries, len(entries))
	for _, entry := range entries {
		date, err := utils.BacenDateToISO(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		value, err := entry.ParseValue()
		if err != nil {
			return nil, err
		}
		series[date] = entities.HistoryPoint{BRL: value}
	}
	return series, nil
}
