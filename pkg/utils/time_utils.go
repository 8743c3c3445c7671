package utils

import (
	"fmt"
	"time"
)

const (
	// ISODateLayout es el formato de fecha expuesto por la API
	ISODateLayout = "2006-01-02"
	// BacenDateLayout es el formato dd/mm/yyyy que usa el SGS
	BacenDateLayout = "02/01/2006"
)

// Clock abstrae la hora actual para poder simular el paso del tiempo en tests
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock retorna el reloj real del proceso
func SystemClock() Clock {
	return systemClock{}
}

// IsFresh indica si un valor estampado en stamp sigue vigente: now - stamp < ttl
func IsFresh(now, stamp time.Time, ttl time.Duration) bool {
	if stamp.IsZero() {
		return false
	}
	return now.Sub(stamp) < ttl
}

// DaysAgo retorna el instante days días antes de t
func DaysAgo(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, -days)
}

// FormatBacenDate formatea una fecha como dd/mm/yyyy
func FormatBacenDate(t time.Time) string {
	return t.Format(BacenDateLayout)
}

// BacenDateToISO convierte "dd/mm/yyyy" a "YYYY-MM-DD"
func BacenDateToISO(s string) (string, error) {
	t, err := time.Parse(BacenDateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.Format(ISODateLayout), nil
}

// UnixMilliToISODate convierte milisegundos desde epoch a la fecha UTC "YYYY-MM-DD"
func UnixMilliToISODate(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(ISODateLayout)
}
