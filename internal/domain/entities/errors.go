package entities

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUpstream identifica cualquier falla de un proveedor externo
var ErrUpstream = errors.New("upstream provider failure")

// FetchError describe una falla al consultar un proveedor de cotizaciones
type FetchError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

// NewFetchError crea un FetchError sin código de estado del proveedor
func NewFetchError(provider, message string, err error) *FetchError {
	return &FetchError{Provider: provider, Message: message, Err: err}
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrUpstream)
func (e *FetchError) Is(target error) bool {
	return target == ErrUpstream
}

// HTTPStatus conserva el código del proveedor cuando respondió con error
func (e *FetchError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
