package cache

import "errors"

var (
	// ErrKeyNotFound se retorna cuando la clave no existe en el backend
	ErrKeyNotFound = errors.New("cache: key not found")
	// ErrKeyExpired se retorna cuando la clave existía pero su TTL de backend venció
	ErrKeyExpired = errors.New("cache: key expired")
)

// IsMiss indica si el error corresponde a una ausencia normal de la clave
func IsMiss(err error) bool {
	return errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrKeyExpired)
}
