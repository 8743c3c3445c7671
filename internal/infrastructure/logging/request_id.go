package logging

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type ctxKey struct{}

const requestIDPrefix = "req_"

// GenerateRequestID retorna "req_" seguido de un UUID v4 sin guiones
func GenerateRequestID() string {
	return requestIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// WithRequestID guarda el request ID para que toda entrada lo incluya
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// GetRequestID retorna el request ID del contexto o ""
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
