package logging

import (
	"context"
)

// Atajos sobre el LoggerSet global, para paquetes que no reciben un logger inyectado.

func Debug(ctx context.Context, message string, fields Fields) {
	base().Debug(ctx, message, fields)
}

func Info(ctx context.Context, message string, fields Fields) {
	base().Info(ctx, message, fields)
}

func Warn(ctx context.Context, message string, fields Fields) {
	base().Warn(ctx, message, fields)
}

func Error(ctx context.Context, message string, fields Fields) {
	base().Error(ctx, message, fields)
}

func WarnWithError(ctx context.Context, message string, err error, fields Fields) {
	base().WarnWithError(ctx, message, err, fields)
}

func ErrorWithError(ctx context.Context, message string, err error, fields Fields) {
	base().ErrorWithError(ctx, message, err, fields)
}

func HTTP() HTTPLogger               { return GetGlobalLoggers().HTTP }
func ExternalAPI() ExternalAPILogger { return GetGlobalLoggers().ExternalAPI }
func Cache() CacheLogger             { return GetGlobalLoggers().Cache }
func Rates() RatesLogger             { return GetGlobalLoggers().Rates }
func Security() SecurityLogger       { return GetGlobalLoggers().Security }

func base() Logger {
	return GetGlobalLoggers().Base
}
