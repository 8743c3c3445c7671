package services

import (
	"context"

	"fx-rate-service/internal/infrastructure/metrics"

	"golang.org/x/sync/singleflight"
)

// coalesce ejecuta fn una sola vez por key entre llamadas concurrentes.
// El fetch compartido no se cancela si un llamador abandona; cada llamador
// sigue respetando su propio contexto.
func coalesce[T any](ctx context.Context, group *singleflight.Group, kind, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	ch := group.DoChan(key, func() (interface{}, error) {
		return fn(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.RecordCoalescedFetch(kind)
		}
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
