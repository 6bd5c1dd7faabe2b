package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the request/run correlation id through context.
const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a context tagged with the given correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time logs the duration and outcome of a named operation. Use as:
//
//	defer obs.Time(ctx, "experiment.run")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s req_id=%s dur=%dms err=%v", name, reqID, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s req_id=%s dur=%dms", name, reqID, dur.Milliseconds())
	}
}
