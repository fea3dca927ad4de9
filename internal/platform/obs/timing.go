// Package obs holds small observability helpers shared by adapters and the
// HTTP layer.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request id assigned by the HTTP middleware so
// adapter timings can be correlated with access-log lines.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration of the named operation when the returned func runs.
// Pass a pointer to the named error result so failures are logged too:
//
//	defer obs.Time(ctx, "shipments.ListPending")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
