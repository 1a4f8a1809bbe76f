package logging

import (
	"context"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"
)

// ContextKey defines the context key type.
type ContextKey string

// ContextIDKey holds the key of the context ID.
const ContextIDKey ContextKey = "ctx_id"

// GetContextID returns the context ID stored in the given context, if any.
func GetContextID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextIDKey).(uuid.UUID)
	return id, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// HTTPCtxIDMiddleware adds the ContextIDKey to the request context and logs
// the handled request with the context ID as log field.
func HTTPCtxIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID, err := uuid.NewV4()
		if err != nil {
			log.WithError(err).Error("logging: new uuid error")
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), ContextIDKey, ctxID)))

		log.WithFields(log.Fields{
			"ctx_id":   ctxID,
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("logging: http request handled")
	})
}
