package monitoring

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/josepacelli/pty-table/internal/storage"
)

func healthCheckHandlerFunc(w http.ResponseWriter, r *http.Request) {
	if err := storage.Ping(); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(errors.Wrap(err, "storage ping error").Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
}
