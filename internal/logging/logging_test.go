package logging

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPCtxIDMiddleware(t *testing.T) {
	assert := require.New(t)

	var ids []string
	h := HTTPCtxIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetContextID(r.Context())
		assert.True(ok)
		ids = append(ids, id.String())
		w.WriteHeader(http.StatusTeapot)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(http.StatusTeapot, rec.Code)
	}

	assert.Len(ids, 2)
	assert.NotEqual(ids[0], ids[1])
}
