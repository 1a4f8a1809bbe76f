package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/josepacelli/pty-table/internal/pty"
)

// tableAPI exposes the table over HTTP. The table itself is not safe for
// concurrent use, all access goes through mu.
type tableAPI struct {
	mu    sync.Mutex
	table func() *pty.Table
}

func newTableAPI(table func() *pty.Table) *tableAPI {
	return &tableAPI{table: table}
}

type lookupResponse struct {
	pty.Entry
	PTYName string `json:"pty_name"`
}

func (a *tableAPI) list(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	a.mu.Lock()
	t := a.table()
	var entries []pty.Entry
	if t != nil {
		entries = t.Entries()
	}
	a.mu.Unlock()

	if entries == nil {
		entries = []pty.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *tableAPI) lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	freq := pty.ParseFrequency(r.URL.Query().Get("frequency"))
	if freq == 0 {
		http.Error(w, "invalid or missing frequency", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	var (
		e  pty.Entry
		st = pty.StatusNotFound
	)
	if t := a.table(); t != nil {
		e, st = t.Find(freq)
	}
	a.mu.Unlock()

	if st != pty.StatusOK {
		http.Error(w, pty.ErrDoesNotExist.Error(), http.StatusNotFound)
		return
	}

	resp := lookupResponse{Entry: e, PTYName: e.Tag}
	if resp.PTYName == "" {
		resp.PTYName = pty.PTYName(e.Code)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("monitoring: encode json response error")
	}
}
