package pty

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pty_lookup_count",
		Help: "The number of frequency lookups (per result: exact, tolerance or miss).",
	}, []string{"result"})

	tlc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pty_table_load_count",
		Help: "The number of table loads (per source: file, seed, empty or error).",
	}, []string{"source"})

	tsc = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pty_table_save_count",
		Help: "The number of table saves (per status).",
	}, []string{"status"})
)

func lookupCounter(r string) prometheus.Counter {
	return lc.With(prometheus.Labels{"result": r})
}

func tableLoadCounter(s string) prometheus.Counter {
	return tlc.With(prometheus.Labels{"source": s})
}

func tableSaveCounter(s Status) prometheus.Counter {
	return tsc.With(prometheus.Labels{"status": s.String()})
}
