// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder tracks the handful of turn-pipeline counters an operator
// would actually want to alert or graph on: how much work the engine
// is doing (turns) and how much of it is going wrong (parse/action
// errors), plus how active the time system is (fuses/daemons fired).
// A nil *Recorder is valid and every method on it is a no-op, so
// Engine can hold one unconditionally without a has-metrics branch at
// every call site.
type Recorder struct {
	turnsProcessed prometheus.Counter
	fusesFired     prometheus.Counter
	daemonsFired   prometheus.Counter
	parseErrors    prometheus.Counter
	actionErrors   prometheus.Counter
}

// NewRecorder builds a Recorder and, if reg is non-nil, registers its
// metrics against it. reg is nil in the common case of a host that
// doesn't run a /metrics endpoint; the Recorder still exists and its
// counters still increment, they just aren't exported anywhere.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		turnsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gnusto", Name: "turns_processed_total",
			Help: "Total sub-commands dispatched through the turn pipeline.",
		}),
		fusesFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gnusto", Name: "fuses_fired_total",
			Help: "Total fuses that reached zero turns and fired.",
		}),
		daemonsFired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gnusto", Name: "daemons_fired_total",
			Help: "Total daemon invocations due on their frequency.",
		}),
		parseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gnusto", Name: "parse_errors_total",
			Help: "Total input lines the parser could not turn into a command.",
		}),
		actionErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gnusto", Name: "action_errors_total",
			Help: "Total handler/hook invocations that returned a Go error.",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.turnsProcessed, r.fusesFired, r.daemonsFired, r.parseErrors, r.actionErrors)
	}
	return r
}

func (r *Recorder) IncTurnsProcessed() {
	if r == nil {
		return
	}
	r.turnsProcessed.Inc()
}

func (r *Recorder) AddFusesFired(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.fusesFired.Add(float64(n))
}

func (r *Recorder) AddDaemonsFired(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.daemonsFired.Add(float64(n))
}

func (r *Recorder) IncParseErrors() {
	if r == nil {
		return
	}
	r.parseErrors.Inc()
}

func (r *Recorder) IncActionErrors() {
	if r == nil {
		return
	}
	r.actionErrors.Inc()
}
