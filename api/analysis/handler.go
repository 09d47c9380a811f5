// Package analysis exposes battery evaluations over HTTP. It is the
// form-style collaborator: clients submit scalar parameters and receive the
// computed report as JSON.
package analysis

import (
	"encoding/json"
	"net/http"
	"time"

	coreanalysis "github.com/evsight/evsight/core/analysis"
	"github.com/evsight/evsight/core/logger"
	"github.com/evsight/evsight/infra/history"
	"github.com/evsight/evsight/internal/eventbus"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewAnalyzeHandler returns an HTTP handler running one evaluation session
// per POST /api/analysis request. Missing request fields take the session
// defaults; charge percentages are clamped to [0,100].
func NewAnalyzeHandler(bus eventbus.EventBus, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		req := coreanalysis.Defaults()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.ChargePercent = clamp(req.ChargePercent, 0, 100)
		req.TargetChargePercent = clamp(req.TargetChargePercent, 0, 100)
		req.FastChargePercent = clamp(req.FastChargePercent, 0, 100)

		rep, err := coreanalysis.Run(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if bus != nil {
			bus.Publish(eventbus.ReportEvent{Source: "api", Report: rep})
		}
		log.Debugw("analysis complete", map[string]any{"report_id": rep.ID, "soh": rep.Degradation.SoH})

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rep); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewHistoryHandler exposes stored reports via GET /api/analysis/history.
// Optional query parameters: start, end (RFC3339) and status.
func NewHistoryHandler(store history.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var q history.Query
		if s := r.URL.Query().Get("start"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "invalid start: "+err.Error(), http.StatusBadRequest)
				return
			}
			q.Start = t
		}
		if s := r.URL.Query().Get("end"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "invalid end: "+err.Error(), http.StatusBadRequest)
				return
			}
			q.End = t
		}
		q.HealthStatus = r.URL.Query().Get("status")

		reps, err := store.Query(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if reps == nil {
			reps = []coreanalysis.Report{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reps); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewHealthHandler reports liveness.
func NewHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
