// Package history persists completed analysis reports so past evaluations
// can be reviewed from the CLI or the API.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/evsight/evsight/core/analysis"
)

// Query defines filters for retrieving stored reports.
type Query struct {
	Start        time.Time
	End          time.Time
	HealthStatus string
}

// Store persists analysis reports and supports querying.
type Store interface {
	Append(ctx context.Context, rep analysis.Report) error
	Query(ctx context.Context, q Query) ([]analysis.Report, error)
	Close() error
}

// New creates a Store for the configured backend.
func New(backend, path string) (Store, error) {
	switch backend {
	case "jsonl":
		return NewJSONLStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown history backend %s", backend)
	}
}

func (q Query) matches(rep analysis.Report) bool {
	if !q.Start.IsZero() && rep.GeneratedAt.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && rep.GeneratedAt.After(q.End) {
		return false
	}
	if q.HealthStatus != "" && rep.Degradation.HealthStatus != q.HealthStatus {
		return false
	}
	return true
}
