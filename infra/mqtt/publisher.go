// Package mqtt publishes completed analysis reports to an MQTT broker so
// external dashboards can consume them.
package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/evsight/evsight/core/analysis"
)

// Publisher sends completed reports to an external consumer.
type Publisher interface {
	PublishReport(rep analysis.Report) error
	Close()
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	mu       sync.Mutex
	Reports  []analysis.Report
	FailNext bool
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishReport records the report or returns an error if configured to fail.
func (m *MockPublisher) PublishReport(rep analysis.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return fmt.Errorf("publish failed")
	}
	m.Reports = append(m.Reports, rep)
	return nil
}

// Close implements Publisher.
func (m *MockPublisher) Close() {}

// Published returns a copy of the reports published so far.
func (m *MockPublisher) Published() []analysis.Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]analysis.Report, len(m.Reports))
	copy(out, m.Reports)
	return out
}

func encodeReport(rep analysis.Report) ([]byte, error) {
	b, err := json.Marshal(rep)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}
