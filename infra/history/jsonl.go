package history

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/evsight/evsight/core/analysis"
)

// JSONLStore stores reports in a JSONL file.
type JSONLStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONLStore creates the file if necessary and returns the store.
func NewJSONLStore(path string) (*JSONLStore, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	if cerr := f.Close(); cerr != nil {
		return nil, cerr
	}
	return &JSONLStore{path: path}, nil
}

// Append writes the report as one JSON line.
func (s *JSONLStore) Append(ctx context.Context, rep analysis.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return json.NewEncoder(f).Encode(rep)
}

// Query scans the file and returns reports matching q. Corrupt lines are
// skipped.
func (s *JSONLStore) Query(ctx context.Context, q Query) ([]analysis.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	var res []analysis.Report
	// ReadBytes has no line length limit, so an oversized hand-edited line
	// is skipped like any other corrupt one instead of failing the query.
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			var rep analysis.Report
			if uerr := json.Unmarshal(line, &rep); uerr == nil && q.matches(rep) {
				res = append(res, rep)
			}
		}
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Close is a no-op; the file is opened per operation.
func (s *JSONLStore) Close() error { return nil }
