package history

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evsight/evsight/core/analysis"
	"github.com/evsight/evsight/core/battery"
)

func sampleReport(id string, ts time.Time, status string) analysis.Report {
	return analysis.Report{
		ID:                   id,
		GeneratedAt:          ts,
		CapacityKWh:          60,
		AvailableCapacityKWh: 56.22,
		Degradation:          battery.DegradationReport{SoH: 93.7, DegradationPercent: 6.3, RemainingCycles: 1600, HealthStatus: status},
		Range:                battery.RangeEstimate{RangeKm: 300, ConsumptionPer100Km: 15, AvailableEnergyKWh: 45},
		Recommendations:      []string{"Ideal daily range: 20% - 80% charge"},
	}
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.Append(ctx, sampleReport("r1", now.Add(-2*time.Hour), "Good")); err != nil {
		t.Fatalf("append r1: %v", err)
	}
	if err := s.Append(ctx, sampleReport("r2", now, "Fair")); err != nil {
		t.Fatalf("append r2: %v", err)
	}

	all, err := s.Query(ctx, Query{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(all))
	}
	if all[0].Range.RangeKm != 300 || all[0].Degradation.SoH != 93.7 {
		t.Fatalf("report did not round-trip: %+v", all[0])
	}

	recent, err := s.Query(ctx, Query{Start: now.Add(-time.Hour)})
	if err != nil {
		t.Fatalf("query recent: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != "r2" {
		t.Fatalf("start filter: got %+v", recent)
	}

	good, err := s.Query(ctx, Query{HealthStatus: "Good"})
	if err != nil {
		t.Fatalf("query status: %v", err)
	}
	if len(good) != 1 || good[0].ID != "r1" {
		t.Fatalf("status filter: got %+v", good)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestJSONLStore(t *testing.T) {
	s, err := NewJSONLStore(filepath.Join(t.TempDir(), "reports.jsonl"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	testStore(t, s)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "reports.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	testStore(t, s)
}

func TestJSONLStore_SkipsOversizedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.jsonl")
	s, err := NewJSONLStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	if err := s.Append(ctx, sampleReport("r1", now, "Good")); err != nil {
		t.Fatalf("append r1: %v", err)
	}
	// A hand-edited line far beyond any default read buffer.
	junk := append(bytes.Repeat([]byte("x"), 128*1024), '\n')
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Write(junk); err != nil {
		t.Fatalf("write junk: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Append(ctx, sampleReport("r2", now, "Good")); err != nil {
		t.Fatalf("append r2: %v", err)
	}

	all, err := s.Query(ctx, Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 2 || all[0].ID != "r1" || all[1].ID != "r2" {
		t.Fatalf("expected both valid reports, got %+v", all)
	}
}

func TestNew_UnknownBackend(t *testing.T) {
	if _, err := New("csv", "x"); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}
