package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/evsight/evsight/config"
	coreanalysis "github.com/evsight/evsight/core/analysis"
	coremetrics "github.com/evsight/evsight/core/metrics"
	"github.com/evsight/evsight/infra/history"
	"github.com/evsight/evsight/infra/logger"
	"github.com/evsight/evsight/infra/mqtt"
	"github.com/evsight/evsight/internal/eventbus"
)

type countingSink struct{ events []coremetrics.AnalysisEvent }

func (c *countingSink) RecordAnalysis(ev coremetrics.AnalysisEvent) error {
	c.events = append(c.events, ev)
	return nil
}

func TestService_HandleEvents(t *testing.T) {
	store, err := history.NewJSONLStore(filepath.Join(t.TempDir(), "reports.jsonl"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	sink := &countingSink{}
	pub := mqtt.NewMockPublisher()
	svc := &Service{
		cfg:       config.Default(),
		log:       logger.NopLogger{},
		bus:       eventbus.New(),
		store:     store,
		sink:      sink,
		publisher: pub,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.handleEvents(ctx)

	// Give the subscriber a moment to attach before publishing.
	time.Sleep(50 * time.Millisecond)

	rep, err := coreanalysis.Run(coreanalysis.Defaults())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	svc.bus.Publish(eventbus.ReportEvent{Source: "api", Report: rep})

	deadline := time.Now().Add(2 * time.Second)
	for {
		if len(pub.Published()) == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("report never reached the publisher")
		}
		time.Sleep(10 * time.Millisecond)
	}

	stored, err := store.Query(ctx, history.Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != rep.ID {
		t.Fatalf("report not stored: %+v", stored)
	}
	if len(sink.events) != 1 || sink.events[0].ReportID != rep.ID || sink.events[0].Source != "api" {
		t.Fatalf("metrics not recorded: %+v", sink.events)
	}
}

func TestService_RecordCLISource(t *testing.T) {
	store, err := history.NewJSONLStore(filepath.Join(t.TempDir(), "reports.jsonl"))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	sink := &countingSink{}
	pub := mqtt.NewMockPublisher()
	svc := &Service{
		cfg:       config.Default(),
		log:       logger.NopLogger{},
		bus:       eventbus.New(),
		store:     store,
		sink:      sink,
		publisher: pub,
	}

	rep, err := coreanalysis.Run(coreanalysis.Defaults())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	svc.Record(context.Background(), "cli", rep)

	stored, err := store.Query(context.Background(), history.Query{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != rep.ID {
		t.Fatalf("report not stored: %+v", stored)
	}
	if len(sink.events) != 1 || sink.events[0].Source != "cli" {
		t.Fatalf("metrics not recorded with cli source: %+v", sink.events)
	}
	if len(pub.Published()) != 1 {
		t.Fatalf("report never reached the publisher: %d", len(pub.Published()))
	}
}

func TestNew_FromDefaultConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History.Path = filepath.Join(t.TempDir(), "reports.jsonl")
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
