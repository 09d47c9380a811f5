// Package app wires the configuration into a running service: HTTP API,
// metrics sinks, report history store and the optional MQTT publisher.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apianalysis "github.com/evsight/evsight/api/analysis"
	"github.com/evsight/evsight/config"
	coreanalysis "github.com/evsight/evsight/core/analysis"
	coremetrics "github.com/evsight/evsight/core/metrics"
	"github.com/evsight/evsight/infra/history"
	"github.com/evsight/evsight/infra/logger"
	"github.com/evsight/evsight/infra/metrics"
	"github.com/evsight/evsight/infra/mqtt"
	"github.com/evsight/evsight/internal/eventbus"
)

// Service hosts the HTTP API and fans completed reports out to the metrics,
// history and MQTT subscribers.
type Service struct {
	cfg       *config.Config
	log       logger.Logger
	bus       *eventbus.Bus
	store     history.Store
	sink      coremetrics.Sink
	publisher mqtt.Publisher
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.Sink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	store, err := history.New(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}

	var publisher mqtt.Publisher
	if cfg.MQTT.Enabled {
		publisher, err = mqtt.NewPahoPublisher(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt publisher: %w", err)
		}
	}

	return &Service{
		cfg:       cfg,
		log:       logg,
		bus:       eventbus.New(),
		store:     store,
		sink:      sink,
		publisher: publisher,
	}, nil
}

// Bus exposes the report event bus.
func (s *Service) Bus() *eventbus.Bus { return s.bus }

// Store exposes the report history store.
func (s *Service) Store() history.Store { return s.store }

// Record forwards one completed report to the observers: the history store,
// the metrics sink and, when configured, the MQTT publisher. Failures are
// logged, never fatal to a session.
func (s *Service) Record(ctx context.Context, source string, rep coreanalysis.Report) {
	if err := s.store.Append(ctx, rep); err != nil {
		s.log.Errorf("history append: %v", err)
	}
	if err := s.sink.RecordAnalysis(coremetrics.AnalysisEvent{
		ReportID:      rep.ID,
		CapacityKWh:   rep.CapacityKWh,
		SoH:           rep.Degradation.SoH,
		HealthStatus:  rep.Degradation.HealthStatus,
		RangeKm:       rep.Range.RangeKm,
		ChargingHours: rep.Charging.Hours,
		AnnualSavings: rep.Cost.AnnualSavings,
		Source:        source,
		Time:          rep.GeneratedAt,
	}); err != nil {
		s.log.Errorf("metrics record: %v", err)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishReport(rep); err != nil {
			s.log.Errorf("mqtt publish: %v", err)
		}
	}
}

// handleEvents consumes completed reports from the bus and records each one.
func (s *Service) handleEvents(ctx context.Context) {
	sub := s.bus.Subscribe()
	defer s.bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			s.Record(ctx, ev.Source, ev.Report)
		}
	}
}

// Run starts the service and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.handleEvents(ctx)

	if s.cfg.Metrics.PrometheusEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.Handle("/api/analysis", apianalysis.NewAnalyzeHandler(s.bus, s.log))
	mux.Handle("/api/analysis/history", apianalysis.NewHistoryHandler(s.store))
	mux.Handle("/healthz", apianalysis.NewHealthHandler())

	srv := &http.Server{Addr: s.cfg.API.Address, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()

	s.log.Infof("listening on %s", s.cfg.API.Address)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close releases the service resources.
func (s *Service) Close() error {
	s.bus.Close()
	if s.publisher != nil {
		s.publisher.Close()
	}
	return s.store.Close()
}
