package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/ethereum/go-ethereum/log"

	"github.com/stepreport/stepreport/metrics"
)

const (
	HealthzHost = "0.0.0.0"
	HealthzPort = "8080"

	MetricsHost = "0.0.0.0"
	MetricsPort = "7300"
)

// Service bundles the sidecar HTTP servers: health checks, Prometheus
// metrics, and the rendered-report file server.
type Service struct {
	Healthz *HealthzServer
	Metrics *MetricsServer
	Reports *ReportServer
}

// New creates a service. reportDir is the directory the report sinks write
// to; pass an empty string to disable the report server.
func New(reportDir string) *Service {
	return &Service{
		Healthz: &HealthzServer{},
		Metrics: &MetricsServer{},
		Reports: &ReportServer{Dir: reportDir},
	}
}

func (s *Service) Start(ctx context.Context, reportAddr string) {
	log.Info("service starting")

	go func() {
		addr := net.JoinHostPort(HealthzHost, HealthzPort)
		log.Info("starting healthz server", "addr", addr)
		if err := s.Healthz.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting healthz server", "err", err)
			metrics.RecordErrorDetails("error starting healthz server", err)
		}
	}()

	go func() {
		addr := net.JoinHostPort(MetricsHost, MetricsPort)
		log.Info("starting metrics server", "addr", addr)
		if err := s.Metrics.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting metrics server", "err", err)
			metrics.RecordErrorDetails("error starting metrics server", err)
		}
	}()

	if s.Reports.Dir != "" && reportAddr != "" {
		go func() {
			log.Info("starting report server", "addr", reportAddr, "dir", s.Reports.Dir)
			if err := s.Reports.Start(ctx, reportAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("error starting report server", "err", err)
				metrics.RecordErrorDetails("error starting report server", err)
			}
		}()
	}

	log.Info("service started")
}

func (s *Service) Shutdown() {
	log.Info("service shutting down")

	_ = s.Healthz.Shutdown()
	log.Info("healthz stopped")

	_ = s.Metrics.Shutdown()
	log.Info("metrics stopped")

	_ = s.Reports.Shutdown()
	log.Info("reports stopped")

	log.Info("service stopped")
}
