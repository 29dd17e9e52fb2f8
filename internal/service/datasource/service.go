package datasource

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/metrics"
	"github.com/ignite/campaign-chat/internal/pkg/latency"
	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// connectEstimateMillis is what the front end shows as the remaining
// connection time.
const connectEstimateMillis = 2000

// Result is the reply to a connect or disconnect.
type Result struct {
	Status        string `json:"status"`
	EstimatedTime *int   `json:"estimated_time,omitempty"`
	Message       string `json:"message"`
}

// Service implements connector operations on top of a Registry.
type Service struct {
	registry     *Registry
	delayer      latency.Delayer
	connectDelay time.Duration
}

// NewService creates a data source service. connectDelay is the simulated
// handshake time spent after the registry flips to connected.
func NewService(registry *Registry, delayer latency.Delayer, connectDelay time.Duration) *Service {
	return &Service{
		registry:     registry,
		delayer:      delayer,
		connectDelay: connectDelay,
	}
}

// List returns every connector.
func (s *Service) List() []domain.DataSource {
	return s.registry.List()
}

// Connect marks id connected, then waits out the simulated handshake.
// The handshake runs to completion even if the caller goes away.
// Credentials are accepted for API compatibility and only their key names
// are logged.
func (s *Service) Connect(ctx context.Context, id domain.SourceID, credentials map[string]interface{}) (*Result, error) {
	ds, err := s.registry.Connect(id)
	if err != nil {
		return nil, err
	}
	s.observe(id, ds.Status)

	if len(credentials) > 0 {
		logger.Info("data source credentials supplied", "source", id, "fields", credentialKeys(credentials))
	}

	if err := s.delayer.Wait(context.WithoutCancel(ctx), s.connectDelay); err != nil {
		return nil, fmt.Errorf("connect %s: %w", id, err)
	}

	estimate := connectEstimateMillis
	return &Result{
		Status:        "connecting",
		EstimatedTime: &estimate,
		Message:       fmt.Sprintf("Connecting to %s...", ds.Name),
	}, nil
}

// Disconnect resets id to disconnected.
func (s *Service) Disconnect(id domain.SourceID) (*Result, error) {
	ds, err := s.registry.Disconnect(id)
	if err != nil {
		return nil, err
	}
	s.observe(id, ds.Status)

	return &Result{
		Status:  string(domain.StatusDisconnected),
		Message: fmt.Sprintf("Disconnected from %s", ds.Name),
	}, nil
}

func (s *Service) observe(id domain.SourceID, status domain.ConnectionStatus) {
	metrics.ConnectorTransitions.WithLabelValues(string(id), string(status)).Inc()
	metrics.ConnectedSources.Set(float64(len(s.registry.Connected())))
	logger.Info("data source status changed", "source", id, "status", status)
}

func credentialKeys(credentials map[string]interface{}) []string {
	keys := make([]string, 0, len(credentials))
	for k := range credentials {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
