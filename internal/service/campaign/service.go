package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/metrics"
	"github.com/ignite/campaign-chat/internal/pkg/latency"
	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// NoSourcesResponse is the reply when a chat arrives with no connected
// data source.
const NoSourcesResponse = "Please connect at least one data source to generate campaign recommendations."

// noSourcesProcessingMillis is the nominal processing time reported with
// NoSourcesResponse.
const noSourcesProcessingMillis = 100

// Recommendation is the chat reply: narrative text plus the generated
// campaign cards.
type Recommendation struct {
	Response       string                `json:"response"`
	Campaigns      []domain.CampaignCard `json:"campaigns"`
	ProcessingTime int64                 `json:"processing_time"`
}

// LatencyConfig shapes the simulated processing delay around generation.
type LatencyConfig struct {
	Before latency.Range
	After  latency.Range
}

// Service answers chat messages with campaign recommendations.
type Service struct {
	generator *Generator
	renderer  *Renderer
	delayer   latency.Delayer
	rng       Rand
	latency   LatencyConfig
	now       func() time.Time
}

// NewService wires the chat service. rng drives the delay draws; the
// generator keeps its own source.
func NewService(generator *Generator, renderer *Renderer, delayer latency.Delayer, rng Rand, cfg LatencyConfig) *Service {
	return &Service{
		generator: generator,
		renderer:  renderer,
		delayer:   delayer,
		rng:       rng,
		latency:   cfg,
		now:       time.Now,
	}
}

// Recommend classifies message, generates one campaign for the connected
// sources and renders the reply. With no sources it answers with
// NoSourcesResponse and skips generation. A request whose caller goes away
// still runs to completion; only a failing Delayer returns an error.
func (s *Service) Recommend(ctx context.Context, message string, sources domain.SourceSet) (*Recommendation, error) {
	if len(sources) == 0 {
		metrics.ChatRequestsWithoutSources.Inc()
		return &Recommendation{
			Response:       NoSourcesResponse,
			Campaigns:      []domain.CampaignCard{},
			ProcessingTime: noSourcesProcessingMillis,
		}, nil
	}

	start := s.now()
	ctx = context.WithoutCancel(ctx)

	if err := s.delayer.Wait(ctx, s.latency.Before.Pick(s.rng.Float64())); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	c := s.generator.Generate(message, sources)
	text := s.renderer.Render(c)

	if err := s.delayer.Wait(ctx, s.latency.After.Pick(s.rng.Float64())); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	elapsed := s.now().Sub(start)
	metrics.RecordCampaign(string(c.Objective), c.Confidence)
	metrics.ProcessingDuration.Observe(elapsed.Seconds())
	logger.Info("campaign generated",
		"campaign_id", c.ID,
		"intent", c.Objective,
		"sources", len(sources),
		"audience_size", c.Audience.Size,
		"confidence", c.Confidence,
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return &Recommendation{
		Response:       text,
		Campaigns:      []domain.CampaignCard{c.Card()},
		ProcessingTime: elapsed.Milliseconds(),
	}, nil
}
