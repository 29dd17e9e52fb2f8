package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/campaign-chat/internal/domain"
)

func TestEstimatePerformanceWithoutJitter(t *testing.T) {
	audience := domain.Audience{Size: 1234}
	// Float64 of 0.5 maps to a jitter factor of exactly 1.
	est := EstimatePerformance(audience, domain.ChannelPlan{Primary: domain.ChannelEmail}, fixedRand{f: 0.5})

	assert.Equal(t, 1234, est.Reach)
	assert.InDelta(t, 0.22, est.OpenRate, 1e-9)
	assert.InDelta(t, 0.03, est.ClickRate, 1e-9)
	assert.InDelta(t, 0.08, est.ConversionRate, 1e-9)
}

func TestEstimatePerformanceLowerJitter(t *testing.T) {
	est := EstimatePerformance(domain.Audience{Size: 10}, domain.ChannelPlan{Primary: domain.ChannelEmail}, fixedRand{f: 0})
	assert.InDelta(t, 0.176, est.OpenRate, 1e-9)
	assert.InDelta(t, 0.024, est.ClickRate, 1e-9)
	assert.InDelta(t, 0.064, est.ConversionRate, 1e-9)
}

func TestEstimatePerformanceClampsOpenRate(t *testing.T) {
	est := EstimatePerformance(domain.Audience{Size: 10}, domain.ChannelPlan{Primary: domain.ChannelSMS}, fixedRand{f: 0.999})
	assert.LessOrEqual(t, est.OpenRate, 1.0)
	assert.Equal(t, 1.0, est.OpenRate)
}

func TestEstimatePerformanceBounds(t *testing.T) {
	rng := NewRand(7)
	for _, ch := range []domain.Channel{domain.ChannelEmail, domain.ChannelSMS, domain.ChannelPush, domain.ChannelWhatsApp} {
		base := baseRatesFor(ch)
		for i := 0; i < 200; i++ {
			est := EstimatePerformance(domain.Audience{Size: 100}, domain.ChannelPlan{Primary: ch}, rng)
			assert.GreaterOrEqual(t, est.ClickRate, roundTo(base.Click*0.8, 3))
			assert.LessOrEqual(t, est.ClickRate, roundTo(base.Click*1.2, 3))
			assert.GreaterOrEqual(t, est.OpenRate, 0.0)
			assert.LessOrEqual(t, est.OpenRate, 1.0)
		}
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		intent  domain.Intent
		sources int
		want    float64
	}{
		{domain.IntentCartAbandonment, 1, 0.8},
		{domain.IntentRetargeting, 2, 0.9},
		{domain.IntentCartAbandonment, 3, 0.95},
		{domain.IntentProductPromotion, 1, 0.75},
		{domain.IntentBrandAwareness, 2, 0.85},
		{domain.IntentSeasonal, 3, 0.95},
		{domain.IntentLeadGeneration, 0, 0.65},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Confidence(tt.intent, tt.sources), "%s/%d", tt.intent, tt.sources)
	}
}

func TestConfidenceNeverExceedsCap(t *testing.T) {
	for _, intent := range domain.Intents() {
		for n := 0; n <= 10; n++ {
			assert.LessOrEqual(t, Confidence(intent, n), 0.95)
		}
	}
}
