package campaign

import (
	"math"

	"github.com/ignite/campaign-chat/internal/domain"
)

// rateJitter is the maximum relative perturbation applied to base rates.
const rateJitter = 0.2

type channelRates struct {
	Open, Click, Conversion float64
}

func baseRatesFor(ch domain.Channel) channelRates {
	switch ch {
	case domain.ChannelSMS:
		return channelRates{Open: 0.98, Click: 0.12, Conversion: 0.15}
	case domain.ChannelPush:
		return channelRates{Open: 0.45, Click: 0.08, Conversion: 0.06}
	case domain.ChannelWhatsApp:
		return channelRates{Open: 0.85, Click: 0.15, Conversion: 0.12}
	case domain.ChannelEmail:
		return emailRates()
	default:
		return emailRates()
	}
}

func emailRates() channelRates {
	return channelRates{Open: 0.22, Click: 0.03, Conversion: 0.08}
}

// EstimatePerformance projects engagement for the plan's primary channel.
// Reach is the audience size; each rate gets independent jitter in
// [0.8, 1.2) and is rounded to three decimals.
func EstimatePerformance(audience domain.Audience, plan domain.ChannelPlan, rng Rand) domain.PerformanceEstimate {
	rates := baseRatesFor(plan.Primary)
	jitter := func(base float64) float64 {
		return roundTo(base*floatBetween(rng, 1-rateJitter, 1+rateJitter), 3)
	}
	return domain.PerformanceEstimate{
		Reach:          audience.Size,
		OpenRate:       math.Min(1, jitter(rates.Open)),
		ClickRate:      jitter(rates.Click),
		ConversionRate: jitter(rates.Conversion),
	}
}

// Confidence scoring constants.
const (
	baseConfidence     = 0.6
	perSourceBonus     = 0.1
	maxConfidence      = 0.95
	strongIntentBonus  = 0.1
	defaultIntentBonus = 0.05
)

func intentBonus(intent domain.Intent) float64 {
	switch intent {
	case domain.IntentCartAbandonment, domain.IntentRetargeting:
		return strongIntentBonus
	default:
		return defaultIntentBonus
	}
}

// Confidence scores a campaign from the number of connected sources and the
// intent: min(0.95, 0.6 + 0.1*sources + bonus), rounded to two decimals.
func Confidence(intent domain.Intent, sourceCount int) float64 {
	score := baseConfidence + perSourceBonus*float64(sourceCount) + intentBonus(intent)
	return roundTo(math.Min(maxConfidence, score), 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
