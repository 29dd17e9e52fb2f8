package campaign

import (
	"time"

	"github.com/google/uuid"

	"github.com/ignite/campaign-chat/internal/domain"
)

// Generator synthesizes campaigns. It holds no mutable state of its own and
// is safe for concurrent use as long as its Rand is.
type Generator struct {
	rng   Rand
	now   func() time.Time
	newID func() string
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng Rand) *Generator {
	return &Generator{
		rng:   rng,
		now:   time.Now,
		newID: newCampaignID,
	}
}

// SetClock overrides the time source used for timestamps and send timing.
func (g *Generator) SetClock(now func() time.Time) {
	g.now = now
}

// SetIDFunc overrides campaign id generation.
func (g *Generator) SetIDFunc(fn func() string) {
	g.newID = fn
}

// newCampaignID returns "camp_" followed by the first eight characters of a
// random UUID.
func newCampaignID() string {
	return "camp_" + uuid.NewString()[:8]
}

// Generate builds a campaign for message using the connected sources. It
// never fails; unknown intents get the product_promotion defaults.
func (g *Generator) Generate(message string, sources domain.SourceSet) *domain.Campaign {
	intent := Classify(message)
	now := g.now().UTC()

	audience := GenerateAudience(intent, sources, g.rng)
	channels := SelectChannels(intent)

	return &domain.Campaign{
		ID:          g.newID(),
		CreatedAt:   now,
		Objective:   intent,
		Audience:    audience,
		Channels:    channels,
		Message:     GenerateMessages(intent, channels),
		Timing:      CalculateTiming(intent, now),
		DataSources: append([]domain.SourceID{}, sources...),
		Performance: EstimatePerformance(audience, channels, g.rng),
		Confidence:  Confidence(intent, len(sources)),
	}
}
