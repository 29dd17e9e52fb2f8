package campaign

import (
	"fmt"
	"math"

	"github.com/osteele/liquid"

	"github.com/ignite/campaign-chat/internal/domain"
	"github.com/ignite/campaign-chat/internal/pkg/logger"
)

// responseTrailer closes every generated reply.
const responseTrailer = "\n\nThe campaign includes optimized messaging, timing, and channel selection " +
	"based on your connected data sources. You can review and modify the JSON payload below before executing."

// Liquid sources for the per-intent summary sentence. Bindings: size,
// channel, percent, intent.
const (
	cartAbandonmentResponse = "I found {{ size }} customers who abandoned their carts in the last 24 hours. " +
		"I've created an {{ channel }} recovery campaign with {{ percent }}% confidence that will help recover lost sales."
	retargetingResponse = "Based on your data, I identified {{ size }} engaged users perfect for retargeting. " +
		"The {{ channel }}-based campaign I've generated has a {{ percent }}% confidence score."
	productPromotionResponse = "I've created a product promotion campaign targeting {{ size }} high-intent shoppers. " +
		"Using {{ channel }} as the primary channel with {{ percent }}% confidence this will drive strong results."
	brandAwarenessResponse = "Your brand awareness campaign will reach {{ size }} potential customers through {{ channel }} messaging. " +
		"With {{ percent }}% confidence, this approach will maximize visibility."
	genericResponse = "I've generated a {{ intent }} campaign targeting {{ size }} users via {{ channel }} " +
		"with {{ percent }}% confidence."
)

// Renderer turns a campaign into the assistant's reply text. Templates are
// compiled once; Render is safe for concurrent use and has no randomness.
type Renderer struct {
	byIntent map[domain.Intent]*liquid.Template
	generic  *liquid.Template
}

// NewRenderer compiles the response templates. It panics if a built-in
// template fails to parse.
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()
	must := func(src string) *liquid.Template {
		tpl, err := engine.ParseString(src)
		if err != nil {
			panic(fmt.Sprintf("campaign: parse response template: %v", err))
		}
		return tpl
	}
	return &Renderer{
		byIntent: map[domain.Intent]*liquid.Template{
			domain.IntentCartAbandonment:  must(cartAbandonmentResponse),
			domain.IntentRetargeting:      must(retargetingResponse),
			domain.IntentProductPromotion: must(productPromotionResponse),
			domain.IntentBrandAwareness:   must(brandAwarenessResponse),
		},
		generic: must(genericResponse),
	}
}

// Render produces the summary sentence for c followed by the fixed trailer.
// Intents without their own sentence use the generic one.
func (r *Renderer) Render(c *domain.Campaign) string {
	bindings := liquid.Bindings{
		"size":    c.Audience.Size,
		"channel": string(c.Channels.Primary),
		"percent": confidencePercent(c.Confidence),
		"intent":  string(c.Objective),
	}

	tpl, ok := r.byIntent[c.Objective]
	if !ok {
		tpl = r.generic
	}
	out, err := tpl.RenderString(bindings)
	if err != nil {
		logger.Warn("response template render failed", "intent", c.Objective, "error", err)
		out = fmt.Sprintf("I've generated a %s campaign targeting %d users via %s with %d%% confidence.",
			c.Objective, c.Audience.Size, c.Channels.Primary, confidencePercent(c.Confidence))
	}
	return out + responseTrailer
}

// confidencePercent converts a 0-1 score to a whole percentage. Scores are
// already rounded to two decimals, so rounding here only absorbs float error.
func confidencePercent(score float64) int {
	return int(math.Round(score * 100))
}
