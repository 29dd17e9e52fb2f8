package campaign

import (
	"github.com/ignite/campaign-chat/internal/domain"
)

// messageTemplatesFor returns the per-channel copy available for intent.
// Channels absent from the returned map have no copy for that intent.
func messageTemplatesFor(intent domain.Intent) map[domain.Channel]domain.ChannelMessage {
	switch intent {
	case domain.IntentCartAbandonment:
		return map[domain.Channel]domain.ChannelMessage{
			domain.ChannelEmail: {
				Subject: "Still thinking about your items?",
				Content: "Complete your purchase and get 10% off your order!",
				CTA:     "Complete Purchase",
			},
			domain.ChannelSMS: {
				Content: "Your cart expires in 2 hours! Complete your purchase now: [link]",
			},
		}
	case domain.IntentRetargeting:
		return map[domain.Channel]domain.ChannelMessage{
			domain.ChannelEmail: {
				Subject: "You showed interest in our products",
				Content: "Discover more items you'll love from our winter collection",
				CTA:     "Shop Now",
			},
			domain.ChannelPush: {
				Content: "New arrivals based on your interests are here!",
			},
		}
	case domain.IntentBrandAwareness:
		return map[domain.Channel]domain.ChannelMessage{
			domain.ChannelEmail: {
				Subject: "Welcome to [Brand Name]",
				Content: "Discover quality fashion that fits your lifestyle",
				CTA:     "Explore",
			},
			domain.ChannelPush: {
				Content: "Discover [Brand Name] - Quality fashion for modern life",
			},
		}
	case domain.IntentProductPromotion, domain.IntentLeadGeneration, domain.IntentSeasonal:
		return productPromotionMessages()
	default:
		return productPromotionMessages()
	}
}

func productPromotionMessages() map[domain.Channel]domain.ChannelMessage {
	return map[domain.Channel]domain.ChannelMessage{
		domain.ChannelEmail: {
			Subject: "Introducing our Winter Collection",
			Content: "Discover the latest winter fashion trends and stay warm in style",
			CTA:     "Shop Collection",
		},
		domain.ChannelPush: {
			Content: "🆕 New Winter Collection is live! Shop now",
		},
	}
}

// GenerateMessages emits copy for every channel in plan that has a template
// for intent. Selected channels without copy are skipped.
func GenerateMessages(intent domain.Intent, plan domain.ChannelPlan) domain.MessageSet {
	templates := messageTemplatesFor(intent)
	out := make(domain.MessageSet, len(templates))
	for _, ch := range plan.All() {
		if msg, ok := templates[ch]; ok {
			out[ch] = msg
		}
	}
	return out
}
