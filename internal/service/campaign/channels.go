package campaign

import (
	"github.com/ignite/campaign-chat/internal/domain"
)

// SelectChannels returns the channel plan for intent. The plan does not
// depend on which sources are connected.
func SelectChannels(intent domain.Intent) domain.ChannelPlan {
	switch intent {
	case domain.IntentCartAbandonment:
		return domain.ChannelPlan{
			Primary:   domain.ChannelEmail,
			Secondary: []domain.Channel{domain.ChannelSMS},
			Reasoning: "High open rates for abandoned cart recovery",
		}
	case domain.IntentRetargeting:
		return domain.ChannelPlan{
			Primary:   domain.ChannelPush,
			Secondary: []domain.Channel{domain.ChannelEmail, domain.ChannelSMS},
			Reasoning: "Immediate engagement for warm audiences",
		}
	case domain.IntentBrandAwareness:
		return domain.ChannelPlan{
			Primary:   domain.ChannelPush,
			Secondary: []domain.Channel{domain.ChannelEmail, domain.ChannelWhatsApp},
			Reasoning: "Wide reach and visual impact",
		}
	case domain.IntentProductPromotion, domain.IntentLeadGeneration, domain.IntentSeasonal:
		return productPromotionChannels()
	default:
		return productPromotionChannels()
	}
}

func productPromotionChannels() domain.ChannelPlan {
	return domain.ChannelPlan{
		Primary:   domain.ChannelEmail,
		Secondary: []domain.Channel{domain.ChannelPush, domain.ChannelSMS},
		Reasoning: "Rich content display for product showcasing",
	}
}
