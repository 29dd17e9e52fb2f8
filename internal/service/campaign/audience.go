package campaign

import (
	"github.com/ignite/campaign-chat/internal/domain"
)

// genericAudienceMin and genericAudienceMax bound the audience size used
// when the source that sharpens a segment is not connected.
const (
	genericAudienceMin = 500
	genericAudienceMax = 2000
)

// sizeRange is a half-open [Min, Max) interval of audience sizes.
type sizeRange struct {
	Min, Max int
}

// audienceTemplate fixes the segment and demographics for an intent. The
// size range narrows to Focused when FocusSource is connected.
type audienceTemplate struct {
	Segment      string
	Demographics domain.Demographics
	Size         sizeRange
	FocusSource  domain.SourceID
	Focused      sizeRange
}

func audienceTemplateFor(intent domain.Intent) audienceTemplate {
	switch intent {
	case domain.IntentCartAbandonment:
		return audienceTemplate{
			Segment:      "cart_abandoners_24h",
			Demographics: domain.Demographics{Age: "25-34", Gender: "female", Location: []string{"US"}},
			Size:         sizeRange{genericAudienceMin, genericAudienceMax},
			FocusSource:  domain.SourceShopify,
			Focused:      sizeRange{100, 300},
		}
	case domain.IntentRetargeting:
		return audienceTemplate{
			Segment:      "website_visitors_engaged",
			Demographics: domain.Demographics{Age: "25-44", Gender: "mixed", Location: []string{"US", "CA"}},
			Size:         sizeRange{genericAudienceMin, genericAudienceMax},
			FocusSource:  domain.SourceGoogleAds,
			Focused:      sizeRange{800, 1500},
		}
	case domain.IntentBrandAwareness:
		return audienceTemplate{
			Segment:      "lookalike_audience",
			Demographics: domain.Demographics{Age: "18-44", Gender: "mixed", Location: []string{"US", "CA", "UK"}},
			Size:         sizeRange{5000, 10000},
		}
	case domain.IntentProductPromotion:
		return productPromotionAudience()
	case domain.IntentLeadGeneration, domain.IntentSeasonal:
		// No dedicated template yet.
		return productPromotionAudience()
	default:
		return productPromotionAudience()
	}
}

func productPromotionAudience() audienceTemplate {
	return audienceTemplate{
		Segment:      "high_intent_shoppers",
		Demographics: domain.Demographics{Age: "25-44", Gender: "female", Location: []string{"US"}},
		Size:         sizeRange{1000, 2500},
	}
}

// sizeRangeFor picks the focused range when the template's source is
// connected.
func (t audienceTemplate) sizeRangeFor(sources domain.SourceSet) sizeRange {
	if t.FocusSource != "" && sources.Has(t.FocusSource) {
		return t.Focused
	}
	return t.Size
}

// GenerateAudience builds the audience for intent given the connected
// sources. Size is always positive.
func GenerateAudience(intent domain.Intent, sources domain.SourceSet, rng Rand) domain.Audience {
	tpl := audienceTemplateFor(intent)
	r := tpl.sizeRangeFor(sources)
	return domain.Audience{
		Segment: tpl.Segment,
		Size:    intBetween(rng, r.Min, r.Max),
		Demographics: domain.Demographics{
			Age:      tpl.Demographics.Age,
			Gender:   tpl.Demographics.Gender,
			Location: append([]string(nil), tpl.Demographics.Location...),
		},
	}
}
