package campaign

import (
	"strings"

	"github.com/ignite/campaign-chat/internal/domain"
)

// intentKeywords is scanned top to bottom; the first intent with a keyword
// contained in the message wins, so order here is the tie-break.
var intentKeywords = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentCartAbandonment, []string{"abandon", "cart", "recovery", "left"}},
	{domain.IntentRetargeting, []string{"retarget", "target", "audience", "engaged", "visited"}},
	{domain.IntentProductPromotion, []string{"promote", "launch", "new", "product", "sale"}},
	{domain.IntentBrandAwareness, []string{"awareness", "brand", "introduce", "visibility"}},
	{domain.IntentLeadGeneration, []string{"leads", "generate", "signup", "subscribe"}},
	{domain.IntentSeasonal, []string{"winter", "summer", "holiday", "seasonal", "christmas"}},
}

// Classify maps free text to an intent by case-insensitive substring match.
// Messages matching nothing are product promotions.
func Classify(message string) domain.Intent {
	lower := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}
	return domain.DefaultIntent
}
