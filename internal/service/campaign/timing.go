package campaign

import (
	"time"

	"github.com/ignite/campaign-chat/internal/domain"
)

// Send window: sends land between 19:00 and 20:59 UTC.
const (
	sendWindowStartHour = 19
	sendWindowEndHour   = 20
	timingTimezone      = "user_local"
)

type timingRule struct {
	Delay     time.Duration
	Reasoning string
}

func timingRuleFor(intent domain.Intent) timingRule {
	switch intent {
	case domain.IntentCartAbandonment:
		return timingRule{2 * time.Hour, "Strike while interest is still high"}
	case domain.IntentRetargeting:
		return timingRule{24 * time.Hour, "Allow time for consideration"}
	case domain.IntentBrandAwareness:
		return timingRule{12 * time.Hour, "Optimal engagement window"}
	case domain.IntentProductPromotion, domain.IntentLeadGeneration, domain.IntentSeasonal:
		return productPromotionTiming()
	default:
		return productPromotionTiming()
	}
}

func productPromotionTiming() timingRule {
	return timingRule{0, "Immediate launch for maximum impact"}
}

// snapToSendWindow moves t into the evening window. Times before 19:00 move
// to 19:00 the same day, times after 20:59 move to 19:00 the next day, and
// times inside the window are kept.
func snapToSendWindow(t time.Time) time.Time {
	t = t.UTC()
	switch h := t.Hour(); {
	case h < sendWindowStartHour:
		return time.Date(t.Year(), t.Month(), t.Day(), sendWindowStartHour, 0, 0, 0, time.UTC)
	case h > sendWindowEndHour:
		return time.Date(t.Year(), t.Month(), t.Day()+1, sendWindowStartHour, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// CalculateTiming applies the intent's delay to now and snaps the result
// into the send window.
func CalculateTiming(intent domain.Intent, now time.Time) domain.Timing {
	rule := timingRuleFor(intent)
	return domain.Timing{
		SendTime:  snapToSendWindow(now.Add(rule.Delay)),
		Timezone:  timingTimezone,
		Reasoning: rule.Reasoning,
	}
}
