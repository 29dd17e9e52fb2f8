package domain

// Intent is the classified purpose of a campaign request.
type Intent string

const (
	IntentCartAbandonment  Intent = "cart_abandonment"
	IntentRetargeting      Intent = "retargeting"
	IntentProductPromotion Intent = "product_promotion"
	IntentBrandAwareness   Intent = "brand_awareness"
	IntentLeadGeneration   Intent = "lead_generation"
	IntentSeasonal         Intent = "seasonal"
)

// DefaultIntent is used when nothing in a message matches and whenever a
// downstream table has no entry for an intent.
const DefaultIntent = IntentProductPromotion

// Intents returns every intent in declaration order.
func Intents() []Intent {
	return []Intent{
		IntentCartAbandonment,
		IntentRetargeting,
		IntentProductPromotion,
		IntentBrandAwareness,
		IntentLeadGeneration,
		IntentSeasonal,
	}
}

// Valid reports whether i is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentCartAbandonment, IntentRetargeting, IntentProductPromotion,
		IntentBrandAwareness, IntentLeadGeneration, IntentSeasonal:
		return true
	}
	return false
}
