package campaign

import "github.com/ignite/campaign-chat/internal/domain"

// Keywords returns a copy of the keyword list for intent, or nil.
func Keywords(intent domain.Intent) []string {
	for _, entry := range intentKeywords {
		if entry.intent == intent {
			return append([]string(nil), entry.keywords...)
		}
	}
	return nil
}
