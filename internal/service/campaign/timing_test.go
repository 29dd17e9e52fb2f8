package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ignite/campaign-chat/internal/domain"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
}

func TestCalculateTiming(t *testing.T) {
	tests := []struct {
		name   string
		intent domain.Intent
		now    time.Time
		want   time.Time
	}{
		{"immediate before window", domain.IntentProductPromotion, at(10, 10, 0), at(10, 19, 0)},
		{"immediate inside window", domain.IntentProductPromotion, at(10, 19, 30), at(10, 19, 30)},
		{"immediate end of window", domain.IntentProductPromotion, at(10, 20, 59), at(10, 20, 59)},
		{"immediate after window", domain.IntentProductPromotion, at(10, 21, 0), at(11, 19, 0)},
		{"cart lands in window", domain.IntentCartAbandonment, at(10, 18, 30), at(10, 20, 30)},
		{"cart before window", domain.IntentCartAbandonment, at(10, 9, 0), at(10, 19, 0)},
		{"retargeting next day", domain.IntentRetargeting, at(10, 10, 0), at(11, 19, 0)},
		{"brand rolls past window", domain.IntentBrandAwareness, at(10, 10, 0), at(11, 19, 0)},
		{"month boundary", domain.IntentProductPromotion, at(31, 22, 15), time.Date(2024, time.February, 1, 19, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timing := CalculateTiming(tt.intent, tt.now)
			assert.True(t, tt.want.Equal(timing.SendTime), "got %s want %s", timing.SendTime, tt.want)
			assert.Equal(t, "user_local", timing.Timezone)
			assert.NotEmpty(t, timing.Reasoning)
		})
	}
}

func TestCalculateTimingAlwaysInWindow(t *testing.T) {
	for _, intent := range domain.Intents() {
		for hour := 0; hour < 24; hour++ {
			now := at(15, hour, 45)
			send := CalculateTiming(intent, now).SendTime
			assert.GreaterOrEqual(t, send.Hour(), 19)
			assert.LessOrEqual(t, send.Hour(), 20)
			assert.False(t, send.Before(now), "%s at %02d:45", intent, hour)
		}
	}
}

func TestCalculateTimingNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, loc)
	send := CalculateTiming(domain.IntentProductPromotion, now).SendTime
	assert.Equal(t, time.UTC, send.Location())
	assert.True(t, time.Date(2024, time.March, 5, 19, 0, 0, 0, time.UTC).Equal(send))
}
