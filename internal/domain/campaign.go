package domain

import (
	"time"
)

// Channel enumerates the delivery channels a campaign can use.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelPush     Channel = "push"
	ChannelWhatsApp Channel = "whatsapp"
)

// Campaign is a synthesized campaign recommendation. It is built once per
// chat request and never mutated or stored afterwards.
type Campaign struct {
	ID          string              `json:"campaign_id"`
	CreatedAt   time.Time           `json:"timestamp"`
	Objective   Intent              `json:"objective"`
	Audience    Audience            `json:"audience"`
	Channels    ChannelPlan         `json:"channels"`
	Message     MessageSet          `json:"message"`
	Timing      Timing              `json:"timing"`
	DataSources []SourceID          `json:"data_sources"`
	Performance PerformanceEstimate `json:"performance_estimate"`
	Confidence  float64             `json:"confidence_score"`
}

// Audience describes the targeted segment.
type Audience struct {
	Segment      string       `json:"segment"`
	Size         int          `json:"size"`
	Demographics Demographics `json:"demographics"`
}

// Demographics is the fixed profile attached to an audience template.
type Demographics struct {
	Age      string   `json:"age"`
	Gender   string   `json:"gender"`
	Location []string `json:"location"`
}

// ChannelPlan is the primary channel plus ordered fallbacks.
type ChannelPlan struct {
	Primary   Channel   `json:"primary"`
	Secondary []Channel `json:"secondary"`
	Reasoning string    `json:"reasoning"`
}

// All returns the primary channel followed by the secondary channels.
func (p ChannelPlan) All() []Channel {
	out := make([]Channel, 0, 1+len(p.Secondary))
	out = append(out, p.Primary)
	return append(out, p.Secondary...)
}

// ChannelMessage is the copy for one channel. Only email carries a subject
// and call to action.
type ChannelMessage struct {
	Subject string `json:"subject,omitempty"`
	Content string `json:"content"`
	CTA     string `json:"cta,omitempty"`
}

// MessageSet maps each selected channel to its copy.
type MessageSet map[Channel]ChannelMessage

// Timing is the recommended send moment.
type Timing struct {
	SendTime  time.Time `json:"send_time"`
	Timezone  string    `json:"timezone"`
	Reasoning string    `json:"reasoning"`
}

// PerformanceEstimate holds the projected reach and engagement rates.
type PerformanceEstimate struct {
	Reach          int     `json:"reach"`
	OpenRate       float64 `json:"open_rate"`
	ClickRate      float64 `json:"click_rate"`
	ConversionRate float64 `json:"conversion_rate"`
}

// CampaignCard is the summary wrapper the chat endpoint returns for each
// generated campaign.
type CampaignCard struct {
	ID          string    `json:"id"`
	Type        Intent    `json:"type"`
	Confidence  float64   `json:"confidence"`
	JSONPayload *Campaign `json:"jsonPayload"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Card wraps the campaign for the chat response.
func (c *Campaign) Card() CampaignCard {
	return CampaignCard{
		ID:          c.ID,
		Type:        c.Objective,
		Confidence:  c.Confidence,
		JSONPayload: c,
		CreatedAt:   c.CreatedAt,
	}
}
