package domain

import "time"

// SourceID identifies one of the mock data source connectors.
type SourceID string

const (
	SourceGoogleAds    SourceID = "google_ads"
	SourceShopify      SourceID = "shopify"
	SourceFacebookPage SourceID = "facebook_page"
)

// SourceIDs returns the fixed connector set in display order.
func SourceIDs() []SourceID {
	return []SourceID{SourceGoogleAds, SourceShopify, SourceFacebookPage}
}

// Valid reports whether id belongs to the fixed connector set.
func (id SourceID) Valid() bool {
	switch id {
	case SourceGoogleAds, SourceShopify, SourceFacebookPage:
		return true
	}
	return false
}

// DisplayName returns the human-readable connector name.
func (id SourceID) DisplayName() string {
	switch id {
	case SourceGoogleAds:
		return "Google Ads"
	case SourceShopify:
		return "Shopify"
	case SourceFacebookPage:
		return "Facebook Page"
	default:
		return string(id)
	}
}

// ConnectionStatus enumerates the connection states of a data source.
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
)

// DataSource is the reported state of one connector.
type DataSource struct {
	ID          SourceID         `json:"id"`
	Name        string           `json:"name"`
	Status      ConnectionStatus `json:"status"`
	LastUpdated *time.Time       `json:"lastUpdated"`
	DataPoints  *int             `json:"dataPoints"`
}

// IsConnected returns true if the source currently reports connected.
func (d *DataSource) IsConnected() bool {
	return d.Status == StatusConnected
}

// SourceSet is a deduplicated, order-preserving collection of source ids.
type SourceSet []SourceID

// NewSourceSet builds a set from ids, dropping duplicates and keeping the
// first occurrence of each.
func NewSourceSet(ids ...SourceID) SourceSet {
	seen := make(map[SourceID]struct{}, len(ids))
	out := make(SourceSet, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Has reports whether id is in the set.
func (s SourceSet) Has(id SourceID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}
