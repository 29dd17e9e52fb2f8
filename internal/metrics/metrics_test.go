package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCampaign(t *testing.T) {
	before := testutil.ToFloat64(CampaignsGenerated.WithLabelValues("retargeting"))

	RecordCampaign("retargeting", 0.9)
	RecordCampaign("retargeting", 0.8)

	after := testutil.ToFloat64(CampaignsGenerated.WithLabelValues("retargeting"))
	assert.Equal(t, before+2, after)
}

func TestRecordHTTPRequest(t *testing.T) {
	RecordHTTPRequest("GET", "/api/data-sources", 200, 15*time.Millisecond)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
