//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLeadTransition(t *testing.T) {
	before := testutil.ToFloat64(leadStatusTransitions.WithLabelValues("contacted"))

	RecordLeadTransition("contacted")

	assert.Equal(t, before+1, testutil.ToFloat64(leadStatusTransitions.WithLabelValues("contacted")))
}

func TestRecordWelcomeEmailTriggers(t *testing.T) {
	manualBefore := testutil.ToFloat64(welcomeEmailsSent.WithLabelValues(TriggerManual))
	outboxBefore := testutil.ToFloat64(welcomeEmailsSent.WithLabelValues(TriggerOutbox))

	RecordWelcomeEmail(TriggerManual)
	RecordWelcomeEmail(TriggerOutbox)

	assert.Equal(t, manualBefore+1, testutil.ToFloat64(welcomeEmailsSent.WithLabelValues(TriggerManual)))
	assert.Equal(t, outboxBefore+1, testutil.ToFloat64(welcomeEmailsSent.WithLabelValues(TriggerOutbox)))
}

func TestRecordLeadCreated(t *testing.T) {
	before := testutil.ToFloat64(leadsCreated)

	RecordLeadCreated()

	assert.Equal(t, before+1, testutil.ToFloat64(leadsCreated))
}
