package server

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	crmservices "github.com/ringdesk/ringdesk/modules/crm/services"
	"github.com/ringdesk/ringdesk/pkg/eventbus"
)

func TestDebugEventLogger_ObservesAnyEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	bus := eventbus.NewEventPublisher(logger)
	bus.Subscribe(debugEventLogger(logger))
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Publish(&crmservices.LeadCreatedEvent{})

	output := buf.String()
	assert.Contains(t, output, "event published")
	assert.Contains(t, output, "LeadCreatedEvent")
	assert.NotContains(t, output, "no matching subscribers",
		"the catch-all subscriber must absorb events with no typed handler")
}
