package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ringdesk/ringdesk/pkg/configuration"
)

func TestHealthService_NoCredentialsAllDown(t *testing.T) {
	conf := &configuration.Configuration{HealthProbeTimeout: 100 * time.Millisecond}
	service := NewHealthService(conf)

	start := time.Now()
	status := service.Check(context.Background())
	elapsed := time.Since(start)

	assert.False(t, status.OK)
	assert.False(t, status.Twilio)
	assert.False(t, status.OpenAI)
	assert.False(t, status.ElevenLabs)
	// nil probes report down without waiting for the timeout window
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestHealthService_AllProbesHealthy(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	service := &HealthService{
		timeout:    time.Second,
		twilio:     ok,
		openai:     ok,
		elevenLabs: ok,
	}

	status := service.Check(context.Background())
	assert.True(t, status.OK)
	assert.True(t, status.Twilio)
	assert.True(t, status.OpenAI)
	assert.True(t, status.ElevenLabs)
}

func TestHealthService_OneFailureBreaksAggregate(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	service := &HealthService{
		timeout:    time.Second,
		twilio:     ok,
		openai:     func(ctx context.Context) error { return errors.New("401 unauthorized") },
		elevenLabs: ok,
	}

	status := service.Check(context.Background())
	assert.False(t, status.OK)
	assert.True(t, status.Twilio)
	assert.False(t, status.OpenAI)
	assert.True(t, status.ElevenLabs)
}

func TestHealthService_SlowProbeTimesOutAlone(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	slow := func(ctx context.Context) error {
		select {
		case <-time.After(5 * time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	service := &HealthService{
		timeout:    50 * time.Millisecond,
		twilio:     slow,
		openai:     ok,
		elevenLabs: ok,
	}

	status := service.Check(context.Background())
	assert.False(t, status.OK)
	assert.False(t, status.Twilio)
	assert.True(t, status.OpenAI)
	assert.True(t, status.ElevenLabs)
}
