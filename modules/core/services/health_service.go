package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ringdesk/ringdesk/pkg/configuration"
)

const defaultProbeTimeout = 2500 * time.Millisecond

// HealthStatus reports per-dependency liveness plus the aggregate AND.
type HealthStatus struct {
	OK         bool `json:"ok"`
	Twilio     bool `json:"twilio"`
	OpenAI     bool `json:"openai"`
	ElevenLabs bool `json:"elevenLabs"`
}

// Probe issues one lightweight read-only call against an external
// dependency. A nil probe means the credential is absent and the dependency
// is reported down without a network call.
type Probe func(ctx context.Context) error

type HealthService struct {
	timeout    time.Duration
	twilio     Probe
	openai     Probe
	elevenLabs Probe
}

func NewHealthService(conf *configuration.Configuration) *HealthService {
	timeout := conf.HealthProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	s := &HealthService{timeout: timeout}

	httpClient := &http.Client{}
	if conf.Twilio.AccountSID != "" && conf.Twilio.AuthToken != "" {
		s.twilio = twilioProbe(httpClient, conf.Twilio.AccountSID, conf.Twilio.AuthToken)
	}
	if conf.OpenAI.APIKey != "" {
		client := openai.NewClient(conf.OpenAI.APIKey)
		s.openai = func(ctx context.Context) error {
			_, err := client.ListModels(ctx)
			return err
		}
	}
	if conf.ElevenLabs.APIKey != "" {
		s.elevenLabs = elevenLabsProbe(httpClient, conf.ElevenLabs.APIKey)
	}
	return s
}

// Check runs the three probes concurrently, each bounded by the configured
// timeout. Every failure mode (missing credential, error, timeout) is
// reported identically as down. Point-in-time, no retries.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	var status HealthStatus
	var wg sync.WaitGroup

	run := func(probe Probe, out *bool) {
		defer wg.Done()
		*out = s.runProbe(ctx, probe)
	}

	wg.Add(3)
	go run(s.twilio, &status.Twilio)
	go run(s.openai, &status.OpenAI)
	go run(s.elevenLabs, &status.ElevenLabs)
	wg.Wait()

	status.OK = status.Twilio && status.OpenAI && status.ElevenLabs
	return status
}

func (s *HealthService) runProbe(ctx context.Context, probe Probe) bool {
	if probe == nil {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- probe(probeCtx)
	}()

	select {
	case err := <-done:
		return err == nil
	case <-probeCtx.Done():
		return false
	}
}

func twilioProbe(client *http.Client, accountSID, authToken string) Probe {
	url := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s.json", accountSID)
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.SetBasicAuth(accountSID, authToken)
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("twilio responded with status %d", resp.StatusCode)
		}
		return nil
	}
}

func elevenLabsProbe(client *http.Client, apiKey string) Probe {
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.elevenlabs.io/v1/user", nil)
		if err != nil {
			return err
		}
		req.Header.Set("xi-api-key", apiKey)
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()
		if resp.StatusCode >= 400 {
			return fmt.Errorf("elevenlabs responded with status %d", resp.StatusCode)
		}
		return nil
	}
}
