package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient forwards dashboard usage events to PostHog. A zero value is a no-op, so
// callers never need to check whether analytics is configured.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient connects to PostHog. An empty apiKey returns a disabled client.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("POSTHOG_API_KEY is empty, usage analytics disabled")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize PostHog client, usage analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Usage analytics enabled", slog.String("endpoint", endpoint))
	return &AnalyticsClient{client: client, logger: logger}
}

// Enabled reports whether events are actually sent.
func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.client != nil
}

// Enqueue queues an event for userID. It never blocks on the network.
func (a *AnalyticsClient) Enqueue(userID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: userID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.client.Close(); err != nil {
		a.logger.Warn("Failed to flush analytics events", slog.String("error", err.Error()))
	}
}
