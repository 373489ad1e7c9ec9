package maps

import (
	"context"
	"net/http"
	"time"

	"hantrip/models"

	"go.uber.org/zap"
)

// GoogleAdapter drives the Google Maps SDK.
type GoogleAdapter struct {
	httpClient *http.Client
	probeURL   string
	policy     RetryPolicy
	logger     *zap.Logger
}

// NewGoogleAdapter creates the Google adapter with the default readiness policy.
func NewGoogleAdapter(probeURL string, logger *zap.Logger) Adapter {
	return &GoogleAdapter{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		probeURL:   probeURL,
		policy:     DefaultReadinessPolicy,
		logger:     logger,
	}
}

// Provider returns the SDK name.
func (a *GoogleAdapter) Provider() string { return "google" }

// Ready polls the SDK script endpoint until it answers or the retry budget
// is spent.
func (a *GoogleAdapter) Ready(ctx context.Context) error {
	err := a.policy.Do(ctx, func(ctx context.Context) error {
		return probeEndpoint(ctx, a.httpClient, a.probeURL)
	})
	if err != nil {
		a.logger.Error("Google Maps SDK never became ready", zap.Error(err))
	}
	return err
}

// BuildView assembles the map view for the Google SDK.
func (a *GoogleAdapter) BuildView(in ViewInput) *View {
	return BuildView(a.Provider(), in, a.logger)
}

// ResolveMarkerClick maps a marker id or DOM title onto a POI selection.
func (a *GoogleAdapter) ResolveMarkerClick(idOrTitle string, pois []models.POI, lang string) *models.Selection {
	return resolveMarkerClick(idOrTitle, pois, lang)
}
