package maps

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hantrip/models"

	"go.uber.org/zap"
)

// NaverAdapter drives the Naver Maps SDK.
type NaverAdapter struct {
	httpClient *http.Client
	probeURL   string
	policy     RetryPolicy
	logger     *zap.Logger
}

// NewNaverAdapter creates the Naver adapter with the default readiness policy.
func NewNaverAdapter(probeURL string, logger *zap.Logger) Adapter {
	return &NaverAdapter{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		probeURL:   probeURL,
		policy:     DefaultReadinessPolicy,
		logger:     logger,
	}
}

// Provider returns the SDK name.
func (a *NaverAdapter) Provider() string { return "naver" }

// Ready polls the SDK script endpoint until it answers or the retry budget
// is spent.
func (a *NaverAdapter) Ready(ctx context.Context) error {
	err := a.policy.Do(ctx, func(ctx context.Context) error {
		return probeEndpoint(ctx, a.httpClient, a.probeURL)
	})
	if err != nil {
		a.logger.Error("Naver Maps SDK never became ready", zap.Error(err))
	}
	return err
}

// BuildView assembles the map view for the Naver SDK.
func (a *NaverAdapter) BuildView(in ViewInput) *View {
	return BuildView(a.Provider(), in, a.logger)
}

// ResolveMarkerClick maps a marker id or DOM title onto a POI selection.
// Naver markers do not expose reliable click targets, hence the title
// fallback.
func (a *NaverAdapter) ResolveMarkerClick(idOrTitle string, pois []models.POI, lang string) *models.Selection {
	return resolveMarkerClick(idOrTitle, pois, lang)
}

func probeEndpoint(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("probe returned status %d", resp.StatusCode)
	}
	return nil
}
