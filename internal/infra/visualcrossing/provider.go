// Package visualcrossing adapts the Visual Crossing timeline API to the
// domain ForecastProvider port.
package visualcrossing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/infra/httpclient"
	"github.com/V3lvetStorm/pyweather/internal/ports"
)

const defaultBaseURL = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"

// How much upstream error body to carry into error messages.
const errBodyExcerpt = 300

type Provider struct {
	exec    *httpclient.Executor
	baseURL string
	apiKey  string
	now     func() time.Time
}

type Option func(*Provider)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimRight(u, "/") }
}

// WithExecutor sets a custom HTTP executor.
func WithExecutor(e *httpclient.Executor) Option {
	return func(p *Provider) { p.exec = e }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

func New(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		exec:    httpclient.NewExecutor(),
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.ForecastProvider = (*Provider)(nil)

func (p *Provider) Fetch(ctx context.Context, loc domain.Location, r domain.DateRange, units domain.UnitGroup) (domain.Forecast, []byte, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return domain.Forecast{}, nil, &domain.OpError{
			Op:   "visualcrossing.fetch",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrMissingAPIKey,
		}
	}

	reqURL := p.requestURL(loc, r, units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Forecast{}, nil, &domain.OpError{
			Op:   "visualcrossing.fetch",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.exec.Do(ctx, req)
	if err != nil {
		return domain.Forecast{}, nil, &domain.OpError{
			Op:   "visualcrossing.fetch",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if resp.Status != http.StatusOK {
		return domain.Forecast{}, nil, statusError(resp.Status, resp.BodyBytes)
	}

	var dto timelineResponse
	if err := json.Unmarshal(resp.BodyBytes, &dto); err != nil {
		return domain.Forecast{}, nil, &domain.OpError{
			Op:   "visualcrossing.decode",
			Kind: domain.KindUpstream,
			Err:  fmt.Errorf("malformed response: %w", err),
		}
	}

	fc, err := mapForecast(loc, r, units, dto, p.now().UTC())
	if err != nil {
		return domain.Forecast{}, nil, err
	}
	return fc, resp.BodyBytes, nil
}

// requestURL builds the timeline endpoint URL. The key goes in the query
// string per the API contract; callers must keep the URL out of logs.
func (p *Provider) requestURL(loc domain.Location, r domain.DateRange, units domain.UnitGroup) string {
	q := url.Values{}
	q.Set("unitGroup", string(units))
	q.Set("key", p.apiKey)
	q.Set("include", "days")

	return fmt.Sprintf("%s/%s/%s/%s?%s",
		p.baseURL,
		url.PathEscape(loc.Query()),
		r.Start.Format(domain.DateLayout),
		r.End.Format(domain.DateLayout),
		q.Encode(),
	)
}

func statusError(status int, body []byte) error {
	kind := domain.KindUpstream
	switch status {
	case http.StatusBadRequest:
		kind = domain.KindInvalidConfig
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = domain.KindAuth
	case http.StatusNotFound:
		kind = domain.KindNotFound
	case http.StatusTooManyRequests:
		kind = domain.KindRateLimited
	}

	excerpt := strings.TrimSpace(string(body))
	if len(excerpt) > errBodyExcerpt {
		excerpt = excerpt[:errBodyExcerpt] + "…"
	}

	return &domain.OpError{
		Op:   "visualcrossing.fetch",
		Kind: kind,
		Err:  fmt.Errorf("status %d: %s: %w", status, excerpt, domain.ErrUpstream),
	}
}
