// services/aladhan.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"deenly-backend/utils"
)

const defaultAladhanBaseURL = "https://api.aladhan.com"

// DefaultCalculationMethod is the Aladhan calculation method used for every
// lookup (3 = Muslim World League).
const DefaultCalculationMethod = 3

// TimesFetcher yields a day's prayer timings for a location as HH:MM strings
// keyed by timing name (Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha, ...).
type TimesFetcher interface {
	DailyTimes(ctx context.Context, lat, lon float64, method int) (map[string]string, error)
}

// AladhanClient fetches prayer timings from the Aladhan API.
type AladhanClient struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewAladhanClient(baseURL string) *AladhanClient {
	if baseURL == "" {
		baseURL = defaultAladhanBaseURL
	}
	return &AladhanClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// DailyTimes fetches today's timings. Failures are not retried; the caller
// skips the affected recipient.
func (a *AladhanClient) DailyTimes(ctx context.Context, lat, lon float64, method int) (map[string]string, error) {
	endpoint := fmt.Sprintf("%s/v1/timings/%s?latitude=%s&longitude=%s&method=%d",
		a.baseURL,
		utils.AladhanDate(a.now()),
		url.QueryEscape(fmt.Sprintf("%g", lat)),
		url.QueryEscape(fmt.Sprintf("%g", lon)),
		method,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("aladhan request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladhan status %d", resp.StatusCode)
	}

	var body aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("aladhan decode: %w", err)
	}
	if body.Data.Timings == nil {
		return nil, fmt.Errorf("aladhan response missing timings")
	}
	return body.Data.Timings, nil
}
