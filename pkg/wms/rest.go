package wms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

func init() {
	Register("rest", func(opts Options) (Service, error) {
		return newRestService(opts)
	})
}

// restService queries a WMS that exposes run reports over a REST API.
type restService struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

type restReportResponse struct {
	Runs    []RunReport `json:"runs"`
	Message string      `json:"message,omitempty"`
}

func newRestService(opts Options) (*restService, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("rest backend requires an endpoint")
	}
	return &restService{
		endpoint: strings.TrimRight(opts.Endpoint, "/"),
		apiKey:   opts.APIKey,
		client:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (s *restService) Report(ctx context.Context, runID, user string, histDays float64, passThru string) ([]RunReport, string, error) {
	query := url.Values{}
	if runID != "" {
		query.Set("id", runID)
	}
	if user != "" {
		query.Set("user", user)
	}
	query.Set("hist", strconv.FormatFloat(histDays, 'f', -1, 64))
	if passThru != "" {
		query.Set("pass_thru", passThru)
	}

	reqURL := fmt.Sprintf("%s/runs?%s", s.endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to WMS API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("WMS API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result restReportResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, "", fmt.Errorf("failed to parse response: %w", err)
	}
	return result.Runs, result.Message, nil
}
