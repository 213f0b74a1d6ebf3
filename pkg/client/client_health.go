package client

import (
	"context"
	"encoding/json"
	"net/http"
)

type HealthService struct {
	Options []RequestOption
}

func NewHealthService(opts ...RequestOption) HealthService {
	return HealthService{
		Options: opts,
	}
}

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *HealthService) Check(ctx context.Context, opts ...RequestOption) (*Health, error) {
	cfg := newRequestConfig(append(s.Options, opts...)...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL+"/", nil)

	if err != nil {
		return nil, err
	}

	resp, err := cfg.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result Health

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
