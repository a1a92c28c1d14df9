package httpclient

import (
	"net/http"

	"reservation-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// InitHttpClient wraps the outbound HTTP client with a threshold circuit
// breaker. All calls to the user service, court directory and payment
// provider go through it.
func InitHttpClient(cfg *config.HttpClientConfig) *circuit.HTTPClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxConnsPerHost:     cfg.MaxConcurrentRequests,
			MaxIdleConnsPerHost: cfg.MaxConcurrentRequests,
		},
	}
	return circuit.NewHTTPClient(cfg.Timeout, cfg.FailureThreshold, client)
}
