package testhelpers

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// WaitForHealth polls /healthz under baseURL until it answers or timeout passes.
func WaitForHealth(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if err := CheckHealth(baseURL); err == nil {
			return nil
		}
		time.Sleep(50 * time.Millisecond)
	}
	return fmt.Errorf("health check timeout after %v", timeout)
}

// CheckHealth performs a single /healthz request.
func CheckHealth(baseURL string) error {
	resp, err := http.Get(strings.TrimSuffix(baseURL, "/") + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unhealthy: %d", resp.StatusCode)
	}
	return nil
}
