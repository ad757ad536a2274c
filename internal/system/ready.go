package system

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/perchhub/perch-config/internal/document"
)

// Hub endpoint defaults when the config does not pin them down.
const (
	DefaultHubPort = 80
	DefaultBaseURL = "/"
)

// probeClient bounds each readiness probe request.
var probeClient = &http.Client{Timeout: 5 * time.Second}

// HubEndpoint extracts the hub's HTTP address, port, and base URL from a
// config document, falling back to defaults for anything unset. An empty
// bind address means "all interfaces"; probes then go to localhost.
func HubEndpoint(doc document.Mapping) (address string, port int, baseURL string) {
	port = DefaultHubPort
	baseURL = DefaultBaseURL

	if node, err := document.Get(doc, document.Path{"http", "address"}); err == nil {
		if s, ok := node.(document.Scalar); ok {
			if v, ok := s.Value.(string); ok {
				address = v
			}
		}
	}
	if node, err := document.Get(doc, document.Path{"http", "port"}); err == nil {
		if s, ok := node.(document.Scalar); ok {
			if v, ok := s.Value.(int64); ok {
				port = int(v)
			}
		}
	}
	if node, err := document.Get(doc, document.Path{"base_url"}); err == nil {
		if s, ok := node.(document.Scalar); ok {
			if v, ok := s.Value.(string); ok && v != "" {
				baseURL = v
			}
		}
	}
	return address, port, baseURL
}

// HubReady reports whether the hub answers 200 on its API endpoint.
func HubReady(address string, port int, baseURL string) bool {
	if address == "" {
		// Default config binds all interfaces; probe locally.
		address = "127.0.0.1"
	}
	base := strings.TrimSuffix(baseURL, "/")

	url := fmt.Sprintf("http://%s%s/hub/api", net.JoinHostPort(address, strconv.Itoa(port)), base)
	resp, err := probeClient.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
