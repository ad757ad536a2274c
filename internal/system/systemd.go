// Package system wraps service supervision and readiness probing for the
// Perch hub and proxy. It shells out to systemctl for restarts and checks
// hub liveness over HTTP.
package system

import (
	"fmt"
	"os/exec"
	"strings"
)

// Service unit names for the Perch components.
const (
	HubService   = "perch-hub"
	ProxyService = "traefik"
)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// RestartService restarts a systemd unit.
func RestartService(name string) error {
	out, err := execCommand("systemctl", "restart", name).CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl restart %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ServiceActive reports whether a systemd unit is currently active.
func ServiceActive(name string) bool {
	return execCommand("systemctl", "is-active", "--quiet", name).Run() == nil
}
