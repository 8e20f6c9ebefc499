package status

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyClientName = errors.New("client name cannot be empty")

// Check is a client-reported health ping, kept for uptime monitoring.
type Check struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// Validate checks if the Check has valid data.
func (c *Check) Validate() error {
	if strings.TrimSpace(c.ClientName) == "" {
		return ErrEmptyClientName
	}
	return nil
}
