package enums

import "fmt"

// ConnectionStatus tracks a manufacturer-to-startup connection request.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
)

var validConnectionStatuses = []ConnectionStatus{
	ConnectionStatusPending,
	ConnectionStatusAccepted,
	ConnectionStatusRejected,
}

// String implements fmt.Stringer.
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ConnectionStatus.
func (s ConnectionStatus) IsValid() bool {
	for _, candidate := range validConnectionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseConnectionStatus converts raw input into a ConnectionStatus.
func ParseConnectionStatus(value string) (ConnectionStatus, error) {
	for _, candidate := range validConnectionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid connection status %q", value)
}
