package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the collection service base address used for writes.
	HTTPAddress string
	// WSAddress is the websocket endpoint of the snapshot subscription.
	WSAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset fields, and
// validates the resulting [ClientConfig]. The websocket address defaults to
// the HTTP address with a ws:// scheme when not set explicitly.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			WSAddress:      cfg.Adapter.WSAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = "localhost:8080"
	}
	if clientCfg.Adapter.WSAddress == "" {
		clientCfg.Adapter.WSAddress = deriveWSAddress(clientCfg.Adapter.HTTPAddress)
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 30 * time.Second
	}

	return clientCfg, clientCfg.validate()
}

// deriveWSAddress maps an HTTP base address onto the subscription endpoint
// of the same host.
func deriveWSAddress(httpAddress string) string {
	addr := strings.TrimRight(httpAddress, "/")
	switch {
	case strings.HasPrefix(addr, "https://"):
		addr = "wss://" + strings.TrimPrefix(addr, "https://")
	case strings.HasPrefix(addr, "http://"):
		addr = "ws://" + strings.TrimPrefix(addr, "http://")
	default:
		addr = "ws://" + addr
	}

	return addr + "/api/items/subscribe"
}
