// Package debugnet announces the device's debug shell over mDNS.
//
// When the debug framework is enabled, the device brings up USB ethernet
// gadget networking and a dropbear SSH server. Announcing the endpoint via
// DNS-SD lets a tethered development host find the device without knowing
// its address, mirroring how the device is normally reached at a fixed IP.
package debugnet

import (
	"fmt"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/quill-os/quillboot/internal/logging"
)

const (
	// ServiceType is the DNS-SD service type for the debug shell.
	ServiceType = "_ssh._tcp"

	// ServiceDomain is the mDNS domain.
	ServiceDomain = "local."

	// DefaultPort is where dropbear listens during early boot.
	DefaultPort = 2222

	// DefaultInstance is the advertised instance name.
	DefaultInstance = "quillboot-debug"
)

// Announcer advertises the debug shell until shut down.
type Announcer struct {
	server *zeroconf.Server
}

// Announce registers the debug shell service on all interfaces. The txt
// records carry the quillboot version so tooling can match capabilities.
func Announce(instance string, port int, version string) (*Announcer, error) {
	if instance == "" {
		instance = DefaultInstance
	}
	if port <= 0 {
		port = DefaultPort
	}

	txt := []string{fmt.Sprintf("quillboot=%s", version)}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Debug shell announced",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return &Announcer{server: server}, nil
}

// Shutdown withdraws the announcement.
func (a *Announcer) Shutdown() {
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}
