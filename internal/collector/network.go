package collector

import (
	"net"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	psnet "github.com/shirou/gopsutil/v3/net"
	"go.uber.org/zap"
)

// NetworkCollector reports network adapters, their state, and addresses.
type NetworkCollector struct {
	BaseCollector
}

// NewNetworkCollector creates a new NetworkCollector with the given logger.
func NewNetworkCollector(logger *zap.Logger) *NetworkCollector {
	return &NetworkCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *NetworkCollector) Name() string { return "Network Info" }

// Collect wraps the adapter list under a single "Network Adapters" field.
func (c *NetworkCollector) Collect() report.Value {
	adapters := report.List{}

	ifaces, err := psnet.Interfaces()
	if err != nil {
		adapters = append(adapters, report.Errorf("Failed to get network info: %v", err))
	} else {
		// stdlib interfaces carry the up/down flags gopsutil's stat list
		// does not always include.
		flags := make(map[string]net.Flags)
		goIfaces, err := net.Interfaces()
		if err != nil {
			c.LogWarning("failed to get interface flags", zap.Error(err))
		}
		for _, iface := range goIfaces {
			flags[iface.Name] = iface.Flags
		}

		for _, iface := range ifaces {
			var a report.Object
			a.Set("Interface", report.String(iface.Name))

			status := "Down"
			if flags[iface.Name]&net.FlagUp != 0 {
				status = "Up"
			}
			a.Set("Status", report.String(status))

			ips := report.List{}
			for _, addr := range iface.Addrs {
				if ip, _, err := net.ParseCIDR(addr.Addr); err == nil && ip.To4() != nil {
					ips = append(ips, report.String(addr.Addr))
				} else if ip := net.ParseIP(addr.Addr); ip != nil && ip.To4() != nil {
					ips = append(ips, report.String(addr.Addr))
				}
			}
			if len(ips) == 0 {
				ips = append(ips, report.String("None"))
			}
			a.Set("IPv4 Addresses", ips)

			macs := report.List{}
			if iface.HardwareAddr != "" {
				macs = append(macs, report.String(iface.HardwareAddr))
			} else {
				macs = append(macs, report.String("None"))
			}
			a.Set("MAC Addresses", macs)

			adapters = append(adapters, a)
		}
	}

	var obj report.Object
	obj.Set("Network Adapters", adapters)
	return obj
}
