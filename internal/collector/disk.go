package collector

import (
	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"github.com/shirou/gopsutil/v3/disk"
	"go.uber.org/zap"
)

// DiskCollector reports mounted partitions and their usage.
type DiskCollector struct {
	BaseCollector
}

// NewDiskCollector creates a new DiskCollector with the given logger.
func NewDiskCollector(logger *zap.Logger) *DiskCollector {
	return &DiskCollector{BaseCollector: NewBaseCollector(logger)}
}

// Name returns the collector's category label.
func (c *DiskCollector) Name() string { return "Disk Info" }

// Collect wraps the partition list under a single "Disks" field.
func (c *DiskCollector) Collect() report.Value {
	disks := report.List{}

	partitions, err := disk.Partitions(false)
	if err != nil {
		disks = append(disks, report.Errorf("Failed to get disk info: %v", err))
	} else {
		for _, p := range partitions {
			if shouldSkipPartition(p) {
				continue
			}

			var d report.Object
			d.Set("Device", report.String(p.Device))
			d.Set("Mountpoint", report.String(p.Mountpoint))
			d.Set("File System", report.String(p.Fstype))

			usage, err := disk.Usage(p.Mountpoint)
			if err != nil {
				c.LogWarning("failed to get disk usage",
					zap.String("device", p.Device),
					zap.String("mountpoint", p.Mountpoint),
					zap.Error(err))
			} else {
				d.Set("Total Size (GB)", report.Round2(float64(usage.Total)/bytesPerGB))
				d.Set("Used (GB)", report.Round2(float64(usage.Used)/bytesPerGB))
				d.Set("Free (GB)", report.Round2(float64(usage.Free)/bytesPerGB))
				d.Set("Usage (%)", report.Round2(usage.UsedPercent))
			}

			disks = append(disks, d)
		}
	}

	var obj report.Object
	obj.Set("Disks", disks)
	return obj
}

// shouldSkipPartition filters pseudo filesystems and special mounts.
func shouldSkipPartition(p disk.PartitionStat) bool {
	skipTypes := map[string]bool{
		"devfs":       true,
		"devtmpfs":    true,
		"tmpfs":       true,
		"squashfs":    true,
		"overlay":     true,
		"aufs":        true,
		"proc":        true,
		"sysfs":       true,
		"cgroup":      true,
		"cgroup2":     true,
		"debugfs":     true,
		"securityfs":  true,
		"pstore":      true,
		"configfs":    true,
		"fusectl":     true,
		"mqueue":      true,
		"hugetlbfs":   true,
		"binfmt_misc": true,
	}
	return skipTypes[p.Fstype]
}
