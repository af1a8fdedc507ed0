package collector

import (
	"os"
	"strings"
)

// readSysFile reads a sysfs/procfs entry and returns its trimmed content.
func readSysFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
