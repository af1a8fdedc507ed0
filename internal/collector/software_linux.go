//go:build linux

package collector

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
	"go.uber.org/zap"
)

// querySoftware asks whichever package manager is installed: dpkg, rpm, or
// pacman, in that order.
func querySoftware(logger *zap.Logger) (report.List, error) {
	if path, err := exec.LookPath("dpkg-query"); err == nil {
		return queryDpkg(path)
	}
	if path, err := exec.LookPath("rpm"); err == nil {
		return queryRpm(path)
	}
	if path, err := exec.LookPath("pacman"); err == nil {
		return queryPacman(path)
	}
	return nil, fmt.Errorf("no supported package manager found")
}

func queryDpkg(path string) (report.List, error) {
	output, err := exec.Command(path, "-W", "-f", "${Package}\t${Version}\t${Maintainer}\n").Output()
	if err != nil {
		return nil, fmt.Errorf("dpkg-query failed: %w", err)
	}
	return parsePackageLines(output, "\t")
}

func queryRpm(path string) (report.List, error) {
	output, err := exec.Command(path, "-qa", "--qf", "%{NAME}\t%{VERSION}-%{RELEASE}\t%{VENDOR}\n").Output()
	if err != nil {
		return nil, fmt.Errorf("rpm -qa failed: %w", err)
	}
	return parsePackageLines(output, "\t")
}

func queryPacman(path string) (report.List, error) {
	output, err := exec.Command(path, "-Q").Output()
	if err != nil {
		return nil, fmt.Errorf("pacman -Q failed: %w", err)
	}
	return parsePackageLines(output, " ")
}

// parsePackageLines turns "name<sep>version[<sep>vendor]" lines into
// software entries.
func parsePackageLines(output []byte, sep string) (report.List, error) {
	list := report.List{}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, sep, 3)

		var entry report.Object
		entry.Set("Name", report.String(parts[0]))
		if len(parts) > 1 && parts[1] != "" {
			entry.Set("Version", report.String(parts[1]))
		}
		if len(parts) > 2 && parts[2] != "" {
			entry.Set("Vendor", report.String(parts[2]))
		}
		list = append(list, entry)
	}
	return list, scanner.Err()
}
