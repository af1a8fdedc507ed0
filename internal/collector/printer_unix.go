//go:build !windows

package collector

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// queryPrinters asks CUPS for configured queues. lpstat -p prints one line
// per printer: "printer NAME is idle.  enabled since ...".
func queryPrinters() (report.List, error) {
	lpstat, err := exec.LookPath("lpstat")
	if err != nil {
		return nil, fmt.Errorf("lpstat not available: %w", err)
	}

	output, err := exec.Command(lpstat, "-p").Output()
	if err != nil {
		return nil, fmt.Errorf("lpstat -p failed: %w", err)
	}

	defaultPrinter := ""
	if out, err := exec.Command(lpstat, "-d").Output(); err == nil {
		if _, name, ok := strings.Cut(strings.TrimSpace(string(out)), ": "); ok {
			defaultPrinter = name
		}
	}

	list := report.List{}
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, "printer ")
		if !ok {
			continue
		}
		name, state, _ := strings.Cut(rest, " is ")

		var prn report.Object
		prn.Set("Name", report.String(name))
		status, _, _ := strings.Cut(state, ".")
		prn.Set("Status", report.String(strings.TrimSpace(status)))
		prn.Set("Default", report.Bool(name == defaultPrinter))
		list = append(list, prn)
	}
	return list, nil
}
