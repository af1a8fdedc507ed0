// Package export serializes a collected record to a file. The JSON export
// preserves the full tree and round-trips through report.DecodeJSON; the
// CSV export is a flattened, presentation-oriented view that does not
// reconstruct nesting beyond its label prefixes.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

// Default output filenames, next to the working directory unless the caller
// overrides the path.
const (
	DefaultJSONPath = "hardware_report.json"
	DefaultCSVPath  = "hardware_report.csv"
)

// ErrNothingToExport is returned when there is no record to write.
var ErrNothingToExport = errors.New("nothing to export")

// JSON writes the record as an indented, order-preserving JSON document.
func JSON(v report.Value, path string) error {
	if v == nil {
		return ErrNothingToExport
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return fmt.Errorf("failed to indent record: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CSV writes the record as flat rows. Scalar fields become
// (prefix+label, value) rows. A list field becomes a header row with the
// label, then per element either an "  Item N" row followed by the
// element's fields indented a further four spaces, or an
// "  Item N: value" row for scalar elements. Object-valued fields follow
// the same header-and-indent shape as list elements.
func CSV(v report.Value, path string) error {
	if v == nil {
		return ErrNothingToExport
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := writeValue(w, v, ""); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func writeValue(w *csv.Writer, v report.Value, prefix string) error {
	switch t := v.(type) {
	case report.Object:
		return writeObject(w, t, prefix)
	case report.List:
		return writeList(w, t, prefix)
	default:
		return w.Write([]string{prefix + report.Display(t)})
	}
}

func writeObject(w *csv.Writer, obj report.Object, prefix string) error {
	for _, f := range obj {
		switch val := f.Value.(type) {
		case report.List:
			if err := w.Write([]string{prefix + f.Name}); err != nil {
				return err
			}
			if err := writeList(w, val, prefix); err != nil {
				return err
			}
		case report.Object:
			if err := w.Write([]string{prefix + f.Name}); err != nil {
				return err
			}
			if err := writeObject(w, val, prefix+"    "); err != nil {
				return err
			}
		default:
			if err := w.Write([]string{prefix + f.Name, report.Display(val)}); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeList(w *csv.Writer, list report.List, prefix string) error {
	for i, item := range list {
		switch val := item.(type) {
		case report.Object:
			if err := w.Write([]string{fmt.Sprintf("  Item %d", i+1)}); err != nil {
				return err
			}
			if err := writeObject(w, val, prefix+"    "); err != nil {
				return err
			}
		case report.List:
			if err := w.Write([]string{fmt.Sprintf("  Item %d", i+1)}); err != nil {
				return err
			}
			if err := writeList(w, val, prefix+"    "); err != nil {
				return err
			}
		default:
			if err := w.Write([]string{fmt.Sprintf("  Item %d: %s", i+1, report.Display(val))}); err != nil {
				return err
			}
		}
	}
	return nil
}
