// Package render turns a collected record into indented display text. It
// is the presentation adapter any control surface consumes: the walk is
// depth first and calls emit once per rendered line.
package render

import (
	"fmt"
	"strings"

	"github.com/hackintoshhouse/hardwarehouse/pkg/report"
)

const indentWidth = 4

// Lines walks the record depth first and emits one display line per node.
// Nesting is encoded as four spaces of indentation per level; list elements
// get "- Item N:" headers.
func Lines(v report.Value, emit func(string)) {
	walk(v, 0, emit)
}

func walk(v report.Value, depth int, emit func(string)) {
	indent := strings.Repeat(" ", depth*indentWidth)
	switch t := v.(type) {
	case report.Object:
		for _, f := range t {
			switch f.Value.(type) {
			case report.Object, report.List:
				emit(indent + f.Name + ":")
				walk(f.Value, depth+1, emit)
			default:
				emit(indent + f.Name + ": " + report.Display(f.Value))
			}
		}
	case report.List:
		for i, item := range t {
			emit(fmt.Sprintf("%s- Item %d:", indent, i+1))
			walk(item, depth+1, emit)
		}
	default:
		emit(indent + report.Display(t))
	}
}
