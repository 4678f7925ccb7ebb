package tui

import (
	"fmt"

	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/internal/service"
	"github.com/xeuxeuxeu/Epic-Games-Friendlist-Remover/models"
)

// failurePreviewLimit caps how many individual failures the report lists
// before collapsing the rest into a "+N more" line.
const failurePreviewLimit = 10

// ProgressSink returns a sink that rewrites a single progress line after
// every completed removal and finishes it with a newline.
func (t *TUI) ProgressSink() service.ProgressSink {
	return service.ProgressFunc(func(completed, total int) {
		fmt.Fprintf(t.out, "\rRemoving selected friends... %d/%d", completed, total)
		if completed == total {
			fmt.Fprintln(t.out)
		}
	})
}

// ShowReport prints the final removal summary: the success count, and the
// failures listed up to [failurePreviewLimit] with the remainder summarised.
func (t *TUI) ShowReport(report models.RemovalReport) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, successStyle.Render(fmt.Sprintf("Removed: %d", len(report.Successes))))

	if len(report.Failures) == 0 {
		return
	}

	fmt.Fprintln(t.out, errorStyle.Render(fmt.Sprintf("Failed: %d", len(report.Failures))))
	for i, failure := range report.Failures {
		if i == failurePreviewLimit {
			fmt.Fprintf(t.out, "  ... and %d more\n", len(report.Failures)-failurePreviewLimit)
			break
		}
		fmt.Fprintf(t.out, "  - %s: %s\n", failure.AccountID, failure.Reason)
	}
}
