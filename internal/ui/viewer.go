package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Viewer displays a test log interactively
type Viewer interface {
	View(logPath string) error
}

// LogViewer pages through a test log in a TUI with results highlighted
type LogViewer struct{}

// NewLogViewer creates a new LogViewer
func NewLogViewer() *LogViewer {
	return &LogViewer{}
}

// View opens logPath in a scrollable view positioned at the first failure
func (lv *LogViewer) View(logPath string) error {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read test log: %w", err)
	}
	text, failures := HighlightLog(string(data))

	app := tview.NewApplication()

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	header := fmt.Sprintf(" %s (%d failure(s)) | ↑↓ PgUp PgDn to scroll, [yellow]n[white] next failure, q to exit ", logPath, len(failures))
	headerView.SetText(header)

	logView := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	logView.SetText(text)
	logView.SetBorder(true)

	next := 0
	jumpToFailure := func() {
		if len(failures) == 0 {
			return
		}
		logView.ScrollTo(failures[next], 0)
		next = (next + 1) % len(failures)
	}
	jumpToFailure()

	logView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				app.Stop()
				return nil
			case 'n', 'N':
				jumpToFailure()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(logView, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(logView).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// HighlightLog escapes a log for tview and colours result lines. It returns the
// tagged text and the 0-based line numbers of failure lines.
func HighlightLog(content string) (string, []int) {
	var builder strings.Builder
	var failures []int

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		escaped := tview.Escape(line)
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "--- FAIL"), strings.HasPrefix(trimmed, "FAIL"), strings.HasPrefix(trimmed, "panic:"):
			failures = append(failures, i)
			fmt.Fprintf(&builder, "[red]%s[white]", escaped)
		case strings.HasPrefix(trimmed, "--- PASS"), strings.HasPrefix(trimmed, "ok "), trimmed == "PASS":
			fmt.Fprintf(&builder, "[green]%s[white]", escaped)
		case strings.HasPrefix(trimmed, "--- SKIP"):
			fmt.Fprintf(&builder, "[yellow]%s[white]", escaped)
		case strings.HasPrefix(trimmed, "=== "):
			fmt.Fprintf(&builder, "[gray]%s[white]", escaped)
		default:
			builder.WriteString(escaped)
		}
		if i < len(lines)-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String(), failures
}
