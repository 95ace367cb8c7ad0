package puzzle

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorOK     = lipgloss.Color("#2CD7C7")
	colorFail   = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#2C4A54")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle    = lipgloss.NewStyle().Foreground(colorOK)
	failStyle  = lipgloss.NewStyle().Foreground(colorFail)
)

// Report writes the day header followed by the two labelled answers.
func Report(w io.Writer, d Day, s Solution) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.String()))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("part 1:"), s.Part1)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("part 2:"), s.Part2)
	_, err := io.WriteString(w, b.String())

	return err
}

// ReportChecks writes one status line per outcome.
func ReportChecks(w io.Writer, outcomes []Outcome) error {
	var b strings.Builder
	for _, o := range outcomes {
		status := okStyle.Render("✓")
		detail := mutedStyle.Render(o.Elapsed.String())
		if o.Err != nil {
			status = failStyle.Render("✗")
			detail = failStyle.Render(o.Err.Error())
		}
		fmt.Fprintf(&b, "%s %-32s %s\n", status, o.Day.String(), detail)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
