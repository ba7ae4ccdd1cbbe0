// Package style holds the terminal output styles and renderers used by
// the podmerge CLI.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/podmerge/pkg/types"
)

var (
	// ErrorStyle renders fatal error lines.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	// SuccessStyle renders confirmation lines.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// MutedStyle renders secondary information.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// TitleStyle renders section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true)
)

// RenderError formats an error for stderr.
func RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}

// RenderOwnerStatus renders the status table for all plugin owners in
// the manifest.
func RenderOwnerStatus(statuses []types.OwnerStatus) string {
	if len(statuses) == 0 {
		return MutedStyle.Render("No plugin contributions in the Podfile")
	}

	data := pterm.TableData{{"OWNER", "HOOK CALLS", "PLATFORM"}}
	for _, s := range statuses {
		platform := "-"
		if s.HasPlatform {
			platform = "yes"
		}
		data = append(data, []string{s.Owner, fmt.Sprintf("%d", s.HookCalls), platform})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// pterm only fails on impossible terminal states; fall back to
		// a bare list rather than dropping the information.
		out := ""
		for _, s := range statuses {
			out += fmt.Sprintf("%s hooks=%d platform=%v\n", s.Owner, s.HookCalls, s.HasPlatform)
		}
		return out
	}
	return rendered
}
