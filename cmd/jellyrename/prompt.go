package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nomadcxx/jellyrename/internal/naming"
	"github.com/Nomadcxx/jellyrename/internal/ui"
)

// promptModel is a single text input seeded with the inferred show name.
type promptModel struct {
	input     textinput.Model
	inference naming.InferenceResult
	matched   int
	total     int
	cancelled bool
}

func newPromptModel(inference naming.InferenceResult, matched, total int) promptModel {
	ti := textinput.New()
	ti.Placeholder = "Show Name"
	ti.Width = 40
	ti.CharLimit = 200
	ti.SetValue(inference.ShowName)
	ti.CursorEnd()
	ti.Focus()
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	return promptModel{
		input:     ti,
		inference: inference,
		matched:   matched,
		total:     total,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(confidenceLine(m.inference, m.matched, m.total))
	b.WriteString("\n")
	for _, name := range m.inference.ConflictingNames {
		b.WriteString(ui.Dim(fmt.Sprintf("    also seen: %s", name)))
		b.WriteString("\n")
	}
	b.WriteString("\nShow name: ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(ui.Dim("(enter to accept, esc to cancel)"))
	b.WriteString("\n")
	return b.String()
}

// confidenceLine renders the inference verdict in its tier color.
func confidenceLine(inference naming.InferenceResult, matched, total int) string {
	switch inference.Confidence {
	case naming.ConfidenceHigh:
		return ui.HighConfidence(fmt.Sprintf("✓ all %d files agree on %q", total, inference.ShowName))
	case naming.ConfidenceMedium:
		return ui.MediumConfidence(fmt.Sprintf("⚠ %d of %d files agree on %q", matched, total, inference.ShowName))
	default:
		if inference.ShowName == "" {
			return ui.LowConfidence("✗ no show name detected")
		}
		return ui.LowConfidence(fmt.Sprintf("✗ low agreement: %d of %d files suggest %q", matched, total, inference.ShowName))
	}
}

// promptShowName asks the user to confirm or correct the inferred show name.
// The bool is false when the user cancelled. Without a terminal the inferred
// name is used as-is, which still requires --show when nothing was inferred.
func promptShowName(inference naming.InferenceResult, matched, total int) (string, bool, error) {
	if !ui.IsTerminal() {
		if inference.ShowName == "" {
			return "", false, fmt.Errorf("no show name detected (use --show)")
		}
		fmt.Println(confidenceLine(inference, matched, total))
		return inference.ShowName, true, nil
	}

	p := tea.NewProgram(newPromptModel(inference, matched, total))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("prompt failed: %w", err)
	}

	m := final.(promptModel)
	if m.cancelled {
		return "", false, nil
	}
	return strings.TrimSpace(m.input.Value()), true, nil
}
