// Package inputgroup renders one storyboard form field as an auto/manual
// toggle, a free-text input and a preset select list.
//
// The widget is controlled: it never keeps the field value between renders.
// Every edit is reported through Props.OnChange as a field.Patch carrying
// exactly the one field that changed, and the caller decides what to do
// with it.
package inputgroup

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"storyboard/internal/field"
)

const (
	defaultAutoLabel          = "Auto"
	defaultPlaceholder        = "Custom..."
	defaultOptionsPlaceholder = "Select..."
)

var (
	labelStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	toggleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	toggleOnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	valueStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("236")).Padding(0, 2)
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Props struct {
	Label              string
	State              field.State
	Options            []string
	OnChange           func(field.Patch)
	AutoLabel          string
	Placeholder        string
	OptionsPlaceholder string
}

type InputGroup struct {
	props Props

	// bound to huh fields for the duration of one form run
	auto     bool
	custom   string
	selected string
}

func New(props Props) *InputGroup {
	if props.AutoLabel == "" {
		props.AutoLabel = defaultAutoLabel
	}
	if props.Placeholder == "" {
		props.Placeholder = defaultPlaceholder
	}
	if props.OptionsPlaceholder == "" {
		props.OptionsPlaceholder = defaultOptionsPlaceholder
	}
	return &InputGroup{props: props}
}

func (g *InputGroup) ToggleAuto(checked bool) {
	g.emit(field.SetAuto(checked))
}

func (g *InputGroup) EditCustom(value string) {
	g.emit(field.SetCustom(value))
}

func (g *InputGroup) Choose(option string) {
	g.emit(field.SetSelected(option))
}

func (g *InputGroup) emit(p field.Patch) {
	if g.props.OnChange != nil {
		g.props.OnChange(p)
	}
}

// Fields returns huh fields seeded from the current State.
func (g *InputGroup) Fields() []huh.Field {
	g.auto = g.props.State.Auto
	g.custom = g.props.State.Custom
	g.selected = g.props.State.Selected

	options := make([]huh.Option[string], 0, len(g.props.Options)+2)
	options = append(options, huh.NewOption(g.props.OptionsPlaceholder, ""))
	for _, opt := range presetOptions(g.props.Options, g.selected) {
		options = append(options, huh.NewOption(opt, opt))
	}

	return []huh.Field{
		huh.NewConfirm().
			Title(g.props.Label).
			Description("Let the generator fill this field").
			Affirmative(g.props.AutoLabel).
			Negative("Manual").
			Value(&g.auto),
		huh.NewInput().
			Title(g.props.Label + " (custom)").
			Placeholder(g.props.Placeholder).
			Value(&g.custom),
		huh.NewSelect[string]().
			Title(g.props.Label + " (preset)").
			Options(options...).
			Value(&g.selected),
	}
}

// presetOptions keeps a selected value that is not one of the presets
// selectable, otherwise the select resets it to the placeholder on bind.
func presetOptions(options []string, selected string) []string {
	if selected == "" || slices.Contains(options, selected) {
		return options
	}
	return append(slices.Clone(options), selected)
}

func (g *InputGroup) Group() *huh.Group {
	return huh.NewGroup(g.Fields()...)
}

// Commit reports every field the user changed since Fields was called, one
// patch per field, in the order auto, custom, selected.
func (g *InputGroup) Commit() {
	state := g.props.State
	if g.auto != state.Auto {
		g.ToggleAuto(g.auto)
	}
	if g.custom != state.Custom {
		g.EditCustom(g.custom)
	}
	if g.selected != state.Selected {
		g.Choose(g.selected)
	}
}

// Run shows the field as a standalone form and commits the edits.
func (g *InputGroup) Run() error {
	if err := huh.NewForm(g.Group()).Run(); err != nil {
		return err
	}
	g.Commit()
	return nil
}

func (g *InputGroup) View() string {
	state := g.props.State

	toggle := toggleStyle.Render("[ ] " + g.props.AutoLabel)
	if state.Auto {
		toggle = toggleOnStyle.Render("[x] " + g.props.AutoLabel)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(g.props.Label), "  ", toggle)

	custom := placeholderStyle.Render(g.props.Placeholder)
	if state.Custom != "" {
		custom = state.Custom
	}
	selected := placeholderStyle.Render(g.props.OptionsPlaceholder)
	if state.Selected != "" {
		selected = state.Selected
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		valueStyle.Render(custom),
		valueStyle.Render(selected),
	)
}
