package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elizafairlady/go-toggle/toggle"
	"github.com/elizafairlady/go-toggle/tui"
)

// appConfig carries the demo settings from the CLI.
type appConfig struct {
	// MaxClicks is how many changes the app accepts before it stops
	// propagating them to the control value.
	MaxClicks int
	// Misuse constructs an extra, deliberately misused switch so
	// the diagnostics show up in the footer.
	Misuse bool
}

// sharedState is mutated by the switch change handlers and the
// warner. bubbletea copies the model on every update, so mutable
// demo state lives behind one pointer shared by all closures.
type sharedState struct {
	bothOn     bool // control value for the synchronized pair
	clicks     int
	soloClicks int
	warnings   []string
}

// appKeyMap holds the app-level bindings. Switch activation keys
// belong to the focused switch.
type appKeyMap struct {
	Next  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Reset: key.NewBinding(key.WithKeys("R", "ctrl+r"), key.WithHelp("R", "reset demo")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// demoHelp composes the switch and app bindings for the help view.
type demoHelp struct {
	sw  tui.KeyMap
	app appKeyMap
}

func (h demoHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.sw.Toggle, h.app.Next, h.app.Reset, h.app.Quit}
}

func (h demoHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{{h.sw.Toggle, h.sw.Reset}, {h.app.Next, h.app.Reset, h.app.Quit}}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	frozenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
)

// appModel is the bubbletea model for the demo.
type appModel struct {
	cfg      appConfig
	keys     appKeyMap
	help     help.Model
	shared   *sharedState
	switches []tui.Switch
	focus    int
	quitting bool
}

func newApp(cfg appConfig) appModel {
	shared := &sharedState{}

	warner := toggle.WarnerFunc(func(format string, args ...any) {
		shared.warnings = append(shared.warnings, fmt.Sprintf(format, args...))
	})

	// The change handler owns the control value. Past the click
	// limit it drops toggle requests on the floor, so the
	// controlled pair renders the last accepted value.
	handleChange := func(next toggle.State, a toggle.Action) {
		if shared.clicks >= cfg.MaxClicks && a.Kind == toggle.ActionToggle {
			return
		}
		shared.bothOn = next.On
		shared.clicks++
	}

	controlled := func(label string) tui.Switch {
		c := tui.DefaultSwitchConfig()
		c.Label = label
		c.Control = &shared.bothOn
		c.OnChange = handleChange
		c.Warner = warner
		return tui.NewSwitch(c)
	}

	soloCfg := tui.DefaultSwitchConfig()
	soloCfg.Label = "Uncontrolled"
	soloCfg.OnChange = func(_ toggle.State, a toggle.Action) {
		if a.Kind == toggle.ActionToggle {
			shared.soloClicks++
		}
	}
	soloCfg.Warner = warner

	switches := []tui.Switch{
		controlled("Bell"),
		controlled("Chime"),
		tui.NewSwitch(soloCfg),
	}

	if cfg.Misuse {
		// Controlled, no OnChange, not marked read-only: the
		// detector flags it at construction.
		bad := tui.DefaultSwitchConfig()
		bad.Label = "Misused"
		bad.Control = &shared.bothOn
		bad.Warner = warner
		switches = append(switches, tui.NewSwitch(bad))
	}

	switches[0] = switches[0].Focus()

	return appModel{
		cfg:      cfg,
		keys:     defaultAppKeyMap(),
		help:     help.New(),
		shared:   shared,
		switches: switches,
	}
}

// Init implements tea.Model.
func (m appModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switches[m.focus] = m.switches[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.switches)
			m.switches[m.focus] = m.switches[m.focus].Focus()
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.shared.bothOn = false
			m.shared.clicks = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.switches[m.focus], cmd = m.switches[m.focus].Update(msg)
		return m, cmd

	case tui.ToggleMsg:
		// State already flowed through the change handlers; the
		// message just triggers a redraw.
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Control props"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Two switches, one value. The app owns it."))
	b.WriteString("\n\n")

	for i, s := range m.switches {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + s.View() + "\n")
	}
	b.WriteString("\n")

	if m.shared.clicks >= m.cfg.MaxClicks {
		b.WriteString(frozenStyle.Render("Whoa, you clicked too much! Press R to reset."))
	} else {
		b.WriteString(fmt.Sprintf("Times clicked: %d of %d", m.shared.clicks, m.cfg.MaxClicks))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("Uncontrolled switch clicked %d times", m.shared.soloClicks)))
	b.WriteString("\n")

	if len(m.shared.warnings) > 0 {
		b.WriteString("\n")
		for _, w := range m.shared.warnings {
			b.WriteString(warnStyle.Render("warning: "+w) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(demoHelp{sw: tui.DefaultKeyMap(), app: m.keys}))

	return appStyle.Render(b.String())
}
