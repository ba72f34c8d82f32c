// The sfoglia-demo binary runs the navigator against the headless
// environment inside a terminal UI, so the interception rules can be
// exercised without a browser: number keys click in-app anchors, b/f drive
// the session history, x clicks an external link, c clicks the counter.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/nav"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/platform/headless"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	pageStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(64)
	statusStyle = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	env    *headless.Env
	mount  *headless.MountNode
	app    *sfoglia.App
	status string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "1":
		m.status = m.click(nav.Click{Href: "/"})
	case "2":
		m.status = m.click(nav.Click{Href: "/about"})
	case "3":
		m.status = m.click(nav.Click{Href: "/missing"})
	case "x":
		m.status = m.click(nav.Click{Href: "https://example.com"})
	case "s":
		m.status = m.click(nav.Click{Href: "/about", Shift: true})
	case "c":
		m.env.Click(nav.Click{TargetID: constants.CounterButtonID})
		m.status = "clicked counter button"
	case "b":
		m.env.Back()
		m.status = "history back"
	case "f":
		m.env.Forward()
		m.status = "history forward"
	}
	return m, nil
}

func (m model) click(c nav.Click) string {
	if m.env.Click(c) {
		return fmt.Sprintf("intercepted click on %s", c.Href)
	}
	return fmt.Sprintf("left click on %s to the browser", c.Href)
}

func (m model) View() string {
	counter := "-"
	if el, ok := m.env.ElementByID(constants.CounterValueID); ok {
		counter = el.Text()
		if counter == "" {
			counter = "0"
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("sfoglia headless demo"),
		pageStyle.Render(m.mount.HTML()),
		statusStyle.Render(fmt.Sprintf("path=%s  history=%d  counter=%s  defaulted=%d",
			m.env.CurrentPath(), m.env.HistoryLen(), counter, len(m.env.DefaultedClicks()))),
		statusStyle.Render(m.status),
		helpStyle.Render("1 home · 2 about · 3 missing · x external · s shift-click · c counter · b back · f forward · q quit"),
	) + "\n"
}

func main() {
	configPath := flag.String("config", "", "path to a TOML options file")
	locale := flag.String("locale", "", "page content locale (en, it)")
	flag.Parse()

	options := sfoglia.DefaultOptions()
	if *configPath != "" {
		var err error
		options, err = sfoglia.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *locale != "" {
		options.Locale = *locale
	}
	// Keep JSON log lines out of the terminal UI.
	sfoglia.DisableConsoleLogging()

	env := headless.New("/")
	mount := env.AddMount(options.MountID)

	app := sfoglia.Bootstrap(env, options)
	if app == nil {
		fmt.Fprintln(os.Stderr, "sfoglia-demo: initialization failed")
		os.Exit(1)
	}

	m := model{env: env, mount: mount, app: app, status: "started"}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sfoglia.CloseLogger()
}
