package tui

import (
	"context"

	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchDoneMsg struct {
	applied bool
}

type loginDoneMsg struct {
	session domain.Session
	err     error
}

// Model is the interactive tabbed view. Coordinator view state is only mutated inside
// Update; network calls run as commands and report back through messages.
type Model struct {
	ctx         context.Context
	coordinator *application.Coordinator
	resolve     func(string) (string, bool)
	keys        keyMap
	styles      styles

	spinner  spinner.Model
	username textinput.Model
	password textinput.Model
	search   textinput.Model
	searchOn bool

	initial application.FetchTicket
	cursor  int
	notice  string
}

// New builds the model. initial is the ticket returned by Coordinator.Start; the first fetch
// is issued from Init.
func New(ctx context.Context, coordinator *application.Coordinator, initial application.FetchTicket, resolve func(string) (string, bool)) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "Username: "

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	search := textinput.New()
	search.Placeholder = "subject, reference or engineer"
	search.Prompt = "/ "

	m := Model{
		ctx:         ctx,
		coordinator: coordinator,
		resolve:     resolve,
		keys:        newKeyMap(),
		styles:      newStyles(),
		spinner:     s,
		username:    username,
		password:    password,
		search:      search,
		initial:     initial,
	}
	m.syncLoginFocus()

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(m.initial))
}

func (m Model) fetch(ticket application.FetchTicket) tea.Cmd {
	ctx := m.ctx
	refresh := m.coordinator.Refresh()
	return func() tea.Msg {
		_, applied := refresh.Run(ctx, ticket)
		return fetchDoneMsg{applied: applied}
	}
}

func (m Model) authenticate(username, password string) tea.Cmd {
	ctx := m.ctx
	coordinator := m.coordinator
	return func() tea.Msg {
		session, err := coordinator.Authenticate(ctx, username, password)
		return loginDoneMsg{session: session, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchDoneMsg:
		m.clampCursor()
		return m, nil
	case loginDoneMsg:
		ticket, ok := m.coordinator.FinishLogin(msg.session, msg.err)
		if !ok {
			m.syncLoginFocus()
			return m, nil
		}
		m.username.SetValue("")
		m.password.SetValue("")
		m.syncLoginFocus()
		m.cursor = 0
		return m, m.fetch(ticket)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch {
	case m.coordinator.Screen() == application.ScreenLogin:
		return m.handleLoginKey(msg)
	case m.searchOn:
		return m.handleSearchKey(msg)
	case m.coordinator.State().Selected != nil:
		return m.handleDetailKey(msg)
	}

	state := m.coordinator.State()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.Home):
		m.selectTab(application.TabHome)
	case key.Matches(msg, m.keys.Agenda):
		m.selectTab(application.TabAgenda)
	case key.Matches(msg, m.keys.Profile):
		m.selectTab(application.TabProfile)
	case key.Matches(msg, m.keys.Retry):
		return m, m.fetch(m.coordinator.Retry())
	case key.Matches(msg, m.keys.Install) && state.InstallBanner:
		m.notice = ""
		if err := m.coordinator.Install(m.ctx); err != nil {
			m.notice = err.Error()
		}
		return m, nil
	}

	switch m.coordinator.Screen() {
	case application.ScreenHome:
		return m.handleHomeKey(msg)
	case application.ScreenProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visible()
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchOn = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if m.cursor >= 0 && m.cursor < len(items) {
			m.coordinator.Select(items[m.cursor])
		}
	case key.Matches(msg, m.keys.Back):
		m.search.SetValue("")
		m.clampCursor()
	}

	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.DataSaver):
		m.coordinator.ToggleDataSaver()
	case key.Matches(msg, m.keys.Logout):
		ticket, err := m.coordinator.Logout(m.ctx)
		m.notice = ""
		if err != nil {
			m.notice = err.Error()
		}
		m.cursor = 0
		m.search.SetValue("")
		m.syncLoginFocus()
		return m, m.fetch(ticket)
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.coordinator.CloseDetail()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Open):
		m.searchOn = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.selectTab(application.TabHome)
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.toggleLoginFocus()
		return m, nil
	case key.Matches(msg, m.keys.SubmitForm):
		m.coordinator.SetLoginField(m.username.Value(), m.password.Value())
		username, password, err := m.coordinator.BeginLogin()
		if err != nil {
			return m, nil
		}
		return m, m.authenticate(username, password)
	}

	var cmd tea.Cmd
	if m.password.Focused() {
		m.password, cmd = m.password.Update(msg)
	} else {
		m.username, cmd = m.username.Update(msg)
	}
	return m, cmd
}

func (m *Model) switchTab(step int) {
	current := m.coordinator.State().Tab
	for i, tab := range application.Tabs {
		if tab == current {
			next := (i + step + len(application.Tabs)) % len(application.Tabs)
			m.selectTab(application.Tabs[next])
			return
		}
	}
	m.selectTab(application.TabHome)
}

func (m *Model) selectTab(tab application.Tab) {
	m.coordinator.SelectTab(tab)
	m.syncLoginFocus()
}

func (m *Model) syncLoginFocus() {
	if m.coordinator.Screen() != application.ScreenLogin {
		m.username.Blur()
		m.password.Blur()
		return
	}
	if !m.password.Focused() {
		m.username.Focus()
	}
}

func (m *Model) toggleLoginFocus() {
	if m.username.Focused() {
		m.username.Blur()
		m.password.Focus()
		return
	}
	m.password.Blur()
	m.username.Focus()
}

func (m Model) visible() []domain.Correspondence {
	return m.coordinator.Filter(m.search.Value())
}

func (m *Model) clampCursor() {
	items := m.visible()
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the interactive program on the terminal and blocks until the user quits.
func Run(ctx context.Context, coordinator *application.Coordinator, initial application.FetchTicket, resolve func(string) (string, bool)) error {
	p := tea.NewProgram(
		New(ctx, coordinator, initial, resolve),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
