package tui

import (
	"strings"

	"github.com/bnema/dcms-cli/internal/adapters/render/listing"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var tabTitles = map[application.Tab]string{
	application.TabHome:    "Home",
	application.TabAgenda:  "Agenda",
	application.TabProfile: "Profile",
}

func (m Model) View() string {
	sections := []string{m.tabBar()}

	state := m.coordinator.State()
	if state.InstallBanner {
		sections = append(sections, m.styles.banner.Render("Install the DCMS app for quicker access (press i)."))
	}

	snapshot := m.coordinator.Snapshot()
	if snapshot.Loading() {
		sections = append(sections, m.spinner.View()+" Loading...")
	}

	sections = append(sections, m.styles.body.Render(m.body(state, snapshot)))

	if m.notice != "" {
		sections = append(sections, m.styles.notice.Render(m.notice))
	}
	sections = append(sections, m.styles.hint.Render(m.hint(state)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) tabBar() string {
	active := m.coordinator.State().Tab
	tabs := make([]string, 0, len(application.Tabs))
	for _, tab := range application.Tabs {
		style := m.styles.tab
		if tab == active {
			style = m.styles.activeTab
		}
		tabs = append(tabs, style.Render(tabTitles[tab]))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) body(state application.ViewState, snapshot application.Snapshot) string {
	session := m.coordinator.Session()

	switch m.coordinator.Screen() {
	case application.ScreenLogin:
		return m.loginForm(state.Login)
	case application.ScreenRestricted:
		return domain.MessageRestricted
	case application.ScreenAgenda:
		return listing.Compose(listing.View{Kind: listing.KindAgenda, Session: session, Snapshot: snapshot})
	case application.ScreenProfile:
		return listing.Compose(listing.View{Kind: listing.KindProfile, Session: session, Snapshot: snapshot, DataSaver: state.DataSaver})
	}

	if state.Selected != nil {
		return m.styles.modal.Render(listing.Compose(listing.View{
			Kind:     listing.KindDetail,
			Session:  session,
			Snapshot: snapshot,
			Selected: state.Selected,
			Resolve:  m.resolve,
		}))
	}

	list := listing.Compose(listing.View{
		Kind:     listing.KindSearch,
		Session:  session,
		Snapshot: snapshot,
		Items:    m.visible(),
		Query:    m.search.Value(),
		Cursor:   m.cursor,
	})
	if snapshot.Err != nil {
		return list
	}

	greeting := "Welcome"
	if session != nil {
		greeting = "Welcome, " + session.Name
	}

	return lipgloss.JoinVertical(lipgloss.Left, greeting, m.search.View(), "", list)
}

func (m Model) loginForm(form application.LoginForm) string {
	lines := []string{"Sign in to DCMS", "", m.username.View(), m.password.View()}
	if form.Submitting {
		lines = append(lines, "", m.spinner.View()+" Signing in...")
	}
	if form.Error != "" {
		lines = append(lines, "", m.styles.formError.Render(form.Error))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) hint(state application.ViewState) string {
	var parts []string
	switch {
	case m.coordinator.Screen() == application.ScreenLogin:
		parts = []string{"tab next field", "enter sign in", "esc back", "ctrl+c quit"}
	case m.searchOn:
		parts = []string{"type to filter", "enter/esc done"}
	case state.Selected != nil:
		parts = []string{"esc close"}
	default:
		parts = []string{"tab switch", "/ search", "enter open", "r retry"}
		if m.coordinator.Screen() == application.ScreenProfile {
			parts = append(parts, "d data saver", "o log out")
		}
		parts = append(parts, "q quit")
	}

	return strings.Join(parts, " • ")
}
