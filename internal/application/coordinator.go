package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/bnema/dcms-cli/internal/ports"
)

type Tab string

const (
	TabHome    Tab = "home"
	TabAgenda  Tab = "agenda"
	TabProfile Tab = "profile"
)

var Tabs = []Tab{TabHome, TabAgenda, TabProfile}

func ParseTab(raw string) (Tab, error) {
	tab := Tab(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Tabs {
		if tab == known {
			return tab, nil
		}
	}

	return "", fmt.Errorf("unknown tab %q", raw)
}

// Screen is what the current state renders as.
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenRestricted Screen = "restricted"
	ScreenHome       Screen = "home"
	ScreenAgenda     Screen = "agenda"
	ScreenProfile    Screen = "profile"
)

type LoginForm struct {
	Username   string
	Password   string
	Error      string
	Submitting bool
}

type ViewState struct {
	Tab           Tab
	Selected      *domain.Correspondence
	InstallBanner bool
	DataSaver     bool
	Login         LoginForm
}

var errLoginInProgress = errors.New("login already in progress")

// Coordinator holds the view state and drives session and refresh transitions. View state
// is not synchronised: callers mutate it from a single event loop.
type Coordinator struct {
	sessions *SessionService
	refresh  *RefreshController
	install  ports.InstallAffordance
	state    ViewState
}

func NewCoordinator(sessions *SessionService, refresh *RefreshController, install ports.InstallAffordance) *Coordinator {
	if install == nil {
		install = ports.NoInstallAffordance{}
	}

	return &Coordinator{
		sessions: sessions,
		refresh:  refresh,
		install:  install,
		state: ViewState{
			Tab:           TabHome,
			InstallBanner: install.Available(),
		},
	}
}

// Start restores the persisted session and issues the first fetch for whichever identity
// results, so a fetch attempt always precedes the first render.
func (c *Coordinator) Start(ctx context.Context) FetchTicket {
	session := c.sessions.Restore(ctx)
	return c.refresh.Begin(session.Identity())
}

func (c *Coordinator) State() ViewState {
	state := c.state
	if c.state.Selected != nil {
		selected := *c.state.Selected
		state.Selected = &selected
	}
	return state
}

func (c *Coordinator) Session() *domain.Session {
	return c.sessions.Current()
}

func (c *Coordinator) Snapshot() Snapshot {
	return c.refresh.Snapshot()
}

func (c *Coordinator) Refresh() *RefreshController {
	return c.refresh
}

// Screen routes: without a session the profile tab is the login form and every other tab
// is restricted.
func (c *Coordinator) Screen() Screen {
	if c.sessions.Current() == nil {
		if c.state.Tab == TabProfile {
			return ScreenLogin
		}
		return ScreenRestricted
	}

	switch c.state.Tab {
	case TabAgenda:
		return ScreenAgenda
	case TabProfile:
		return ScreenProfile
	default:
		return ScreenHome
	}
}

// RequireSession reports domain.ErrSessionRequired when tab would render as restricted.
func (c *Coordinator) RequireSession(tab Tab) error {
	c.SelectTab(tab)
	if c.Screen() == ScreenRestricted {
		return domain.ErrSessionRequired
	}
	return nil
}

func (c *Coordinator) SelectTab(tab Tab) {
	c.state.Tab = tab
}

func (c *Coordinator) Select(item domain.Correspondence) {
	c.state.Selected = &item
}

func (c *Coordinator) CloseDetail() {
	c.state.Selected = nil
}

func (c *Coordinator) ToggleDataSaver() {
	c.state.DataSaver = !c.state.DataSaver
}

func (c *Coordinator) SetLoginField(username, password string) {
	c.state.Login.Username = username
	c.state.Login.Password = password
}

// BeginLogin clears the previous error and returns the credentials to submit.
func (c *Coordinator) BeginLogin() (string, string, error) {
	if c.state.Login.Submitting {
		return "", "", errLoginInProgress
	}

	c.state.Login.Error = ""
	c.state.Login.Submitting = true
	return c.state.Login.Username, c.state.Login.Password, nil
}

// FinishLogin applies a login outcome. On success it moves to the home tab, clears the form
// and begins the fetch for the new identity.
func (c *Coordinator) FinishLogin(session domain.Session, err error) (FetchTicket, bool) {
	c.state.Login.Submitting = false
	if err != nil {
		c.state.Login.Error = domain.UserMessage(err)
		return FetchTicket{}, false
	}

	c.state.Tab = TabHome
	c.state.Login = LoginForm{}
	return c.refresh.Begin(session.Identity()), true
}

// Login submits the form synchronously.
func (c *Coordinator) Login(ctx context.Context) (FetchTicket, error) {
	username, password, err := c.BeginLogin()
	if err != nil {
		return FetchTicket{}, err
	}

	session, err := c.Authenticate(ctx, username, password)
	ticket, _ := c.FinishLogin(session, err)
	return ticket, err
}

// Authenticate performs the login call without touching view state, so an event loop can
// run it off the loop and hand the outcome to FinishLogin.
func (c *Coordinator) Authenticate(ctx context.Context, username, password string) (domain.Session, error) {
	return c.sessions.Login(ctx, username, password)
}

// Logout clears the session and selection, returns to the profile tab and begins the
// anonymous fetch.
func (c *Coordinator) Logout(ctx context.Context) (FetchTicket, error) {
	err := c.sessions.Logout(ctx)
	c.state.Selected = nil
	c.state.Tab = TabProfile
	return c.refresh.Begin(domain.AnonymousUserID), err
}

func (c *Coordinator) Retry() FetchTicket {
	return c.refresh.Retry()
}

func (c *Coordinator) Filter(query string) []domain.Correspondence {
	return domain.FilterCorrespondences(c.refresh.Snapshot().Correspondences, query)
}

// Install invokes the platform install affordance. The banner hides once the user accepts.
func (c *Coordinator) Install(ctx context.Context) error {
	if !c.install.Available() {
		c.state.InstallBanner = false
		return nil
	}

	accepted, err := c.install.Prompt(ctx)
	if err != nil {
		return fmt.Errorf("install prompt: %w", err)
	}
	if accepted {
		c.state.InstallBanner = false
	}

	return nil
}
