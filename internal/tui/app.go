// Package tui is the app shell: it owns the bubbletea program, keeps
// the visible screen group consistent with the auth/onboarding stage
// and renders the individual screens.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arlo/stride/internal/auth"
	"github.com/arlo/stride/internal/config"
	"github.com/arlo/stride/internal/database/repository"
	"github.com/arlo/stride/internal/service"
	"github.com/arlo/stride/internal/toast"
	"github.com/arlo/stride/internal/tui/gate"
)

// providerTimeout bounds how long the shell waits for the auth
// provider before proceeding with whatever state it has. Fixed policy,
// not configuration.
const providerTimeout = 12 * time.Second

// AuthProvider is the slice of the auth provider the shell consumes.
type AuthProvider interface {
	Start(ctx context.Context)
	Snapshot() auth.State
	Subscribe() (int, <-chan auth.State)
	Unsubscribe(id int)
	Login(ctx context.Context, email, password string) error
	DemoLogin(ctx context.Context) error
	Logout(ctx context.Context) error
	CompleteOnboarding(ctx context.Context, p repository.Profile) error
}

// Services groups what the screens need.
type Services struct {
	Plan  *service.PlanService
	Coach *service.CoachService
}

// App ties together screens behind the navigation gate.
type App struct {
	ctx      context.Context
	cfg      config.Config
	provider AuthProvider
	toasts   *toast.Bus
	services Services

	width  int
	height int

	authState   auth.State
	forceReady  bool
	watchdogGen int
	segment     gate.Segment
	boundary    Boundary

	authSubID  int
	authCh     <-chan auth.State
	toastSubID int
	toastCh    <-chan toast.Event
	visible    *toast.Toast

	login      loginState
	onboarding onboardingState
	tabs       tabsState
	plan       planState

	quitting bool
}

func New(ctx context.Context, cfg config.Config, provider AuthProvider, toasts *toast.Bus, services Services) *App {
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		provider: provider,
		toasts:   toasts,
		services: services,
		width:    100,
		height:   32,
		segment:  gate.SegmentAuth,
	}
	a.authState = provider.Snapshot()
	a.authSubID, a.authCh = provider.Subscribe()
	a.toastSubID, a.toastCh = toasts.Subscribe()
	return a
}

func (a *App) Init() tea.Cmd {
	a.provider.Start(a.ctx)
	cmds := []tea.Cmd{a.waitAuth(), a.waitToast()}
	if a.authState.Loading {
		cmds = append(cmds, a.armWatchdog())
	}
	return tea.Batch(cmds...)
}

// ready reports whether the gate may run. The watchdog forces
// readiness so a hung provider cannot strand the user on the loading
// screen.
func (a *App) ready() bool {
	return !a.authState.Loading || a.forceReady
}

func (a *App) onboarded() bool {
	return a.authState.Profile != nil && a.authState.Profile.OnboardingComplete
}

func (a *App) userID() string {
	if a.authState.User == nil {
		return ""
	}
	return a.authState.User.ID
}

// armWatchdog schedules the readiness timer. Bumping the generation
// first means any previously scheduled tick becomes stale.
func (a *App) armWatchdog() tea.Cmd {
	a.watchdogGen++
	gen := a.watchdogGen
	return tea.Tick(providerTimeout, func(time.Time) tea.Msg {
		return watchdogMsg{gen: gen}
	})
}

// cancelWatchdog invalidates any scheduled tick.
func (a *App) cancelWatchdog() {
	a.watchdogGen++
}

// applyGate recomputes the desired segment and redirects if the
// current one disagrees. It runs on every auth state or segment
// change; rerunning is cheap and idempotent.
func (a *App) applyGate() tea.Cmd {
	if !a.ready() {
		return nil
	}
	d := gate.Decide(a.authState.Authenticated, a.onboarded(), a.segment)
	if d.Action == gate.ActionRedirect {
		return a.navigate(d.Target)
	}
	return nil
}

// navigate replaces the active segment. Navigating to the segment
// that is already active is a no-op.
func (a *App) navigate(target gate.Segment) tea.Cmd {
	if target == a.segment {
		return nil
	}
	a.segment = target
	switch target {
	case gate.SegmentAuth:
		a.login = loginState{}
		return nil
	case gate.SegmentOnboarding:
		a.onboarding = newOnboardingState(a.authState.Profile)
		return nil
	case gate.SegmentTabs:
		a.tabs = tabsState{}
		return tea.Batch(a.loadToday(), a.loadChat())
	case gate.SegmentPlan:
		a.plan = planState{}
		return a.loadPlan()
	}
	return nil
}

func (a *App) waitAuth() tea.Cmd {
	ch := a.authCh
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return authStateMsg(s)
	}
}

func (a *App) waitToast() tea.Cmd {
	ch := a.toastCh
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return toastEventMsg(e)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case authStateMsg:
		return a, a.handleAuthState(auth.State(msg))

	case watchdogMsg:
		if msg.gen != a.watchdogGen {
			// loading resolved before the timer fired
			return a, nil
		}
		if a.authState.Loading {
			a.forceReady = true
			return a, a.applyGate()
		}
		return a, nil

	case toastEventMsg:
		if msg.Visible {
			t := msg.Toast
			a.visible = &t
		} else {
			a.visible = nil
		}
		return a, a.waitToast()

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case loginResultMsg:
		// success arrives via the provider subscription; a failure
		// was already surfaced as a toast
		a.login.busy = false
		return a, nil

	case onboardResultMsg:
		a.onboarding.busy = false
		return a, nil

	case logoutMsg:
		return a, nil

	case todayMsg:
		if msg.err != nil {
			a.toasts.Error("Couldn't load today's workout")
			return a, nil
		}
		a.tabs.today = msg.view
		a.tabs.stats = msg.stats
		a.tabs.loaded = true
		return a, nil

	case chatHistoryMsg:
		if msg.err != nil {
			a.toasts.Error("Couldn't load your conversation")
			return a, nil
		}
		a.tabs.chatHistory = msg.msgs
		return a, nil

	case coachReplyMsg:
		a.tabs.coachBusy = false
		if msg.err != nil {
			a.toasts.Error("Message failed, try again")
			return a, nil
		}
		a.tabs.chatHistory = append(a.tabs.chatHistory, msg.msgs...)
		return a, nil

	case workoutDoneMsg:
		if msg.err != nil {
			a.toasts.Error("Couldn't save your workout")
			return a, nil
		}
		a.toasts.Success("Workout logged. Good session!")
		return a, a.loadToday()

	case planLoadedMsg:
		if msg.err != nil {
			a.toasts.Error("Couldn't load your plan")
			return a, nil
		}
		a.plan.plan = msg.plan
		a.plan.workouts = msg.workouts
		a.plan.exercises = msg.exercises
		a.plan.loaded = true
		return a, nil
	}
	return a, nil
}

func (a *App) handleAuthState(s auth.State) tea.Cmd {
	wasLoading := a.authState.Loading
	a.authState = s

	cmds := []tea.Cmd{a.waitAuth()}
	if s.Loading && !wasLoading {
		a.forceReady = false
		cmds = append(cmds, a.armWatchdog())
	}
	if !s.Loading {
		a.cancelWatchdog()
	}
	if cmd := a.applyGate(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		a.provider.Unsubscribe(a.authSubID)
		a.toasts.Unsubscribe(a.toastSubID)
		return tea.Quit
	}

	if a.boundary.Failed() {
		if msg.String() == "r" {
			a.boundary.Reset()
		}
		return nil
	}

	if !a.ready() {
		return nil
	}

	return a.boundary.Update(func() tea.Cmd {
		switch a.segment {
		case gate.SegmentAuth:
			return a.handleLoginKey(msg)
		case gate.SegmentOnboarding:
			return a.handleOnboardingKey(msg)
		case gate.SegmentTabs:
			return a.handleTabsKey(msg)
		case gate.SegmentPlan:
			return a.handlePlanKey(msg)
		}
		return nil
	})
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	body := a.boundary.Render(func() string {
		if !a.ready() {
			return a.renderLoading()
		}
		switch a.segment {
		case gate.SegmentAuth:
			return a.renderLogin()
		case gate.SegmentOnboarding:
			return a.renderOnboarding()
		case gate.SegmentTabs:
			return a.renderTabs()
		case gate.SegmentPlan:
			return a.renderPlan()
		}
		return ""
	})
	if a.boundary.Failed() {
		body = a.renderFallback()
	}

	if a.visible != nil {
		body += "\n\n" + a.renderToast(*a.visible)
	}
	return body
}

func (a *App) renderLoading() string {
	title := titleStyle.Render("Stride")
	return title + "\n\n" + mutedStyle.Render("Checking your session...")
}

func (a *App) renderFallback() string {
	msg := "Something went wrong.\n\n"
	if err := a.boundary.Err(); err != nil {
		msg += mutedStyle.Render(err.Error()) + "\n\n"
	}
	msg += keyStyle.Render("[r]") + " try again  " + keyStyle.Render("[ctrl+c]") + " quit"
	return fallbackStyle.Render(msg)
}

func (a *App) renderToast(t toast.Toast) string {
	style := toastInfoStyle
	switch t.Kind {
	case toast.KindSuccess:
		style = toastSuccessStyle
	case toast.KindError:
		style = toastErrorStyle
	}
	return style.Render(t.Message)
}

// effects

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := a.provider.Login(a.ctx, email, password)
		if err != nil {
			a.toasts.Error("Invalid email or password")
		}
		return loginResultMsg{err: err}
	}
}

func (a *App) demoLoginCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.provider.DemoLogin(a.ctx)
		if err != nil {
			a.toasts.Error("Demo login failed")
		}
		return loginResultMsg{err: err}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		err := a.provider.Logout(a.ctx)
		if err != nil {
			a.toasts.Error("Logout failed")
		}
		return logoutMsg{err: err}
	}
}

func (a *App) completeOnboardingCmd(p repository.Profile) tea.Cmd {
	return func() tea.Msg {
		err := a.provider.CompleteOnboarding(a.ctx, p)
		if err == nil {
			a.toasts.Success("You're all set. Welcome to Stride!")
		}
		return onboardResultMsg{err: err}
	}
}

func (a *App) loadToday() tea.Cmd {
	userID := a.userID()
	target := 3
	if a.authState.Profile != nil && a.authState.Profile.WeeklyTarget > 0 {
		target = a.authState.Profile.WeeklyTarget
	}
	return func() tea.Msg {
		now := time.Now()
		view, err := a.services.Plan.Today(a.ctx, userID, now)
		if err != nil {
			return todayMsg{err: err}
		}
		stats, err := a.services.Plan.WeekStats(a.ctx, userID, target, now)
		if err != nil {
			return todayMsg{err: err}
		}
		return todayMsg{view: view, stats: stats}
	}
}

func (a *App) loadChat() tea.Cmd {
	userID := a.userID()
	return func() tea.Msg {
		msgs, err := a.services.Coach.History(a.ctx, userID)
		return chatHistoryMsg{msgs: msgs, err: err}
	}
}

func (a *App) sendChatCmd(text string) tea.Cmd {
	userID := a.userID()
	return func() tea.Msg {
		msgs, err := a.services.Coach.Send(a.ctx, userID, text)
		return coachReplyMsg{msgs: msgs, err: err}
	}
}

func (a *App) markDoneCmd(workoutID string) tea.Cmd {
	userID := a.userID()
	return func() tea.Msg {
		err := a.services.Plan.MarkDone(a.ctx, userID, workoutID, time.Now())
		return workoutDoneMsg{err: err}
	}
}

func (a *App) loadPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := a.services.Plan.ActivePlan(a.ctx)
		if err != nil {
			return planLoadedMsg{err: err}
		}
		if plan == nil {
			return planLoadedMsg{}
		}
		workouts, err := a.services.Plan.Plans.Workouts(a.ctx, plan.ID)
		if err != nil {
			return planLoadedMsg{err: err}
		}
		exercises, err := a.services.Plan.Library(a.ctx)
		if err != nil {
			return planLoadedMsg{err: err}
		}
		return planLoadedMsg{plan: plan, workouts: workouts, exercises: exercises}
	}
}

var _ tea.Model = (*App)(nil)
