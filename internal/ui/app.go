package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storedash/internal/logtail"
	"github.com/five82/storedash/internal/prefs"
	"github.com/five82/storedash/internal/state"
)

const (
	defaultTick     = time.Second
	inventoryHeight = 8
	chromeHeight    = 4 // tabs, status line, blank, footer
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *state.Session
	Prefs     prefs.Prefs
	PrefsPath string
	LogFile   string        // source of the problems overlay
	Tick      time.Duration // snapshot redraw cadence; zero uses one second
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	session   *state.Session
	prefs     prefs.Prefs
	prefsPath string
	logFile   string
	tick      time.Duration

	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	notice   string

	showProblems bool
	problems     []logtail.Entry
	problemsErr  error

	snapshot   state.Snapshot
	inventory  table.Model
	kitIDs     []int64 // inventory row -> meal kit id
	content    viewport.Model
	spinner    spinner.Model
	refreshing int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.Prefs.Theme)
	inventory := table.New(
		table.WithColumns(inventoryColumns(0)),
		table.WithFocused(true),
		table.WithHeight(inventoryHeight),
		table.WithStyles(theme.TableStyles()),
	)
	spin := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Styles().AccentText))

	return Model{
		ctx:       ctx,
		session:   opts.Session,
		prefs:     opts.Prefs,
		prefsPath: prefsPath,
		logFile:   opts.LogFile,
		tick:      tick,
		theme:     theme,
		inventory: inventory,
		spinner:   spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.tick),
		m.spinner.Tick,
	}
	if m.session != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.session), refreshCmd(m.ctx, m.session, m.session.Active()))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.content = viewport.New(msg.Width, m.contentHeight())
		}
		m.ready = true
		m.layout()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.session != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.session))
		}
		cmds = append(cmds, tickCmd(m.tick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.syncInventory()
		m.syncContent()
		return m, nil

	case refreshDoneMsg:
		if m.refreshing > 0 {
			m.refreshing--
		}
		return m, fetchSnapshotCmd(m.session)

	case problemsMsg:
		m.problems = msg.entries
		m.problemsErr = msg.err
		m.showProblems = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showProblems {
		return m.renderProblems()
	}
	return m.renderMain()
}

func (m Model) active() state.Domain {
	if m.session == nil {
		return m.snapshot.Active
	}
	return m.session.Active()
}

func (m Model) contentHeight() int {
	h := m.height - chromeHeight
	if m.active() == state.DomainMealKits {
		h -= inventoryHeight + 3 // table header, border, title
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) layout() {
	m.content.Width = m.width
	m.content.Height = m.contentHeight()
	m.inventory.SetColumns(inventoryColumns(m.width))
	m.inventory.SetHeight(inventoryHeight)
	m.syncContent()
}

// refresh schedules a refresh of the active domain.
func (m *Model) refresh() tea.Cmd {
	if m.session == nil {
		return nil
	}
	m.refreshing++
	return refreshCmd(m.ctx, m.session, m.session.Active())
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.notice = "설정 저장 실패: " + err.Error()
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct {
	domain state.Domain
}

type problemsMsg struct {
	entries []logtail.Entry
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(session *state.Session) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(session.Snapshot())
	}
}

func refreshCmd(ctx context.Context, session *state.Session, d state.Domain) tea.Cmd {
	return func() tea.Msg {
		session.Refresh(ctx, d)
		return refreshDoneMsg{domain: d}
	}
}

func serverLowStockCmd(ctx context.Context, session *state.Session, d state.Domain) tea.Cmd {
	return func() tea.Msg {
		session.RefreshServerLowStock(ctx, d)
		return refreshDoneMsg{domain: d}
	}
}

func loadProblemsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, problemsScanLines)
		return problemsMsg{entries: logtail.Problems(lines), err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
