package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/revealtour/internal/clock"
	"github.com/agbru/revealtour/internal/config"
	apperrors "github.com/agbru/revealtour/internal/errors"
	"github.com/agbru/revealtour/internal/orchestration"
	"github.com/agbru/revealtour/internal/stage"
)

// ExecutionState holds the tour-driving fields of a dashboard session. The
// pointers are shared by every copy bubbletea makes of the model.
type ExecutionState struct {
	ctx      context.Context
	cancel   context.CancelFunc
	orch     *orchestration.Orchestrator
	stage    *stage.Stage
	log      *EventLog
	progress *orchestration.ProgressAggregator
	clock    clock.Clock
	done     bool
	exitCode int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// Layout constants for the tour dashboard.
const (
	headerHeight           = 1
	footerHeight           = 2
	minBodyHeight          = 6
	StagePanelWidthPercent = 58
	StatsPanelHeight       = 7
	ActivityPanelHeight    = 8
)

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

// stageWidth returns the width allocated to the stage panel.
func (l LayoutManager) stageWidth() int {
	return l.width * StagePanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column.
func (l LayoutManager) rightWidth() int {
	return l.width - l.stageWidth()
}

// statsHeight returns the height allocated to the stats panel.
func (l LayoutManager) statsHeight() int {
	return min(StatsPanelHeight, l.bodyHeight()/3)
}

// activityHeight returns the height allocated to the activity panel.
func (l LayoutManager) activityHeight() int {
	return min(ActivityPanelHeight, l.bodyHeight()/3)
}

// logsHeight returns the height left for the logs panel.
func (l LayoutManager) logsHeight() int {
	return l.bodyHeight() - l.statsHeight() - l.activityHeight()
}

// Model is the root bubbletea model for the tour dashboard. Every
// orchestrator call happens inside Update, on the program's goroutine.
type Model struct {
	header   HeaderModel
	stageV   StageModel
	stats    StatsModel
	activity ActivityModel
	logs     LogsModel
	footer   FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	config config.AppConfig
	paused bool
}

// NewModel creates a dashboard driving o, whose animators and presentation
// are st and whose hooks feed log. c supplies the quantum of every tick.
func NewModel(parentCtx context.Context, o *orchestration.Orchestrator, st *stage.Stage, log *EventLog, cfg config.AppConfig, c clock.Clock) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keys := DefaultKeyMap()
	if log == nil {
		log = NewEventLog(DefaultLogCapacity)
	}
	return Model{
		header:   NewHeaderModel(o.Tour().Name()),
		stageV:   NewStageModel(st),
		stats:    NewStatsModel(o.Tour().Nominal()),
		activity: NewActivityModel(),
		logs:     NewLogsModel(),
		footer:   NewFooterModel(keys),
		keymap:   keys,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			orch:     o,
			stage:    st,
			log:      log,
			progress: orchestration.NewProgressAggregator(o.Tour()),
			clock:    c,
			exitCode: apperrors.ExitSuccess,
		},
		config: cfg,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return beginMsg{} },
		tickCmd(m.config.Tick),
		watchContextCmd(m.ctx),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case beginMsg:
		m.orch.Begin()
		m.refresh()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			m.orch.TickClock(m.clock)
			if m.config.Loop && m.orch.Status() == orchestration.StatusCompleted && !m.orch.PendingBegin() {
				m.orch.Begin()
			}
			m.refresh()
		}
		return m, tickCmd(m.config.Tick)

	case ContextCancelledMsg:
		m.orch.Exit()
		m.refresh()
		m.done = true
		m.exitCode = apperrors.ExitCodeFor(msg.Err)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.orch.Exit()
		m.done = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Begin):
		m.orch.Begin()
		m.setPaused(false)

	case key.Matches(msg, m.keymap.Exit):
		m.orch.Exit()

	case key.Matches(msg, m.keymap.Reset):
		m.orch.Reset()
		m.setPaused(false)

	case key.Matches(msg, m.keymap.Pause):
		m.setPaused(!m.paused)

	case key.Matches(msg, m.keymap.Up):
		m.logs.ScrollUp(1)
	case key.Matches(msg, m.keymap.Down):
		m.logs.ScrollDown(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.logs.PageUp()
	case key.Matches(msg, m.keymap.PageDown):
		m.logs.PageDown()

	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// setPaused freezes or resumes the tour clock. A wall clock is restarted on
// resume so the pause is not replayed as one long quantum.
func (m *Model) setPaused(p bool) {
	if m.paused && !p {
		if r, ok := m.clock.(interface{ Restart() }); ok {
			r.Restart()
		}
	}
	m.paused = p
	m.header.SetPaused(p)
}

// refresh copies orchestrator and stage state into the sub-models.
func (m *Model) refresh() {
	snap := m.orch.Snapshot()
	progress := m.progress.Update(snap)
	active := m.stage.ActiveFades()
	panels := len(m.stage.Panels())

	m.header.SetSnapshot(snap, m.orch.ChromeActive())
	m.stats.Update(m.log.Stats(), active, panels)
	if snap.RunID != "" {
		m.activity.Sample(snap.RunID, snap.Elapsed, progress.Fraction, active, panels)
	}
	m.logs.Sync(m.log)
	m.footer.SetProgress(progress)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		m.stats.View(), m.activity.View(), m.logs.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.stageV.View(), rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.stageV.SetSize(m.stageWidth(), m.bodyHeight())
	m.stats.SetSize(m.rightWidth(), m.statsHeight())
	m.activity.SetSize(m.rightWidth(), m.activityHeight())
	m.logs.SetSize(m.rightWidth(), m.logsHeight())
}

// Run is the public entry point for the dashboard. It drives o on a wall
// clock scaled by cfg.Speed until the user quits or ctx is done, and
// returns the exit code.
func Run(ctx context.Context, o *orchestration.Orchestrator, st *stage.Stage, log *EventLog, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, o, st, log, cfg, clock.NewWall(cfg.Speed))
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a TickMsg after one quantum.
func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = config.DefaultTick
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
