package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietbloom/garden/internal/config"
	"github.com/quietbloom/garden/internal/core"
	"github.com/quietbloom/garden/internal/focus"
	"github.com/quietbloom/garden/internal/garden"
	"github.com/quietbloom/garden/internal/storage"
)

// SetVisibleMsg tells the render loop whether the drawing surface is
// visible. False suspends frame scheduling; true resumes it.
type SetVisibleMsg bool

// PlantsMsg replaces the active plant list with a full snapshot. The model
// never diffs: the latest snapshot wins.
type PlantsMsg []garden.PlantSnapshot

// growthTouchInterval limits how often focused growth is persisted.
const growthTouchInterval = time.Minute

// Model is the Bubble Tea model rendering the garden.
type Model struct {
	scene  *garden.Scene
	screen *core.Screen
	store  *storage.Store
	signal focus.Signal

	cfg  core.RuntimeConfig
	gcfg config.GardenConfig
	keys KeyMap
	help help.Model

	visible   bool
	ticking   bool
	frames    uint64
	lastTouch time.Time
	readOnly  bool // SSH viewers cannot sow or toggle focus
	quitting  bool

	now func() time.Time // swappable for tests
}

// NewModel creates a garden model. The store may be nil, in which case the
// bed starts empty and sowing is disabled.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, gcfg config.GardenConfig) Model {
	gcfg.Normalize()
	return Model{
		scene:   garden.NewScene(gcfg.Bed.Columns, garden.SwayParams(gcfg.Sway), time.Now().UnixNano()),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		signal:  focus.NewManual(true),
		cfg:     cfg,
		gcfg:    gcfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		visible: true,
		ticking: true,
		now:     time.Now,
	}
}

// SetReadOnly disables mutating key bindings (used for SSH sessions).
func (m Model) SetReadOnly(ro bool) Model {
	m.readOnly = ro
	return m
}

// WithSignal replaces the default manual toggle with another focus signal,
// such as a timed session schedule.
func (m Model) WithSignal(sig focus.Signal) Model {
	if sig != nil {
		m.signal = sig
	}
	return m
}

// Frames returns the number of rendered frames. Exposed for tests.
func (m Model) Frames() uint64 {
	return m.frames
}

// Init loads the persisted bed and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.refreshPlants()
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state. Unrecognized message
// types fall through and are ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		return m.setVisible(true)

	case tea.BlurMsg:
		return m.setVisible(false)

	case SetVisibleMsg:
		return m.setVisible(bool(msg))

	case PlantsMsg:
		m.scene.SetPlants(msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Sow):
		if m.readOnly || m.store == nil {
			return m, nil
		}
		seed := uint32(m.now().UnixNano())
		//nolint:errcheck // Best-effort sow, the view continues regardless
		m.store.CreatePlant(seed)
		m.refreshPlants()
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		// Only the manual signal is toggleable; a timed schedule runs its
		// course regardless of input.
		if manual, ok := m.signal.(*focus.Manual); ok && !m.readOnly {
			manual.Toggle()
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The path cache is dropped
// before the next frame since geometry is fitted to the surface size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scene.Resize()
	return m, nil
}

// setVisible applies a visibility transition. Hiding lets the in-flight
// tick lapse without rescheduling; showing restarts the loop if needed.
func (m Model) setVisible(v bool) (tea.Model, tea.Cmd) {
	m.visible = v
	if v && !m.ticking {
		m.ticking = true
		return m, tickCmd(m.cfg.TickRate)
	}
	return m, nil
}

// handleTick renders one frame and schedules the next.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	if !m.visible {
		m.ticking = false
		return m, nil
	}

	// Growth accrues only while the focus signal is up, persisted at a
	// coarse interval rather than every frame.
	if m.store != nil && m.signal.Focused() && at.Sub(m.lastTouch) >= growthTouchInterval {
		m.lastTouch = at
		m.touchGrowth(at)
	}

	m.refreshPlants()
	m.frames++
	m.ticking = true
	return m, tickCmd(m.cfg.TickRate)
}

// refreshPlants pulls the bed from storage and hands the scene a full
// replacement snapshot.
func (m *Model) refreshPlants() {
	if m.store == nil {
		return
	}
	records, err := m.store.Plants()
	if err != nil {
		return
	}
	if max := m.gcfg.Bed.MaxPlants; len(records) > max {
		records = records[len(records)-max:]
	}

	now := m.now()
	snaps := make([]garden.PlantSnapshot, 0, len(records))
	for _, r := range records {
		snaps = append(snaps, garden.PlantSnapshot{
			ID:      r.ID,
			Seed:    r.Seed,
			AgeDays: r.AgeDays(now, m.gcfg.Growth.Multiplier),
		})
	}
	m.scene.SetPlants(snaps)
}

// touchGrowth records accrued focus time for every plant.
func (m *Model) touchGrowth(at time.Time) {
	records, err := m.store.Plants()
	if err != nil {
		return
	}
	for _, r := range records {
		//nolint:errcheck // Best-effort bookkeeping
		m.store.TouchGrowth(r.ID, at)
	}
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Render(m.screen, m.now())
	frame := RenderScreen(m.screen)

	status := "focus: off - garden resting"
	if m.signal.Focused() {
		status = "focus: on - garden growing"
	}
	return frame + "\n" + statusStyle.Render(status) + "  " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session. A nil
// signal keeps the default manual toggle. If the terminal cannot be
// acquired the error is returned to the caller; there is no retry.
func Run(store *storage.Store, cfg core.RuntimeConfig, gcfg config.GardenConfig, sig focus.Signal) error {
	model := NewModel(store, cfg, gcfg).WithSignal(sig)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(), // terminal focus drives visibility
	)

	_, err := p.Run()
	return err
}
