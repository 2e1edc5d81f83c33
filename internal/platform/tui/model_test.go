package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quietbloom/garden/internal/config"
	"github.com/quietbloom/garden/internal/core"
	"github.com/quietbloom/garden/internal/focus"
)

func testModel() Model {
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30}
	return NewModel(nil, cfg, config.DefaultGardenConfig())
}

func tick(m tea.Model, at time.Time) (tea.Model, tea.Cmd) {
	return m.Update(TickMsg(at))
}

func TestVisibilityGating(t *testing.T) {
	var m tea.Model = testModel()
	at := time.Unix(0, 0)
	var cmd tea.Cmd

	// A visible tick renders a frame and schedules the next.
	m, cmd = tick(m, at)
	if m.(Model).Frames() != 1 {
		t.Fatalf("Frames = %d after one visible tick, want 1", m.(Model).Frames())
	}
	if cmd == nil {
		t.Fatal("visible tick should schedule the next frame")
	}

	// Hide the surface: any number of straggler ticks draw nothing and the
	// loop is not rescheduled.
	m, _ = m.Update(SetVisibleMsg(false))
	for i := 0; i < 5; i++ {
		m, cmd = tick(m, at.Add(time.Duration(i)*time.Second))
		if cmd != nil {
			t.Fatal("hidden tick must not reschedule")
		}
	}
	if m.(Model).Frames() != 1 {
		t.Errorf("Frames = %d while hidden, want 1 (no additional draws)", m.(Model).Frames())
	}

	// Showing again restarts the scheduler; the next tick draws.
	m, cmd = m.Update(SetVisibleMsg(true))
	if cmd == nil {
		t.Fatal("becoming visible should restart the tick loop")
	}
	m, _ = tick(m, at.Add(time.Minute))
	if m.(Model).Frames() != 2 {
		t.Errorf("Frames = %d after resume, want 2", m.(Model).Frames())
	}
}

func TestVisibleWhileTickingDoesNotDoubleSchedule(t *testing.T) {
	var m tea.Model = testModel()

	// The loop is already running; a redundant visibility message must not
	// start a second stream of ticks.
	_, cmd := m.Update(SetVisibleMsg(true))
	if cmd != nil {
		t.Error("redundant SetVisible(true) scheduled a duplicate tick")
	}
}

func TestTerminalFocusMessages(t *testing.T) {
	var m tea.Model = testModel()

	m, _ = m.Update(tea.BlurMsg{})
	m, cmd := tick(m, time.Unix(0, 0))
	if cmd != nil {
		t.Error("tick after blur should suspend the loop")
	}

	_, cmd = m.Update(tea.FocusMsg{})
	if cmd == nil {
		t.Error("terminal focus should resume the loop")
	}
}

func TestUnknownMessagesIgnored(t *testing.T) {
	var m tea.Model = testModel()

	type strangeMsg struct{}
	next, cmd := m.Update(strangeMsg{})
	if cmd != nil {
		t.Error("unknown message should be ignored")
	}
	if next.(Model).Frames() != 0 {
		t.Error("unknown message should not draw")
	}
}

func TestPlantsMsgReplacesBed(t *testing.T) {
	m := testModel()

	next, _ := m.Update(PlantsMsg{
		{ID: 1, Seed: 11, AgeDays: 2},
		{ID: 2, Seed: 22, AgeDays: 0},
	})
	m = next.(Model)
	if got := m.scene.PlantCount(); got != 2 {
		t.Fatalf("PlantCount = %d, want 2", got)
	}

	next, _ = m.Update(PlantsMsg{{ID: 9, Seed: 99, AgeDays: 1}})
	m = next.(Model)
	if got := m.scene.PlantCount(); got != 1 {
		t.Errorf("PlantCount after replacement = %d, want 1 (snapshots replace, not merge)", got)
	}
}

func TestResizeInvalidatesGeometry(t *testing.T) {
	m := testModel()

	next, _ := m.Update(PlantsMsg{{ID: 1, Seed: 12345, AgeDays: 3}})
	m = next.(Model)
	m.scene.Render(core.NewScreen(60, 20), time.Unix(0, 0))
	if m.scene.CacheLen() == 0 {
		t.Fatal("expected cached geometry after a render")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.scene.CacheLen() != 0 {
		t.Error("resize must invalidate the path cache before the next frame")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d after resize, want 100x40",
			m.screen.Width(), m.screen.Height())
	}
}

func TestScheduleSignalDrivesStatus(t *testing.T) {
	active := testModel().WithSignal(focus.NewSchedule(time.Now().Add(-time.Minute), time.Hour))
	if !strings.Contains(active.View(), "focus: on - garden growing") {
		t.Error("running session should report focus on")
	}

	ended := testModel().WithSignal(focus.NewSchedule(time.Now().Add(-2*time.Hour), time.Hour))
	if !strings.Contains(ended.View(), "focus: off - garden resting") {
		t.Error("expired session should report focus off")
	}
}

func TestFocusKeyCannotToggleSchedule(t *testing.T) {
	m := testModel().WithSignal(focus.NewSchedule(time.Now().Add(time.Hour), time.Minute))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m = next.(Model)
	if m.signal.Focused() {
		t.Error("a timed session must not be toggleable from the keyboard")
	}
}
