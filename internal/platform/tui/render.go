package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/quietbloom/garden/internal/core"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// styleKey identifies one foreground/background pairing.
type styleKey struct {
	fg, bg core.Color
}

// styleCache avoids rebuilding lipgloss styles for colors that repeat every
// frame (the gradient rows and each plant's stem/leaf colors). The SSH
// server renders one program per session, so access is synchronized.
var (
	styleMu    sync.Mutex
	styleCache = map[styleKey]lipgloss.Style{}
)

func styleFor(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}

	styleMu.Lock()
	if s, ok := styleCache[k]; ok {
		styleMu.Unlock()
		return s
	}
	styleMu.Unlock()

	s := lipgloss.NewStyle()
	if fg.IsSet() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.IsSet() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}

	styleMu.Lock()
	styleCache[k] = s
	styleMu.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startFg, startBg := cell.Fg, cell.Bg

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Fg != startFg || cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startFg, startBg).Render(run.String()))
		}
	}
	return sb.String()
}
