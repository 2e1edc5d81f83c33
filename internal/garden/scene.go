package garden

import (
	"math"
	"time"

	"github.com/quietbloom/garden/internal/core"
)

// PlantSnapshot is one entry of an updatePlants message: the identity and
// age of a plant as the persistence layer reports it. The scene derives
// everything else.
type PlantSnapshot struct {
	ID      int64
	Seed    uint32
	AgeDays float64
}

// StageForAge converts an age in days to a growth stage, clamped to
// [0, MaxStage].
func StageForAge(ageDays float64) int {
	if ageDays < 0 {
		ageDays = 0
	}
	return core.Clamp(int(math.Floor(ageDays)), 0, MaxStage)
}

// plantState is a plant plus its resolved (memoized) derivation. The preset
// and expanded string are regenerated only when the seed or stage changes,
// never per frame.
type plantState struct {
	id       int64
	seed     uint32
	stage    int
	preset   Preset
	expanded string
}

// SwayParams tunes the noise-driven wind motion.
type SwayParams struct {
	Amplitude float64 // Max horizontal offset in cells
	Speed     float64 // Noise time scale, cycles per second-ish
}

// DefaultSwayParams returns gentle defaults.
func DefaultSwayParams() SwayParams {
	return SwayParams{Amplitude: 2.0, Speed: 0.35}
}

// Scene owns the active plant list and draws every visible plant into a
// screen buffer each frame. It is single-writer: exactly one render context
// calls SetPlants, Resize, and Render, in message order.
type Scene struct {
	columns int
	sway    SwayParams

	plants []plantState
	cache  *PathCache
	noise  *SimplexNoise
	epoch  time.Time
}

// NewScene creates a scene laying plants out across the given number of
// columns. The noise seed only shifts the wind pattern, not plant shapes.
func NewScene(columns int, sway SwayParams, noiseSeed int64) *Scene {
	if columns < 1 {
		columns = 1
	}
	return &Scene{
		columns: columns,
		sway:    sway,
		cache:   NewPathCache(),
		noise:   NewSimplexNoise(noiseSeed),
		epoch:   time.Now(),
	}
}

// SetPlants replaces the active plant list with a full snapshot. There is no
// incremental diffing: the message is the new truth. Derived state (preset,
// expanded string) is carried over for plants whose seed and stage are
// unchanged and regenerated otherwise.
func (s *Scene) SetPlants(list []PlantSnapshot) {
	prev := make(map[int64]plantState, len(s.plants))
	for _, p := range s.plants {
		prev[p.id] = p
	}

	next := make([]plantState, 0, len(list))
	for _, snap := range list {
		stage := StageForAge(snap.AgeDays)
		if old, ok := prev[snap.ID]; ok && old.seed == snap.Seed && old.stage == stage {
			next = append(next, old)
			continue
		}
		next = append(next, s.resolve(snap.ID, snap.Seed, stage))
	}
	s.plants = next
}

// resolve derives a plant's preset and expanded string from scratch.
func (s *Scene) resolve(id int64, seed uint32, stage int) plantState {
	preset := GeneratePreset(seed, stage)
	expanded := Rewrite(preset, NewRand(seed))
	return plantState{
		id:       id,
		seed:     seed,
		stage:    stage,
		preset:   preset,
		expanded: expanded,
	}
}

// PlantCount returns the number of active plants.
func (s *Scene) PlantCount() int {
	return len(s.plants)
}

// CacheLen exposes the path cache size for tests.
func (s *Scene) CacheLen() int {
	return s.cache.Len()
}

// Resize invalidates cached geometry. Must be applied before the next frame
// after the drawing surface changes size.
func (s *Scene) Resize() {
	s.cache.Invalidate()
}

// Sky and soil colors for the static background.
var (
	skyTop     = core.RGB(0x10, 0x18, 0x2e)
	skyBottom  = core.RGB(0x24, 0x38, 0x4a)
	soilColor  = core.RGB(0x3d, 0x2b, 0x1f)
	soilDetail = core.RGB(0x5a, 0x41, 0x2e)
)

// Render draws one frame: gradient background, soil, then every plant in its
// column with the current sway offset. The cached paths are read-only here;
// sway is applied per drawn point and never baked into the geometry.
func (s *Scene) Render(dst *core.Screen, now time.Time) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 1 || h < 3 {
		return
	}

	// Two-stop vertical gradient background.
	for y := 0; y < h; y++ {
		t := float64(y) / float64(core.Max(h-1, 1))
		dst.FillRow(y, core.BlendColor(skyTop, skyBottom, t))
	}

	// Soil strip along the bottom row.
	soil := core.NewRect(0, h-1, w, 1)
	dst.DrawRect(soil, core.Cell{Rune: '▒', Fg: soilDetail, Bg: soilColor})

	tNow := now.Sub(s.epoch).Seconds()
	for _, p := range s.plants {
		s.renderPlant(dst, p, tNow)
	}
}

// renderPlant rasterizes one plant into its column slot.
func (s *Scene) renderPlant(dst *core.Screen, p plantState, tNow float64) {
	w, h := dst.Width(), dst.Height()

	colWidth := w / s.columns
	if colWidth < 1 {
		colWidth = 1
	}
	col := int(p.id % int64(s.columns))
	anchorX := col*colWidth + colWidth/2
	anchorY := h - 2 // just above the soil

	path := s.cache.Get(p.expanded, p.preset)

	// Sway: continuous noise sampled at a seed-derived coordinate and the
	// current time. Weighted by height so the root stays planted.
	sway := s.noise.Noise2D(float64(p.seed%1024)*0.131, tNow*s.sway.Speed) * s.sway.Amplitude

	if len(path.Segments) == 0 {
		// Stage 0 of a non-drawing axiom: a sprout.
		dst.SetCell(anchorX, anchorY, core.Cell{Rune: ',', Fg: p.preset.LeafColor.RGB()})
		return
	}

	// Fit the bounding box into the column, preserving proportions. The
	// horizontal stretch compensates for terminal cells being roughly twice
	// as tall as they are wide.
	const aspect = 2.0
	availW := float64(core.Max(colWidth-2, 1))
	availH := float64(core.Max(h-3, 1))
	scale := math.Inf(1)
	if path.Width() > 0 {
		scale = availW / (path.Width() * aspect)
	}
	if path.Height() > 0 {
		scale = math.Min(scale, availH/path.Height())
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	stemColor := p.preset.StemColor.RGB()
	leafColor := p.preset.LeafColor.RGB()
	rootY := path.MaxY

	project := func(pt Point) (int, int) {
		// Anchor the path's lowest point at the soil line, then add the
		// height-weighted sway offset.
		hf := (rootY - pt.Y) * scale / availH
		x := float64(anchorX) + pt.X*scale*aspect + sway*core.ClampF(hf, 0, 1)
		y := float64(anchorY) - (rootY-pt.Y)*scale
		return int(math.Round(x)), int(math.Round(y))
	}

	for _, seg := range path.Segments {
		x1, y1 := project(seg.From)
		x2, y2 := project(seg.To)
		drawSegment(dst, x1, y1, x2, y2, seg.Width, p.preset.Width, stemColor)
	}

	leaf := leafRune(p.preset.LeafSize)
	for _, tip := range path.Tips {
		x, y := project(tip)
		dst.SetCell(x, y, core.Cell{Rune: leaf, Fg: leafColor})
	}
}

// leafRune picks a leaf glyph by preset leaf size.
func leafRune(size float64) rune {
	switch {
	case size >= 6:
		return '❀'
	case size >= 3.5:
		return '*'
	default:
		return '·'
	}
}

// drawSegment rasterizes one line with Bresenham stepping, picking a glyph
// from the line direction and stroke weight.
func drawSegment(dst *core.Screen, x1, y1, x2, y2 int, width, baseWidth float64, fg core.Color) {
	r := segmentRune(x2-x1, y2-y1, width, baseWidth)

	dx := core.Abs(x2 - x1)
	dy := -core.Abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		dst.SetCell(x, y, core.Cell{Rune: r, Fg: fg})
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// segmentRune picks the stroke glyph for a line direction.
func segmentRune(dx, dy int, width, baseWidth float64) rune {
	thick := baseWidth > 0 && width >= baseWidth*0.85

	adx, ady := core.Abs(dx), core.Abs(dy)
	switch {
	case adx == 0 || ady >= adx*3:
		if thick {
			return '║'
		}
		return '|'
	case ady == 0 || adx >= ady*3:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}
