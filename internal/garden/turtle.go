package garden

import (
	"math"
	"sync"
)

// Point is a position in plant-local space. The origin is the plant's root;
// y decreases upward, matching screen coordinates.
type Point struct {
	X, Y float64
}

// Segment is one drawn turtle step with its stroke width.
type Segment struct {
	From, To Point
	Width    float64
}

// Path is the geometry built from one expanded symbol string: draw segments
// plus the branch-tip points where leaves attach. A Path is a pure function
// of (symbol string, iteration count, turn angle) and is never mutated after
// construction; sway and anchoring are applied at draw time only.
type Path struct {
	Segments []Segment
	Tips     []Point

	// Bounding box of all segment endpoints and tips.
	MinX, MinY, MaxX, MaxY float64
}

// turtleState is the full turtle snapshot pushed on '[' and popped on ']'.
type turtleState struct {
	pos     Point
	heading float64 // degrees; 0 = +x, angles increase clockwise
	length  float64
	width   float64
}

// BuildPath walks the expanded string and produces the plant's vector path.
// The turtle starts at the origin heading up (-90 degrees) with the preset's
// base length and width. Branch state lives on an explicit slice stack, never
// the call stack, so a malformed string cannot recurse; an orphan ']' is a
// no-op and unknown symbols are ignored.
func BuildPath(expanded string, p Preset) *Path {
	path := &Path{}

	t := turtleState{
		heading: -90,
		length:  p.Length,
		width:   p.Width,
	}
	var stack []turtleState
	drewSinceBranch := false

	path.grow(t.pos)

	for i := 0; i < len(expanded); i++ {
		switch expanded[i] {
		case 'F':
			rad := t.heading * math.Pi / 180
			next := Point{
				X: t.pos.X + t.length*math.Cos(rad),
				Y: t.pos.Y + t.length*math.Sin(rad),
			}
			path.Segments = append(path.Segments, Segment{From: t.pos, To: next, Width: t.width})
			path.grow(next)
			t.pos = next
			drewSinceBranch = true
		case '+':
			t.heading += p.Angle
		case '-':
			t.heading -= p.Angle
		case '[':
			stack = append(stack, t)
			t.length *= p.LengthDecay
			t.width *= p.WidthDecay
			drewSinceBranch = false
		case ']':
			if len(stack) == 0 {
				continue // orphan pop: state unchanged, nothing drawn
			}
			if drewSinceBranch {
				path.Tips = append(path.Tips, t.pos)
				path.grow(t.pos)
			}
			t = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			drewSinceBranch = false
		}
	}

	// The final position is a tip too, if the last stretch drew anything.
	if drewSinceBranch {
		path.Tips = append(path.Tips, t.pos)
		path.grow(t.pos)
	}

	return path
}

// grow extends the bounding box to include pt.
func (p *Path) grow(pt Point) {
	if len(p.Segments) == 0 && len(p.Tips) == 0 && p.MinX == 0 && p.MaxX == 0 && p.MinY == 0 && p.MaxY == 0 {
		p.MinX, p.MaxX = pt.X, pt.X
		p.MinY, p.MaxY = pt.Y, pt.Y
		return
	}
	p.MinX = math.Min(p.MinX, pt.X)
	p.MaxX = math.Max(p.MaxX, pt.X)
	p.MinY = math.Min(p.MinY, pt.Y)
	p.MaxY = math.Max(p.MaxY, pt.Y)
}

// Width returns the bounding-box width.
func (p *Path) Width() float64 { return p.MaxX - p.MinX }

// Height returns the bounding-box height.
func (p *Path) Height() float64 { return p.MaxY - p.MinY }

// pathKey is the composite key that fully determines a path's geometry.
type pathKey struct {
	expanded   string
	iterations int
	angle      float64
}

// PathCache memoizes built paths. Geometry is regenerated only when the
// expanded string, iteration count, or turn angle changes; rendering-scale
// changes (a resize) invalidate the cache wholesale. Only the render side
// ever writes entries, but the mutex keeps Len/Invalidate safe from tests
// and the platform layer.
type PathCache struct {
	mu      sync.Mutex
	entries map[pathKey]*Path
}

// NewPathCache creates an empty cache.
func NewPathCache() *PathCache {
	return &PathCache{entries: make(map[pathKey]*Path)}
}

// Get returns the cached path for the string/preset pair, building it on a
// miss.
func (c *PathCache) Get(expanded string, p Preset) *Path {
	key := pathKey{expanded: expanded, iterations: p.Iterations, angle: p.Angle}

	c.mu.Lock()
	defer c.mu.Unlock()

	if path, ok := c.entries[key]; ok {
		return path
	}
	path := BuildPath(expanded, p)
	c.entries[key] = path
	return path
}

// Invalidate drops all cached paths. Called when the rendering scale
// changes, since geometry may need regeneration at a different resolution.
func (c *PathCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[pathKey]*Path)
}

// Len returns the number of cached paths.
func (c *PathCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
