package systems

// PointerState is the per-frame snapshot of pointer input. The frame loop
// polls it once at integration time; raw event bursts between frames never
// reach the simulation directly.
type PointerState struct {
	X, Y     float32
	Active   bool
	OverZone bool
}

// Zone is an axis-aligned interactive region (a button or link overlay).
// While the pointer is inside any zone the swarm fades out so it never
// obstructs input.
type Zone struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the zone.
func (z Zone) Contains(x, y float32) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// PointerController translates raw pointer events into a polled
// PointerState and tracks interactive-zone overlap.
type PointerController struct {
	zones []Zone
	state PointerState
}

// NewPointerController creates a controller with no pointer and no zones.
func NewPointerController() *PointerController {
	return &PointerController{}
}

// Move records a pointer position and refreshes the zone flag.
func (c *PointerController) Move(x, y float32) {
	c.state.X, c.state.Y = x, y
	c.state.Active = true
	c.state.OverZone = c.hitZone(x, y)
}

// Leave marks the pointer inactive (left the surface / touch ended).
// Position is kept so the centroid can hold it.
func (c *PointerController) Leave() {
	c.state.Active = false
	c.state.OverZone = false
}

// AddZone registers an interactive zone.
func (c *PointerController) AddZone(z Zone) {
	c.zones = append(c.zones, z)
	if c.state.Active {
		c.state.OverZone = c.hitZone(c.state.X, c.state.Y)
	}
}

// ClearZones removes all registered zones.
func (c *PointerController) ClearZones() {
	c.zones = c.zones[:0]
	c.state.OverZone = false
}

// State returns the current snapshot for the frame step to consume.
func (c *PointerController) State() PointerState {
	return c.state
}

func (c *PointerController) hitZone(x, y float32) bool {
	for _, z := range c.zones {
		if z.Contains(x, y) {
			return true
		}
	}
	return false
}
