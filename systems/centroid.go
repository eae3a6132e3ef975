package systems

// CentroidState names the follow state machine states.
type CentroidState uint8

const (
	// CentroidIdle holds the centroid at the surface center until the
	// pointer first becomes active.
	CentroidIdle CentroidState = iota
	// CentroidFollowing eases the centroid toward the live pointer.
	CentroidFollowing
	// CentroidHolding freezes the target at the last pointer position
	// after the pointer leaves. No snap-back to center.
	CentroidHolding
)

func (s CentroidState) String() string {
	switch s {
	case CentroidIdle:
		return "idle"
	case CentroidFollowing:
		return "following"
	case CentroidHolding:
		return "holding"
	}
	return "unknown"
}

// Centroid is the single shared point all particle targets are offset
// from. Owned by the mover; the swarm only reads its position.
type Centroid struct {
	X, Y     float32
	VelX     float32
	VelY     float32
	TargetX  float32
	TargetY  float32
	anchorX  float32
	anchorY  float32
	state    CentroidState
	strength float32
	friction float32
}

// NewCentroid creates a centroid resting at the center of a w x h surface.
func NewCentroid(w, h, strength, friction float32) *Centroid {
	c := &Centroid{
		strength: strength,
		friction: friction,
	}
	c.anchorX, c.anchorY = w/2, h/2
	c.X, c.Y = c.anchorX, c.anchorY
	c.TargetX, c.TargetY = c.anchorX, c.anchorY
	return c
}

// State returns the current follow state.
func (c *Centroid) State() CentroidState { return c.state }

// Advance moves the state machine from the polled pointer snapshot, then
// eases the centroid toward its target. Zone hover only affects opacity
// elsewhere; it never interrupts following.
func (c *Centroid) Advance(p PointerState, dt float32) {
	if p.Active {
		c.state = CentroidFollowing
		c.TargetX, c.TargetY = p.X, p.Y
	} else if c.state == CentroidFollowing {
		// Target stays frozen where the pointer last was.
		c.state = CentroidHolding
	}

	c.X, c.Y, c.VelX, c.VelY = SpringStep(
		c.X, c.Y, c.VelX, c.VelY,
		c.TargetX, c.TargetY,
		c.strength, c.friction, dt,
	)
}

// SetParams retunes the follow spring without disturbing position, state
// or target.
func (c *Centroid) SetParams(strength, friction float32) {
	c.strength = strength
	c.friction = friction
}

// Resize recomputes the idle anchor. A centroid that is Following or
// Holding keeps its state and target; only an Idle centroid recenters.
func (c *Centroid) Resize(w, h float32) {
	c.anchorX, c.anchorY = w/2, h/2
	if c.state == CentroidIdle {
		c.X, c.Y = c.anchorX, c.anchorY
		c.TargetX, c.TargetY = c.anchorX, c.anchorY
		c.VelX, c.VelY = 0, 0
	}
}
