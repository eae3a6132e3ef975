package systems

import "testing"

func stepCentroid(c *Centroid, p PointerState, n int) {
	for i := 0; i < n; i++ {
		c.Advance(p, refDt)
	}
}

func TestCentroidStartsIdleAtCenter(t *testing.T) {
	c := NewCentroid(1280, 360, 0.025, 0.88)
	if c.State() != CentroidIdle {
		t.Errorf("initial state = %v, want idle", c.State())
	}
	if c.X != 640 || c.Y != 180 {
		t.Errorf("initial position = (%.1f, %.1f), want (640, 180)", c.X, c.Y)
	}
}

func TestCentroidFollowsActivePointer(t *testing.T) {
	c := NewCentroid(200, 200, 0.025, 0.88)
	pointer := PointerState{X: 180, Y: 40, Active: true}

	stepCentroid(c, pointer, 1)
	if c.State() != CentroidFollowing {
		t.Fatalf("state = %v after pointer activity, want following", c.State())
	}

	stepCentroid(c, pointer, 2000)
	dx, dy := c.TargetX-c.X, c.TargetY-c.Y
	if !AtRest(dx, dy, c.VelX, c.VelY, 0.5) {
		t.Errorf("centroid did not converge to pointer: at (%.2f, %.2f), target (%.0f, %.0f)",
			c.X, c.Y, c.TargetX, c.TargetY)
	}
}

func TestCentroidHoldsAfterPointerLeaves(t *testing.T) {
	c := NewCentroid(200, 200, 0.025, 0.88)
	stepCentroid(c, PointerState{X: 150, Y: 150, Active: true}, 60)

	stepCentroid(c, PointerState{}, 1)
	if c.State() != CentroidHolding {
		t.Fatalf("state = %v after pointer left, want holding", c.State())
	}
	if c.TargetX != 150 || c.TargetY != 150 {
		t.Errorf("hold target = (%.1f, %.1f), want frozen (150, 150)", c.TargetX, c.TargetY)
	}

	// No snap-back: it keeps easing toward the last pointer position, not
	// the surface center.
	stepCentroid(c, PointerState{}, 2000)
	if dx, dy := 150-c.X, 150-c.Y; !AtRest(dx, dy, c.VelX, c.VelY, 0.5) {
		t.Errorf("holding centroid drifted to (%.2f, %.2f), want near (150, 150)", c.X, c.Y)
	}
}

func TestCentroidReacquiresPointerFromHold(t *testing.T) {
	c := NewCentroid(200, 200, 0.025, 0.88)
	stepCentroid(c, PointerState{X: 150, Y: 150, Active: true}, 30)
	stepCentroid(c, PointerState{}, 30)

	stepCentroid(c, PointerState{X: 20, Y: 20, Active: true}, 1)
	if c.State() != CentroidFollowing {
		t.Errorf("state = %v after pointer returned, want following", c.State())
	}
	if c.TargetX != 20 || c.TargetY != 20 {
		t.Errorf("target = (%.1f, %.1f), want (20, 20)", c.TargetX, c.TargetY)
	}
}

func TestCentroidZoneHoverDoesNotInterruptFollowing(t *testing.T) {
	c := NewCentroid(200, 200, 0.025, 0.88)
	stepCentroid(c, PointerState{X: 100, Y: 50, Active: true, OverZone: true}, 1)
	if c.State() != CentroidFollowing {
		t.Errorf("state = %v while hovering a zone, want following", c.State())
	}
}

func TestCentroidResize(t *testing.T) {
	idle := NewCentroid(200, 200, 0.025, 0.88)
	idle.Resize(400, 100)
	if idle.X != 200 || idle.Y != 50 {
		t.Errorf("idle centroid after resize at (%.1f, %.1f), want recentered (200, 50)", idle.X, idle.Y)
	}

	following := NewCentroid(200, 200, 0.025, 0.88)
	stepCentroid(following, PointerState{X: 30, Y: 30, Active: true}, 60)
	x, y := following.X, following.Y
	following.Resize(400, 100)
	if following.X != x || following.Y != y {
		t.Errorf("following centroid moved on resize: (%.2f, %.2f) -> (%.2f, %.2f)",
			x, y, following.X, following.Y)
	}
	if following.State() != CentroidFollowing {
		t.Errorf("resize changed state to %v", following.State())
	}
}

func TestCentroidStateStrings(t *testing.T) {
	tests := []struct {
		state CentroidState
		want  string
	}{
		{CentroidIdle, "idle"},
		{CentroidFollowing, "following"},
		{CentroidHolding, "holding"},
		{CentroidState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
