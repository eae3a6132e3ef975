package systems

import "testing"

func TestPointerControllerStartsInactive(t *testing.T) {
	c := NewPointerController()
	s := c.State()
	if s.Active || s.OverZone {
		t.Errorf("fresh controller state = %+v, want inactive", s)
	}
}

func TestPointerMoveAndLeave(t *testing.T) {
	c := NewPointerController()

	c.Move(100, 50)
	s := c.State()
	if !s.Active || s.X != 100 || s.Y != 50 {
		t.Errorf("after Move state = %+v", s)
	}

	c.Leave()
	s = c.State()
	if s.Active {
		t.Error("pointer still active after Leave")
	}
	if s.X != 100 || s.Y != 50 {
		t.Errorf("Leave discarded last position: (%.0f, %.0f)", s.X, s.Y)
	}
}

func TestPointerZoneOverlap(t *testing.T) {
	c := NewPointerController()
	c.AddZone(Zone{X: 10, Y: 10, W: 80, H: 30})

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"inside", 50, 25, true},
		{"outside", 200, 200, false},
		{"on min corner", 10, 10, true},
		{"on max corner", 90, 40, false},
		{"just left of zone", 9.9, 25, false},
	}
	for _, tt := range tests {
		c.Move(tt.x, tt.y)
		if got := c.State().OverZone; got != tt.want {
			t.Errorf("%s: OverZone = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPointerAddZoneRefreshesActivePointer(t *testing.T) {
	c := NewPointerController()
	c.Move(50, 25)
	if c.State().OverZone {
		t.Fatal("no zones registered yet")
	}

	c.AddZone(Zone{X: 10, Y: 10, W: 80, H: 30})
	if !c.State().OverZone {
		t.Error("zone added under a stationary pointer was not detected")
	}
}

func TestPointerClearZones(t *testing.T) {
	c := NewPointerController()
	c.AddZone(Zone{X: 0, Y: 0, W: 100, H: 100})
	c.Move(50, 50)
	if !c.State().OverZone {
		t.Fatal("pointer should be over the zone")
	}

	c.ClearZones()
	if c.State().OverZone {
		t.Error("OverZone still set after ClearZones")
	}
}

func TestPointerLeaveClearsZoneFlag(t *testing.T) {
	c := NewPointerController()
	c.AddZone(Zone{X: 0, Y: 0, W: 100, H: 100})
	c.Move(50, 50)
	c.Leave()
	if c.State().OverZone {
		t.Error("OverZone survived Leave")
	}
}
