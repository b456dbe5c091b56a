package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/hoops/internal/physics"
	"github.com/tomz197/hoops/internal/score"
)

// Layout is one scene: where the hoop stands and where the player spawns.
type Layout struct {
	Name  string
	Rim   physics.Vec3
	Base  physics.Vec3
	Spawn physics.Vec3
	End   bool // The closing scoreboard scene
}

// Levels are the court layouts, in play order.
var Levels = []Layout{
	{
		Name:  "Driveway",
		Rim:   physics.Vec3{X: 51.5, Y: 6, Z: 15},
		Base:  physics.Vec3{X: 54, Z: 15},
		Spawn: physics.Vec3{X: 10, Z: 15},
	},
	{
		Name:  "Playground",
		Rim:   physics.Vec3{X: 8.5, Y: 6, Z: 8},
		Base:  physics.Vec3{X: 6, Z: 8},
		Spawn: physics.Vec3{X: 45, Z: 22},
	},
	{
		Name:  "Rooftop",
		Rim:   physics.Vec3{X: 30, Y: 6.5, Z: 4.5},
		Base:  physics.Vec3{X: 30, Z: 2},
		Spawn: physics.Vec3{X: 30, Z: 26},
	},
	{
		Name:  "Gym",
		Rim:   physics.Vec3{X: 51.5, Y: 5.5, Z: 23},
		Base:  physics.Vec3{X: 54, Z: 25},
		Spawn: physics.Vec3{X: 12, Z: 6},
	},
}

// EndLayout is the scoreboard scene shown once the time runs out.
var EndLayout = Layout{Name: score.EndScene, End: true}

// Director switches scenes. Requests are queued and take effect when the
// loop calls Apply at the start of the next frame. An end scene request
// wins over a level request made in the same frame.
type Director struct {
	levels []Layout
	logger *log.Logger

	active  int
	current Layout

	pending    bool
	pendingIdx int
	next       Layout
}

// NewDirector creates a director whose first level is already active.
func NewDirector(levels []Layout, logger *log.Logger) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Director{
		levels:  levels,
		logger:  logger,
		current: levels[0],
	}
}

// LoadByIndex requests the level at index, wrapping past the last layout.
// The end scene follows the last level.
func (d *Director) LoadByIndex(index int) {
	if d.pending && d.next.End {
		d.logger.Debug("scene request dropped", "index", index, "pending", d.next.Name)
		return
	}
	if index < 0 {
		index = 0
	}
	index %= len(d.levels)
	d.request(index, d.levels[index])
}

// LoadByName requests a level or the end scene by name.
func (d *Director) LoadByName(name string) {
	if name == EndLayout.Name {
		d.request(len(d.levels), EndLayout)
		return
	}
	for i, l := range d.levels {
		if l.Name == name {
			d.LoadByIndex(i)
			return
		}
	}
	d.logger.Warn("unknown scene", "name", name)
}

func (d *Director) request(index int, l Layout) {
	d.pending = true
	d.pendingIdx = index
	d.next = l
	d.logger.Debug("scene requested", "name", l.Name, "index", index)
}

// ActiveIndex returns the ordinal of the active scene.
func (d *Director) ActiveIndex() int {
	return d.active
}

// Current returns the active scene.
func (d *Director) Current() Layout {
	return d.current
}

// Apply activates the pending scene, if any.
func (d *Director) Apply() (Layout, bool) {
	if !d.pending {
		return Layout{}, false
	}
	d.pending = false
	d.active = d.pendingIdx
	d.current = d.next
	d.logger.Info("scene loaded", "name", d.current.Name, "index", d.active)
	return d.current, true
}

var _ score.SceneLoader = (*Director)(nil)
