package game

type rotationMove struct {
	index    int
	dest     int
	from, to Pose
}

// Rotation animates the circular slot shift of alive enemies after a turn.
// It moves poses only; slots are committed when the animation completes.
type Rotation struct {
	roster   *Roster
	duration float64
	elapsed  float64
	moves    []rotationMove
	active   bool
}

// NewRotation creates an idle rotation controller over roster.
func NewRotation(roster *Roster, durationMs float64) *Rotation {
	return &Rotation{roster: roster, duration: durationMs}
}

// Animating reports whether a rotation is in progress.
func (r *Rotation) Animating() bool {
	return r.active
}

// Progress returns the raw animation progress in [0, 1].
func (r *Rotation) Progress() float64 {
	if !r.active {
		return 0
	}
	return clamp01(r.elapsed / r.duration)
}

// Start begins a rotation. It does nothing and returns false when fewer than
// two enemies are alive or a rotation is already running.
func (r *Rotation) Start() bool {
	if r.active {
		return false
	}
	dests := r.destinations()
	if len(dests) < 2 {
		return false
	}
	layout := r.roster.Layout()
	r.moves = r.moves[:0]
	for _, d := range dests {
		e, _ := r.roster.Get(d.index)
		r.moves = append(r.moves, rotationMove{
			index: d.index,
			dest:  d.slot,
			from:  e.Pose,
			to:    layout.Slot(d.slot).PoseOf(),
		})
	}
	r.elapsed = 0
	r.active = true
	return true
}

// Tick advances the animation by deltaMs and reports whether it completed on
// this call. A non-positive delta changes nothing.
func (r *Rotation) Tick(deltaMs float64) bool {
	if !r.active || deltaMs <= 0 {
		return false
	}
	r.elapsed += deltaMs
	progress := clamp01(r.elapsed / r.duration)
	if progress >= 1 {
		for _, m := range r.moves {
			r.roster.assignSlot(m.index, m.dest)
		}
		r.moves = r.moves[:0]
		r.active = false
		r.elapsed = 0
		return true
	}

	eased := smoothstep(progress)
	for _, m := range r.moves {
		r.roster.setPose(m.index, lerpPose(m.from, m.to, eased))
	}
	return false
}

// Cancel stops an animation without committing slots.
func (r *Rotation) Cancel() {
	r.active = false
	r.elapsed = 0
	r.moves = r.moves[:0]
}

type slotDest struct {
	index int
	slot  int
}

// destinations shifts every alive enemy one slot along. With exactly two
// alive enemies the pair moves to (slot+1) mod 2. Survivors on slots 0 and 2
// would both land on 1, so they are ranked by slot and swap between 0 and 1.
func (r *Rotation) destinations() []slotDest {
	var alive []int
	for i := range r.roster.AliveIndices() {
		alive = append(alive, i)
	}
	if len(alive) < 2 {
		return nil
	}

	out := make([]slotDest, 0, len(alive))
	if len(alive) == 2 {
		a, _ := r.roster.Get(alive[0])
		b, _ := r.roster.Get(alive[1])
		da, db := (a.Slot+1)%2, (b.Slot+1)%2
		if da == db {
			if a.Slot < b.Slot {
				da, db = 1, 0
			} else {
				da, db = 0, 1
			}
		}
		return append(out, slotDest{index: alive[0], slot: da}, slotDest{index: alive[1], slot: db})
	}

	n := r.roster.Layout().Len()
	for _, i := range alive {
		e, _ := r.roster.Get(i)
		out = append(out, slotDest{index: i, slot: (e.Slot + 1) % n})
	}
	return out
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpPose blends two poses. Rank is discrete and flips at the halfway point.
func lerpPose(from, to Pose, t float64) Pose {
	rank := from.Rank
	if t >= 0.5 {
		rank = to.Rank
	}
	return Pose{
		X:      lerp(from.X, to.X, t),
		Y:      lerp(from.Y, to.Y, t),
		Width:  lerp(from.Width, to.Width, t),
		Height: lerp(from.Height, to.Height, t),
		Rank:   rank,
	}
}
