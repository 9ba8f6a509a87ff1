package game

// FormationSlot is one depth position enemies can occupy.
type FormationSlot struct {
	X, Y          float64
	Width, Height float64
	DepthRank     int // higher = closer to the player
}

// Layout is the fixed slot table for a battle. Slot 0 is the front.
type Layout []FormationSlot

// DefaultLayout mirrors the 1280x720 stage of the original game: the front
// ghost in the middle, the middle rank on the left, the back rank on the right.
func DefaultLayout() Layout {
	const (
		w = 129.0
		h = 144.0
		y = 180.0
	)
	return Layout{
		{X: 781, Y: y, Width: w, Height: h, DepthRank: 3},
		{X: 588, Y: y + 12, Width: w * 0.85, Height: h * 0.85, DepthRank: 2},
		{X: 974, Y: y + 22, Width: w * 0.7, Height: h * 0.7, DepthRank: 1},
	}
}

// Len returns the number of slots.
func (l Layout) Len() int {
	return len(l)
}

// Slot returns the slot at i, wrapping out-of-range indices.
func (l Layout) Slot(i int) FormationSlot {
	n := len(l)
	if n == 0 {
		return FormationSlot{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return l[i]
}

// MaxRank returns the highest depth rank in the layout.
func (l Layout) MaxRank() int {
	best := 0
	for i, s := range l {
		if i == 0 || s.DepthRank > best {
			best = s.DepthRank
		}
	}
	return best
}

// Pose is the interpolated on-screen placement of an enemy.
type Pose struct {
	X, Y          float64
	Width, Height float64
	Rank          int
}

// PoseOf returns the resting pose of a slot.
func (s FormationSlot) PoseOf() Pose {
	return Pose{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height, Rank: s.DepthRank}
}
