package input

import "github.com/lixenwraith/lcd-invaders/constants"

// AxisReader samples the analog stick once per frame
// Values are in [constants.AxisMin, constants.AxisMax] with the rest position
// at constants.AxisCenter
type AxisReader interface {
	ReadAxis() int
}

// Delta maps a raw axis sample to a player step of -1, 0 or +1
// A quarter of the range either side of centre is a dead zone; the full
// scale divide by 1024 is done with a shift
func Delta(raw int) int {
	raw = ClampAxis(raw)
	return ((raw-constants.AxisCenter)*2 + constants.AxisCenter) >> 10
}

// ClampAxis limits raw to the legal sample range
func ClampAxis(raw int) int {
	if raw < constants.AxisMin {
		return constants.AxisMin
	}
	if raw > constants.AxisMax {
		return constants.AxisMax
	}
	return raw
}

// FixedAxis always reports the same sample
type FixedAxis int

// CenteredAxis is a stick at rest
const CenteredAxis = FixedAxis(constants.AxisCenter)

func (f FixedAxis) ReadAxis() int {
	return ClampAxis(int(f))
}

// ScriptedAxis replays a fixed sequence of samples, then holds the last one
type ScriptedAxis struct {
	Samples []int
	pos     int
}

func (s *ScriptedAxis) ReadAxis() int {
	if len(s.Samples) == 0 {
		return constants.AxisCenter
	}
	if s.pos >= len(s.Samples) {
		return ClampAxis(s.Samples[len(s.Samples)-1])
	}
	v := s.Samples[s.pos]
	s.pos++
	return ClampAxis(v)
}
