package viewport

// DeltaMode is the unit of WheelEvent deltas, as in the DOM WheelEvent.
type DeltaMode int

const (
	DeltaPixel DeltaMode = 0x00
	DeltaLine  DeltaMode = 0x01
	DeltaPage  DeltaMode = 0x02
)

const (
	// A typical notch is 3 lines or 100 pixels.
	linePixels = 100.0 / 3
	pagePixels = 800.0
)

// WheelEvent is a scroll delivered by a WheelSource.
type WheelEvent struct {
	DeltaY    float64
	DeltaMode DeltaMode
}

// PixelDeltaY returns DeltaY converted to pixels.
func (e WheelEvent) PixelDeltaY() float64 {
	switch e.DeltaMode {
	case DeltaLine:
		return e.DeltaY * linePixels
	case DeltaPage:
		return e.DeltaY * pagePixels
	default:
		return e.DeltaY
	}
}

// WheelSource delivers wheel events of a single render surface.
type WheelSource interface {
	// OnWheel registers cb and returns a function removing it.
	OnWheel(cb func(WheelEvent)) (remove func())
}

// FrameScheduler runs a repeating task once per display refresh.
type FrameScheduler interface {
	// Schedule starts calling fn every frame until cancel is called.
	Schedule(fn func()) (cancel func())
}
