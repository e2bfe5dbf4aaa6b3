package viewport

import (
	"fmt"
)

// ViewState is the numeric state shown next to the sliders.
// Magnification always equals FocalLength / Distance.
type ViewState struct {
	Distance      float64
	FocalLength   int
	Magnification float64
}

// Magnification returns f/u.
func Magnification(focalLength, distance float64) float64 {
	return focalLength / distance
}

func newViewState(distance float64, focalLength int) ViewState {
	return ViewState{
		Distance:      distance,
		FocalLength:   focalLength,
		Magnification: Magnification(float64(focalLength), distance),
	}
}

func (s ViewState) String() string {
	return fmt.Sprintf("distance: %.2f, focal length: %d, magnification: %.2f",
		s.Distance, s.FocalLength, s.Magnification)
}
