package main

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/seqsense/cubeview/viewport"
)

var errMissingElement = errors.New("missing element")

type inputListener struct {
	input js.Value
	fn    js.Func
}

type sliders struct {
	distance, focalLength     js.Value
	distanceLabel, focalLabel js.Value
	magnification             js.Value
	listeners                 []inputListener
}

func element(doc js.Value, id string) (js.Value, error) {
	e := doc.Call("getElementById", id)
	if e.IsNull() || e.IsUndefined() {
		return js.Null(), fmt.Errorf("%w: #%s", errMissingElement, id)
	}
	return e, nil
}

func newSliders(doc js.Value, cfg viewport.Config) (*sliders, error) {
	s := &sliders{}
	for _, e := range []struct {
		v  *js.Value
		id string
	}{
		{&s.distance, "distance"},
		{&s.focalLength, "focalLength"},
		{&s.distanceLabel, "distanceLabel"},
		{&s.focalLabel, "focalLengthLabel"},
		{&s.magnification, "magnification"},
	} {
		v, err := element(doc, e.id)
		if err != nil {
			return nil, err
		}
		*e.v = v
	}
	setRange := func(input js.Value, r viewport.Range) {
		input.Set("min", r.Min)
		input.Set("max", r.Max)
		input.Set("step", r.Step)
	}
	setRange(s.distance, cfg.Distance)
	setRange(s.focalLength, cfg.FocalLength)
	return s, nil
}

// show reflects the state on the inputs and labels.
func (s *sliders) show(st viewport.ViewState) {
	s.distance.Set("value", st.Distance)
	s.focalLength.Set("value", st.FocalLength)
	s.distanceLabel.Set("textContent", fmt.Sprintf("Distance: %.2f", st.Distance))
	s.focalLabel.Set("textContent", fmt.Sprintf("Focal Length: %d", st.FocalLength))
	s.magnification.Set("textContent", fmt.Sprintf("%.2f", st.Magnification))
}

func (s *sliders) onInput(input js.Value, fn func(float64)) {
	f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		v, err := strconv.ParseFloat(input.Get("value").String(), 64)
		if err != nil {
			return nil
		}
		fn(v)
		return nil
	})
	input.Call("addEventListener", "input", f)
	s.listeners = append(s.listeners, inputListener{input: input, fn: f})
}

func (s *sliders) bind(vc *viewport.Controller) {
	s.onInput(s.distance, vc.SetDistance)
	s.onInput(s.focalLength, vc.SetFocalLengthFloat)
}

func (s *sliders) release() {
	for _, l := range s.listeners {
		l.input.Call("removeEventListener", "input", l.fn)
		l.fn.Release()
	}
	s.listeners = nil
}
