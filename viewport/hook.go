package viewport

// FrameHook is a FrameScheduler for hosts that drive their own frame loop.
// The host calls Fire once per frame.
type FrameHook struct {
	fn func()
}

func (h *FrameHook) Schedule(fn func()) func() {
	h.fn = fn
	return func() {
		h.fn = nil
	}
}

// Fire runs the scheduled task, if any. It reports whether a task ran.
func (h *FrameHook) Fire() bool {
	if h.fn == nil {
		return false
	}
	h.fn()
	return true
}

// WheelHook is a WheelSource for hosts polling the wheel themselves.
type WheelHook struct {
	cb func(WheelEvent)
}

func (h *WheelHook) OnWheel(cb func(WheelEvent)) func() {
	h.cb = cb
	return func() {
		h.cb = nil
	}
}

// Emit delivers e to the registered listener.
func (h *WheelHook) Emit(e WheelEvent) {
	if h.cb != nil {
		h.cb(e)
	}
}
