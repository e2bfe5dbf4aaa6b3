package main

import (
	"syscall/js"
)

// animationFrame schedules a task on requestAnimationFrame.
type animationFrame struct{}

func (animationFrame) Schedule(fn func()) func() {
	var id js.Value
	var stopped bool
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if stopped {
			return nil
		}
		id = js.Global().Call("requestAnimationFrame", cb)
		fn()
		return nil
	})
	id = js.Global().Call("requestAnimationFrame", cb)

	return func() {
		if stopped {
			return
		}
		stopped = true
		js.Global().Call("cancelAnimationFrame", id)
		cb.Release()
	}
}
