package main

import (
	"fmt"
	"html"
	"syscall/js"
)

// logDiv appends log lines to the #log element.
type logDiv struct {
	div js.Value
}

func newLogDiv(doc js.Value) *logDiv {
	return &logDiv{div: doc.Call("getElementById", "log")}
}

func (l *logDiv) Printf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	println(msg)
	if l.div.IsNull() || l.div.IsUndefined() {
		return
	}
	h := l.div.Get("innerHTML").String()
	l.div.Set("innerHTML", h+html.EscapeString(msg)+"<br/>")
}
