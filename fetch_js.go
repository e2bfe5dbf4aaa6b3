package main

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/seqsense/cubeview/viewport"
)

const configPath = "config.yaml"

var errFetch = errors.New("failed to fetch")

// fetchConfig loads the config next to the page, falling back to the defaults.
// It must not be called from a JS callback since fetchGet blocks.
func fetchConfig(path string, l viewport.Logger) viewport.Config {
	b, err := fetchGet(path)
	if err != nil {
		l.Printf("%s not loaded, using defaults: %v", path, err)
		return viewport.DefaultConfig()
	}
	cfg, err := viewport.ParseConfig(b)
	if err != nil {
		l.Printf("%s ignored: %v", path, err)
		return viewport.DefaultConfig()
	}
	return cfg
}

type fetchResult struct {
	b   []byte
	err error
}

// fetchGet blocks until the whole body is received.
func fetchGet(path string) ([]byte, error) {
	ch := make(chan fetchResult, 1)

	var onResponse, onBody, onError js.Func
	onResponse = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		res := args[0]
		if !res.Get("ok").Bool() {
			ch <- fetchResult{err: fmt.Errorf("%w: %s: %s", errFetch, path, res.Get("statusText").String())}
			return nil
		}
		res.Call("arrayBuffer").Call("then", onBody, onError)
		return nil
	})
	onBody = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		array := js.Global().Get("Uint8Array").New(args[0])
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		ch <- fetchResult{b: b}
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ch <- fetchResult{err: fmt.Errorf("%w: %s: %s", errFetch, path, args[0].Call("toString").String())}
		return nil
	})
	defer func() {
		onResponse.Release()
		onBody.Release()
		onError.Release()
	}()

	js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "same-origin",
		"cache":       "no-cache",
	}).Call("then", onResponse, onError)

	r := <-ch
	return r.b, r.err
}
