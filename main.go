//go:build !js
// +build !js

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "cubeview runs in the browser: build with GOOS=js GOARCH=wasm, or use cmd/cubeview-desktop")
	os.Exit(1)
}
