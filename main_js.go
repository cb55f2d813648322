//go:build js && wasm

package main

import (
	"log/slog"
	"os"
	"strconv"

	"canvashost/app"
	"canvashost/backend"
	"canvashost/hal"
	"canvashost/host"
)

// The page passes options through the environment of the Go instance
// (go.env in wasm_exec.js): CANVASHOST_MODE and CANVASHOST_FPS.
func main() {
	b, err := hal.NewBrowser(app.DefaultCanvasID)
	if err != nil {
		println("canvashost:", err.Error())
		return
	}
	defer b.Close()

	host.SetLogger(hal.NewSlog(b.Logger(), slog.LevelInfo))

	mode, err := backend.ParseMode(os.Getenv("CANVASHOST_MODE"))
	if err != nil {
		b.Logger().WriteLineString(err.Error())
		return
	}
	fps, _ := strconv.Atoi(os.Getenv("CANVASHOST_FPS"))

	sys, err := app.Boot(b, app.Config{Mode: mode, FPS: fps, CanvasID: app.DefaultCanvasID})
	if err != nil {
		b.Logger().WriteLineString(err.Error())
		return
	}
	<-sys.Done()
	if err := sys.Close(); err != nil {
		b.Logger().WriteLineString(err.Error())
	}
}
