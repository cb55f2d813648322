//go:build !js && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int

	Logger Logger
	Audio  Audio
}

func RunWindow(_ BootFunc, _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
