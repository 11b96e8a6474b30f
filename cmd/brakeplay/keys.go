package main

import (
	"fmt"

	"github.com/cwbudde/algo-brake/host"
)

const rateStep = 0.01

type keyAction int

const (
	actionNone keyAction = iota
	actionChanged
	actionQuit
)

// handleKey maps one key press onto the plugin parameters.
func handleKey(params *host.Parameters, key byte) keyAction {
	switch key {
	case ' ', 'b':
		if params.Get(host.ParamBrake) > 0.5 {
			params.Set(host.ParamBrake, 0)
		} else {
			params.Set(host.ParamBrake, 1)
		}
		return actionChanged
	case '+', '=':
		params.Set(host.ParamBrakeRate, params.Get(host.ParamBrakeRate)+rateStep)
		return actionChanged
	case '-', '_':
		params.Set(host.ParamBrakeRate, params.Get(host.ParamBrakeRate)-rateStep)
		return actionChanged
	case 'q', 'Q', 0x03, 0x1b: // Ctrl-C and Esc arrive as bytes in raw mode
		return actionQuit
	default:
		return actionNone
	}
}

func statusLine(params *host.Parameters) string {
	return fmt.Sprintf("\r%s: %-8s  %s: %s ",
		params.Name(host.ParamBrake), params.Text(host.ParamBrake),
		params.Name(host.ParamBrakeRate), params.Text(host.ParamBrakeRate))
}
