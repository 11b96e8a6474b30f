package host

import "fmt"

// Category classifies a plugin for host browsers.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryEffect
	CategorySynth
	CategoryAnalysis
)

func (c Category) String() string {
	switch c {
	case CategoryUnknown:
		return "Unknown"
	case CategoryEffect:
		return "Effect"
	case CategorySynth:
		return "Synth"
	case CategoryAnalysis:
		return "Analysis"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Info is the static identity a host reads before loading the plugin.
type Info struct {
	Name       string
	UniqueID   int32
	Category   Category
	Version    int
	Inputs     int
	Outputs    int
	Parameters int
}

const (
	pluginName     = "Braker"
	pluginUniqueID = 18423
	pluginVersion  = 1
	channelCount   = 2
)

// DefaultInfo returns the identity of the brake plugin.
func DefaultInfo() Info {
	return Info{
		Name:       pluginName,
		UniqueID:   pluginUniqueID,
		Category:   CategoryEffect,
		Version:    pluginVersion,
		Inputs:     channelCount,
		Outputs:    channelCount,
		Parameters: ParamCount,
	}
}
