package host

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-brake/dsp/effects/brake"
)

func TestParametersTable(t *testing.T) {
	ps := NewParameters(brake.NewParams())

	if ps.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", ps.Count())
	}

	tests := []struct {
		index int
		name  string
		value float64
		text  string
	}{
		{ParamBrake, "brake", 0, "disabled"},
		{ParamBrakeRate, "brake rate", brake.DefaultDecayRate, "1.00"},
		{-1, "", 0, ""},
		{2, "", 0, ""},
	}

	for _, tt := range tests {
		if got := ps.Name(tt.index); got != tt.name {
			t.Errorf("Name(%d) = %q, want %q", tt.index, got, tt.name)
		}
		if got := ps.Get(tt.index); got != tt.value {
			t.Errorf("Get(%d) = %v, want %v", tt.index, got, tt.value)
		}
		if got := ps.Text(tt.index); got != tt.text {
			t.Errorf("Text(%d) = %q, want %q", tt.index, got, tt.text)
		}
	}
}

func TestParametersSet(t *testing.T) {
	ps := NewParameters(brake.NewParams())

	ps.Set(ParamBrake, 0.8)
	if ps.Get(ParamBrake) != 1 || ps.Text(ParamBrake) != "enabled" {
		t.Fatalf("brake = %v %q, want 1 enabled", ps.Get(ParamBrake), ps.Text(ParamBrake))
	}

	ps.Set(ParamBrakeRate, 0.25)
	if ps.Get(ParamBrakeRate) != 0.25 || ps.Text(ParamBrakeRate) != "0.25" {
		t.Fatalf("rate = %v %q, want 0.25", ps.Get(ParamBrakeRate), ps.Text(ParamBrakeRate))
	}

	ps.Set(ParamBrakeRate, 4)
	if ps.Get(ParamBrakeRate) != 1 {
		t.Fatalf("rate = %v, want clamped to 1", ps.Get(ParamBrakeRate))
	}

	// Writes to unknown indices are dropped.
	ps.Set(5, 0.1)
	if ps.Get(ParamBrakeRate) != 1 || ps.Get(ParamBrake) != 1 {
		t.Fatal("unknown index modified a parameter")
	}
}

func TestParametersIndex(t *testing.T) {
	ps := NewParameters(brake.NewParams())

	if i, ok := ps.Index("brake rate"); !ok || i != ParamBrakeRate {
		t.Fatalf("Index(brake rate) = %d %v", i, ok)
	}
	if _, ok := ps.Index("gain"); ok {
		t.Fatal("Index(gain) should not resolve")
	}
}

func TestParametersConcurrentAccess(t *testing.T) {
	ps := NewParameters(brake.NewParams())

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				ps.Set(ParamBrake, float64((i+g)%2))
				ps.Set(ParamBrakeRate, float64(i%100)/100)
				_ = ps.Text(ParamBrakeRate)
			}
		}(g)
	}
	wg.Wait()

	if v := ps.Get(ParamBrake); v != 0 && v != 1 {
		t.Fatalf("brake = %v, want binary", v)
	}
	if v := ps.Get(ParamBrakeRate); v < 0 || v > 1 {
		t.Fatalf("rate = %v outside [0, 1]", v)
	}
}
