package brake_test

import (
	"fmt"

	"github.com/cwbudde/algo-brake/dsp/effects/brake"
)

func ExampleBrake_ProcessStereoInPlace() {
	b, err := brake.New(44100)
	if err != nil {
		fmt.Println("error")
		return
	}

	left := []float64{0.5, 0.5, 0.5, 0.5}
	right := []float64{-0.5, -0.5, -0.5, -0.5}

	_ = b.ProcessStereoInPlace(left, right)
	fmt.Println(b.State(), left)

	b.Params().SetEnabled(1)
	_ = b.ProcessStereoInPlace(left, right)
	fmt.Println(b.State(), b.WriteCursor(), left[:2])

	// Output:
	// passthrough [0.5 0.5 0.5 0.5]
	// braking 4 [0 0]
}

func ExampleParams() {
	p := brake.NewParams()

	p.SetEnabled(0.6)
	p.SetDecayRate(2)
	fmt.Printf("enabled=%v rate=%.2f\n", p.Enabled(), p.DecayRate())

	p.SetEnabled(0.4)
	p.SetDecayRate(-1)
	fmt.Printf("enabled=%v rate=%.2f\n", p.Enabled(), p.DecayRate())

	// Output:
	// enabled=true rate=1.00
	// enabled=false rate=0.00
}

func ExampleRecordBuffer_ReadInterpolated() {
	rec := brake.NewRecordBuffer(10)
	rec.Append(0, 0)
	rec.Append(1, 1)

	l, r := rec.ReadInterpolated(0.5)
	fmt.Println(rec.Len(), l, r)

	// Output:
	// 100 0.5 0.5
}
