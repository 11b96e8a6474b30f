package host_test

import (
	"fmt"

	"github.com/cwbudde/algo-brake/host"
)

func ExampleParameters() {
	p, err := host.New(44100)
	if err != nil {
		panic(err)
	}

	params := p.Parameters()
	params.Set(host.ParamBrake, 1)
	params.Set(host.ParamBrakeRate, 0.5)

	for i := 0; i < params.Count(); i++ {
		fmt.Printf("%s: %s\n", params.Name(i), params.Text(i))
	}
	// Output:
	// brake: enabled
	// brake rate: 0.50
}

func ExamplePlugin_ProcessInterleaved() {
	p, err := host.New(48000, host.WithMaxBlockSize(256))
	if err != nil {
		panic(err)
	}

	buf := make([]float32, 2*512)
	for i := range buf {
		buf[i] = 0.5
	}

	if err := p.ProcessInterleaved(buf); err != nil {
		panic(err)
	}
	fmt.Println(p.Info().Name, p.Effect().State(), buf[0])
	// Output: Braker passthrough 0.5
}
