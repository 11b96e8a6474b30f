package pitch_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-brake/measure/pitch"
)

func ExampleTracker_Estimate() {
	const sampleRate = 48000

	tr, err := pitch.NewTracker(sampleRate, pitch.WithFrameSize(4096))
	if err != nil {
		fmt.Println("error")
		return
	}

	frame := make([]float64, 4096)
	for i := range frame {
		frame[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / sampleRate)
	}

	est, err := tr.Estimate(frame)
	if err != nil {
		fmt.Println("error")
		return
	}

	fmt.Printf("%.0f Hz\n", est.Frequency)

	// Output:
	// 1000 Hz
}
