// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
)

// Example_roundTrip writes a short clip and decodes it back.
func Example_roundTrip() {
	samples := []int16{100, -100, 200, -200, 300, -300}

	var file memWriteSeeker
	if err := WriteWAV16(&file, 8000, 1, samples); err != nil {
		fmt.Println("write failed:", err)
		return
	}

	source, err := (Decoder{}).Decode(bytes.NewReader(file.buf))
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}
	defer source.Close()

	fmt.Printf("sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("channels: %d\n", source.Channels())

	buf := make([]float32, 16)
	total := 0
	for {
		n, err := source.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
	}
	fmt.Printf("decoded samples: %d\n", total)
	// Output:
	// sample rate: 8000 Hz
	// channels: 1
	// decoded samples: 6
}
