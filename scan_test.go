package hgt2png

import (
	"math/rand"
	"testing"
)

func TestScanRange(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		samples []int16
		want    Range
	}{
		{
			name:    "mixed elevations",
			width:   3,
			height:  2,
			samples: []int16{-13, 0, 500, 1208, 42, 7},
			want:    Range{Min: -13, Max: 1208},
		},
		{
			name:    "voids never update the minimum",
			width:   2,
			height:  2,
			samples: []int16{100, Void, 300, Void},
			want:    Range{Min: 100, Max: 300, Voids: 2},
		},
		{
			name:    "all voids keep the initial bounds",
			width:   2,
			height:  2,
			samples: []int16{Void, Void, Void, Void},
			want:    Range{Min: 32768, Max: -32768, Voids: 4},
		},
		{
			name:    "flat raster",
			width:   2,
			height:  2,
			samples: []int16{500, 500, 500, 500},
			want:    Range{Min: 500, Max: 500},
		},
		{
			name:    "negative elevations",
			width:   2,
			height:  2,
			samples: []int16{-400, -100, -250, -399},
			want:    Range{Min: -400, Max: -100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRasterFromSamples(tt.width, tt.height, tt.samples)
			got, err := r.ScanRange(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("range = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScanRange_AllVoidsHasNoSamples(t *testing.T) {
	r := newRasterFromSamples(2, 2, []int16{Void, Void, Void, Void})
	rng, err := r.ScanRange(1)
	if err != nil {
		t.Fatal(err)
	}
	if rng.HasSamples() {
		t.Error("HasSamples() = true for an all-void raster")
	}
	if rng.Voids != r.Samples() {
		t.Errorf("Voids = %d, want %d", rng.Voids, r.Samples())
	}
}

func TestScanRange_ParallelMatchesSerial(t *testing.T) {
	const width, height = 64, 1024
	rng := rand.New(rand.NewSource(1))
	samples := make([]int16, width*height)
	for i := range samples {
		switch rng.Intn(10) {
		case 0:
			samples[i] = Void
		default:
			samples[i] = int16(rng.Intn(9000) - 450)
		}
	}

	serial := newRasterFromSamples(width, height, samples)
	parallel := newRasterFromSamples(width, height, samples)

	want, err := serial.ScanRange(1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parallel.ScanRange(8)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("parallel range = %+v, serial = %+v", got, want)
	}
}

func TestMergeRange(t *testing.T) {
	a := Range{Min: -10, Max: 100, Voids: 3}
	b := Range{Min: -50, Max: 20, Voids: 1}
	got := mergeRange(a, b)
	want := Range{Min: -50, Max: 100, Voids: 4}
	if got != want {
		t.Errorf("mergeRange = %+v, want %+v", got, want)
	}

	// Merging with the initial bounds is the identity.
	if got := mergeRange(rangeInit, a); got != a {
		t.Errorf("mergeRange(init, a) = %+v, want %+v", got, a)
	}
}
