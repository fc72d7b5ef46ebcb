// sync_test.go
package csgr

import "testing"

func TestFrameIndexCycles(t *testing.T) {
	index := 0
	for frame := 1; frame <= 10; frame++ {
		index = nextFrameIndex(index)
		want := frame % MaxFramesInFlight
		if index != want {
			t.Fatalf("after %d frames index = %d, want %d", frame, index, want)
		}
	}
}

func TestFrameIndexStaysInRange(t *testing.T) {
	index := 0
	for frame := 0; frame < 100; frame++ {
		if index < 0 || index >= MaxFramesInFlight {
			t.Fatalf("frame index %d escaped [0, %d)", index, MaxFramesInFlight)
		}
		index = nextFrameIndex(index)
	}
}
