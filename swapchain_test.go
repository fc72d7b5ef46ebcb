// swapchain_test.go
package csgr

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSurfaceFormatPrefersBGRASRGB(t *testing.T) {
	preferred := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	other := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	got := chooseSurfaceFormat([]khr_surface.SurfaceFormat{other, preferred})
	if got != preferred {
		t.Errorf("chooseSurfaceFormat = %+v, want the BGRA sRGB format", got)
	}
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	first := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	second := khr_surface.SurfaceFormat{
		Format:     core1_0.FormatD32SignedFloat,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}

	got := chooseSurfaceFormat([]khr_surface.SurfaceFormat{first, second})
	if got != first {
		t.Errorf("chooseSurfaceFormat = %+v, want the first listed format", got)
	}
}

func TestChoosePresentModePrefersMailbox(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeMailbox,
		khr_surface.PresentModeImmediate,
	}
	if got := choosePresentMode(modes); got != khr_surface.PresentModeMailbox {
		t.Errorf("choosePresentMode = %v, want mailbox", got)
	}
}

func TestChoosePresentModeFallsBackToFIFO(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeImmediate,
	}
	if got := choosePresentMode(modes); got != khr_surface.PresentModeFIFO {
		t.Errorf("choosePresentMode = %v, want FIFO", got)
	}
}

func TestChooseSwapExtentTakesCurrentExtent(t *testing.T) {
	caps := &khr_surface.SurfaceCapabilities{
		CurrentExtent: core1_0.Extent2D{Width: 800, Height: 600},
	}

	got := chooseSwapExtent(caps, 1024, 768)
	if got.Width != 800 || got.Height != 600 {
		t.Errorf("chooseSwapExtent = %+v, want 800x600", got)
	}
}

func TestChooseSwapExtentClampsDrawableSize(t *testing.T) {
	// A width of -1 means the surface lets the swapchain pick the extent.
	caps := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 100, Height: 100},
		MaxImageExtent: core1_0.Extent2D{Width: 2000, Height: 1000},
	}

	cases := []struct {
		name          string
		width, height int
		want          core1_0.Extent2D
	}{
		{"within range", 800, 600, core1_0.Extent2D{Width: 800, Height: 600}},
		{"below minimum", 10, 20, core1_0.Extent2D{Width: 100, Height: 100}},
		{"above maximum", 4000, 3000, core1_0.Extent2D{Width: 2000, Height: 1000}},
		{"mixed", 50, 1200, core1_0.Extent2D{Width: 100, Height: 1000}},
	}
	for _, tc := range cases {
		if got := chooseSwapExtent(caps, tc.width, tc.height); got != tc.want {
			t.Errorf("%s: chooseSwapExtent(%d, %d) = %+v, want %+v",
				tc.name, tc.width, tc.height, got, tc.want)
		}
	}
}

func TestChooseImageCount(t *testing.T) {
	cases := []struct {
		name     string
		min, max int
		want     int
	}{
		{"one beyond minimum", 2, 8, 3},
		{"bounded by maximum", 3, 3, 3},
		{"zero maximum means unbounded", 4, 0, 5},
	}
	for _, tc := range cases {
		caps := &khr_surface.SurfaceCapabilities{
			MinImageCount: tc.min,
			MaxImageCount: tc.max,
		}
		if got := chooseImageCount(caps); got != tc.want {
			t.Errorf("%s: chooseImageCount(min=%d, max=%d) = %d, want %d",
				tc.name, tc.min, tc.max, got, tc.want)
		}
	}
}
