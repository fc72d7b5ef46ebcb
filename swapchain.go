// swapchain.go
package csgr

import (
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// swapchainSupport gathers what the device offers for the surface. Empty
// format or present-mode lists make the surface unusable.
type swapchainSupport struct {
	capabilities *khr_surface.SurfaceCapabilities
	formats      []khr_surface.SurfaceFormat
	presentModes []khr_surface.PresentMode
}

func (r *Renderer) querySwapchainSupport(device core1_0.PhysicalDevice) (swapchainSupport, error) {
	var support swapchainSupport
	var err error

	support.capabilities, _, err = r.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(r.surface, device)
	if err != nil {
		return support, errors.Wrap(err, "querying surface capabilities")
	}

	support.formats, _, err = r.surfaceExtension.GetPhysicalDeviceSurfaceFormats(r.surface, device)
	if err != nil {
		return support, errors.Wrap(err, "querying surface formats")
	}

	support.presentModes, _, err = r.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(r.surface, device)
	if err != nil {
		return support, errors.Wrap(err, "querying surface present modes")
	}
	return support, nil
}

// chooseSurfaceFormat prefers 8-bit BGRA sRGB and falls back to whatever the
// device lists first.
func chooseSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}
	return availableFormats[0]
}

// choosePresentMode prefers mailbox (triple buffering, low latency) and
// falls back to FIFO, which is always available.
func choosePresentMode(availableModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range availableModes {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}
	return khr_surface.PresentModeFIFO
}

// chooseSwapExtent takes the surface's fixed current extent when it reports
// one, and otherwise clamps the drawable size to the supported range.
func chooseSwapExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	extent := core1_0.Extent2D{Width: drawableWidth, Height: drawableHeight}
	if extent.Width < capabilities.MinImageExtent.Width {
		extent.Width = capabilities.MinImageExtent.Width
	}
	if extent.Width > capabilities.MaxImageExtent.Width {
		extent.Width = capabilities.MaxImageExtent.Width
	}
	if extent.Height < capabilities.MinImageExtent.Height {
		extent.Height = capabilities.MinImageExtent.Height
	}
	if extent.Height > capabilities.MaxImageExtent.Height {
		extent.Height = capabilities.MaxImageExtent.Height
	}
	return extent
}

// chooseImageCount requests one image beyond the minimum so the GPU is never
// starved waiting on the application. A maximum of zero means unbounded.
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

func (r *Renderer) createSwapchain() error {
	r.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(r.deviceDriver)

	support, err := r.querySwapchainSupport(r.physicalDevice)
	if err != nil {
		return err
	}
	if len(support.formats) == 0 {
		return errors.Errorf("surface reports no supported formats")
	}
	if len(support.presentModes) == 0 {
		return errors.Errorf("surface reports no supported present modes")
	}

	surfaceFormat := chooseSurfaceFormat(support.formats)
	presentMode := choosePresentMode(support.presentModes)

	drawableWidth, drawableHeight := r.window.VulkanGetDrawableSize()
	extent := chooseSwapExtent(support.capabilities, int(drawableWidth), int(drawableHeight))
	imageCount := chooseImageCount(support.capabilities)

	sharingMode := core1_0.SharingModeExclusive
	var queueFamilyIndices []int
	if r.graphicsFamilyIndex != r.presentFamilyIndex {
		sharingMode = core1_0.SharingModeConcurrent
		queueFamilyIndices = []int{r.graphicsFamilyIndex, r.presentFamilyIndex}
	}

	swapchain, _, err := r.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: r.surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   support.capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return errors.Wrap(err, "creating the swapchain")
	}

	r.swapchain = swapchain
	r.swapchainImageFormat = surfaceFormat.Format
	r.swapchainExtent = extent
	return nil
}

// createImageViews builds one 2D color view with identity channel mapping
// per swapchain image.
func (r *Renderer) createImageViews() error {
	images, _, err := r.swapchainExtension.GetSwapchainImages(r.swapchain)
	if err != nil {
		return errors.Wrap(err, "querying swapchain images")
	}
	r.swapchainImages = images

	for _, image := range images {
		view, _, err := r.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   r.swapchainImageFormat,
			Components: core1_0.ComponentMapping{
				R: core1_0.ComponentSwizzleIdentity,
				G: core1_0.ComponentSwizzleIdentity,
				B: core1_0.ComponentSwizzleIdentity,
				A: core1_0.ComponentSwizzleIdentity,
			},
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrap(err, "creating a swapchain image view")
		}
		r.swapchainImageViews = append(r.swapchainImageViews, view)
	}
	return nil
}
