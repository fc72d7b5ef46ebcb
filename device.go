// device.go
package csgr

import (
	"log"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// minimumDeviceExtensions must all be supported or the renderer cannot be
// built at all.
var minimumDeviceExtensions = []string{
	khr_swapchain.ExtensionName,
}

// optionalDeviceExtensions are enabled when supported and skipped otherwise.
// The portability subset must be requested whenever the implementation
// advertises it.
var optionalDeviceExtensions = []string{
	khr_portability_subset.ExtensionName,
}

// DevicePicker chooses one of the enumerated physical devices. The slice is
// never empty.
type DevicePicker func(devices []core1_0.PhysicalDevice) core1_0.PhysicalDevice

// PickFirstDevice is the default selection policy: the first enumerated
// device wins, with no scoring.
func PickFirstDevice(devices []core1_0.PhysicalDevice) core1_0.PhysicalDevice {
	return devices[0]
}

// queueFamilyIndices holds the negotiated queue family choices. Graphics and
// presentation may land on the same family or on different ones.
type queueFamilyIndices struct {
	graphics *int
	present  *int
}

func (i queueFamilyIndices) complete() bool {
	return i.graphics != nil && i.present != nil
}

// negotiateDevice turns the surface into a physical device, queue family
// choices, and a logical device with one queue per required family.
func (r *Renderer) negotiateDevice() error {
	physicalDevices, _, err := r.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerating physical devices")
	}
	if len(physicalDevices) == 0 {
		return errors.Errorf("no physical devices support Vulkan")
	}

	r.physicalDevice = r.cfg.PickDevice(physicalDevices)

	properties, err := r.instanceDriver.GetPhysicalDeviceProperties(r.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "querying device properties")
	}
	log.Printf("csgr: rendering with physical device %q", properties.DriverName)

	indices, err := r.findQueueFamilies(r.physicalDevice)
	if err != nil {
		return err
	}
	if indices.graphics == nil {
		return errors.Errorf("device %q has no graphics-capable queue family", properties.DriverName)
	}
	if indices.present == nil {
		return errors.Errorf("device %q has no queue family that can present to the surface", properties.DriverName)
	}
	r.graphicsFamilyIndex = *indices.graphics
	r.presentFamilyIndex = *indices.present

	extensionNames, err := r.chooseDeviceExtensions()
	if err != nil {
		return err
	}

	queueFamilies := []int{r.graphicsFamilyIndex}
	if r.presentFamilyIndex != r.graphicsFamilyIndex {
		queueFamilies = append(queueFamilies, r.presentFamilyIndex)
	}

	var queueOptions []core1_0.DeviceQueueCreateInfo
	for _, family := range queueFamilies {
		queueOptions = append(queueOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	r.deviceDriver, _, err = r.instanceDriver.CreateDevice(r.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return errors.Wrap(err, "creating the logical device")
	}

	r.graphicsQueue = r.deviceDriver.GetQueue(r.graphicsFamilyIndex, 0)
	r.presentQueue = r.deviceDriver.GetQueue(r.presentFamilyIndex, 0)
	return nil
}

// findQueueFamilies records the first family advertising graphics and the
// first family advertising presentation support for the surface.
func (r *Renderer) findQueueFamilies(device core1_0.PhysicalDevice) (queueFamilyIndices, error) {
	var indices queueFamilyIndices

	families := r.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)
	for familyIndex, family := range families {
		if indices.graphics == nil && family.QueueFlags&core1_0.QueueGraphics != 0 {
			index := familyIndex
			indices.graphics = &index
		}

		if indices.present == nil {
			supported, _, err := r.surfaceExtension.GetPhysicalDeviceSurfaceSupport(r.surface, device, familyIndex)
			if err != nil {
				return indices, errors.Wrapf(err, "querying surface support for queue family %d", familyIndex)
			}
			if supported {
				index := familyIndex
				indices.present = &index
			}
		}

		if indices.complete() {
			break
		}
	}
	return indices, nil
}

func (r *Renderer) chooseDeviceExtensions() ([]string, error) {
	available, _, err := r.instanceDriver.EnumerateDeviceExtensionProperties(r.physicalDevice)
	if err != nil {
		return nil, errors.Wrap(err, "enumerating device extensions")
	}

	var enabled []string
	for _, ext := range minimumDeviceExtensions {
		if _, ok := available[ext]; !ok {
			return nil, errors.Errorf("required device extension %q is not supported", ext)
		}
		log.Printf("csgr: enabling device extension %q", ext)
		enabled = append(enabled, ext)
	}
	for _, ext := range optionalDeviceExtensions {
		if _, ok := available[ext]; !ok {
			continue
		}
		log.Printf("csgr: enabling optional device extension %q", ext)
		enabled = append(enabled, ext)
	}
	return enabled, nil
}
