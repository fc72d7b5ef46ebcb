// instance.go
package csgr

import (
	"log"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// validationLayerWishlist names the layers enabled when diagnostics are on.
// A missing layer is logged and skipped, never fatal.
var validationLayerWishlist = []string{
	"VK_LAYER_KHRONOS_validation",
}

func (r *Renderer) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    r.cfg.AppName,
		ApplicationVersion: common.CreateVersion(0, 0, 0),
		EngineName:         "csgr",
		EngineVersion:      common.CreateVersion(0, 0, 0),
		APIVersion:         common.Vulkan1_2,
	}

	available, _, err := r.globalDriver.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "enumerating instance extensions")
	}

	// The windowing collaborator dictates which surface extensions the
	// instance must carry.
	for _, ext := range r.window.VulkanGetInstanceExtensions() {
		if _, ok := available[ext]; !ok {
			return errors.Errorf("required instance extension %q is not supported", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if _, ok := available[khr_portability_enumeration.ExtensionName]; ok {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if r.cfg.Diagnostics {
		if _, ok := available[ext_debug_utils.ExtensionName]; ok {
			instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
		}

		layers, _, err := r.globalDriver.AvailableLayers()
		if err != nil {
			return errors.Wrap(err, "enumerating instance layers")
		}
		for _, layer := range validationLayerWishlist {
			if _, ok := layers[layer]; !ok {
				log.Printf("csgr: validation layer %q is not available, continuing without it", layer)
				continue
			}
			log.Printf("csgr: enabling validation layer %q", layer)
			instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, layer)
		}

		instanceOptions.Next = r.debugMessengerOptions()
	}

	r.instanceDriver, _, err = r.globalDriver.CreateInstance(nil, instanceOptions)
	if err != nil {
		return errors.Wrap(err, "creating the Vulkan instance")
	}
	return nil
}

func (r *Renderer) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    r.logDebugMessage,
	}
}

func (r *Renderer) setupDebugMessenger() error {
	if !r.cfg.Diagnostics {
		return nil
	}

	var err error
	r.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(r.instanceDriver)
	r.debugMessenger, _, err = r.debugDriver.CreateDebugUtilsMessenger(nil, r.debugMessengerOptions())
	if err != nil {
		return errors.Wrap(err, "creating the debug messenger")
	}
	return nil
}

func (r *Renderer) logDebugMessage(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("csgr: [%s %s] %s", severity, msgType, data.Message)
	return false
}

func (r *Renderer) createSurface() error {
	r.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(r.instanceDriver)
	surface, err := vkng_sdl2.CreateSurface(r.instanceDriver.Instance(), r.surfaceExtension, r.window)
	if err != nil {
		return errors.Wrap(err, "creating the window surface")
	}
	r.surface = surface
	return nil
}
