// Package csgr renders procedurally defined CSG scenes through a Vulkan
// per-pixel shading pass. A Renderer owns the whole device/pipeline state for
// one fixed-size window plus the scene graph describing the geometry; the
// surrounding application owns the window and the frame-timing cadence.
package csgr

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
	core "github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	vkngmath "github.com/vkngwrapper/math"
)

// Config carries the plain configuration values the surrounding application
// supplies for one renderer.
type Config struct {
	// AppName is reported to the Vulkan driver.
	AppName string

	// MaxNodes is the immutable scene-graph capacity.
	MaxNodes int

	// VertexShaderPath and FragmentShaderPath locate the pre-compiled
	// SPIR-V blobs for the two fixed shader stages.
	VertexShaderPath   string
	FragmentShaderPath string

	// Diagnostics enables validation layers, the debug messenger, and the
	// magenta clear color that makes a missing draw obvious.
	Diagnostics bool

	// PickDevice selects among the enumerated physical devices. Nil means
	// PickFirstDevice.
	PickDevice DevicePicker
}

func (cfg Config) withDefaults() Config {
	if cfg.AppName == "" {
		cfg.AppName = "CSG Renderer"
	}
	if cfg.MaxNodes == 0 {
		cfg.MaxNodes = 64
	}
	if cfg.VertexShaderPath == "" {
		cfg.VertexShaderPath = "shaders/csg.vert.spv"
	}
	if cfg.FragmentShaderPath == "" {
		cfg.FragmentShaderPath = "shaders/csg.frag.spv"
	}
	if cfg.PickDevice == nil {
		cfg.PickDevice = PickFirstDevice
	}
	return cfg
}

// Renderer holds every Vulkan object backing one presentation pipeline, in
// creation order. Construction either completes fully or tears down whatever
// was built and reports the failure; a partially built Renderer is never
// returned to the caller.
type Renderer struct {
	cfg    Config
	window *sdl.Window
	graph  *Graph

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	physicalDevice      core1_0.PhysicalDevice
	graphicsFamilyIndex int
	presentFamilyIndex  int
	graphicsQueue       core1_0.Queue
	presentQueue        core1_0.Queue

	swapchainExtension   khr_swapchain.ExtensionDriver
	swapchain            khr_swapchain.Swapchain
	swapchainImages      []core1_0.Image
	swapchainImageFormat core1_0.Format
	swapchainExtent      core1_0.Extent2D
	swapchainImageViews  []core1_0.ImageView

	renderPass          core1_0.RenderPass
	descriptorSetLayout core1_0.DescriptorSetLayout
	pipelineLayout      core1_0.PipelineLayout
	graphicsPipeline    core1_0.Pipeline

	framebuffers []core1_0.Framebuffer

	commandPool    core1_0.CommandPool
	commandBuffers []core1_0.CommandBuffer

	uniformBuffers       []core1_0.Buffer
	uniformBuffersMemory []core1_0.DeviceMemory
	descriptorPool       core1_0.DescriptorPool
	descriptorSets       []core1_0.DescriptorSet

	imageAvailableSemaphores []core1_0.Semaphore
	renderFinishedSemaphores []core1_0.Semaphore
	inFlightFences           []core1_0.Fence
	imagesInFlight           []core1_0.Fence
	currentFrame             int
}

// New constructs a renderer against the given Vulkan-capable window. The
// window size is fixed for the life of the renderer; the swapchain is never
// rebuilt. On any failure everything already created is destroyed before the
// error is returned.
func New(window *sdl.Window, cfg Config) (*Renderer, error) {
	cfg = cfg.withDefaults()

	graph, err := NewGraph(cfg.MaxNodes)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:    cfg,
		window: window,
		graph:  graph,
	}
	if err := r.build(); err != nil {
		r.Destroy()
		return nil, err
	}
	return r, nil
}

func (r *Renderer) build() error {
	var err error
	r.globalDriver, err = core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return errors.Wrap(err, "loading the Vulkan driver")
	}

	steps := []func() error{
		r.createInstance,
		r.setupDebugMessenger,
		r.createSurface,
		r.negotiateDevice,
		r.createSwapchain,
		r.createImageViews,
		r.createRenderPass,
		r.createDescriptorSetLayout,
		r.createGraphicsPipeline,
		r.createFramebuffers,
		r.createCommandPool,
		r.createUniformBuffers,
		r.createDescriptorPool,
		r.createDescriptorSets,
		r.recordCommandBuffers,
		r.createSyncObjects,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Scene returns the graph owned by this renderer.
func (r *Renderer) Scene() *Graph { return r.graph }

// AddSphere adds a sphere leaf to the renderer's scene.
func (r *Renderer) AddSphere(radius float32) (Node, error) {
	return r.graph.AddSphere(radius)
}

// AddInfinitePlanarPartition adds a half-space leaf to the renderer's scene.
func (r *Renderer) AddInfinitePlanarPartition(outwardNormal vkngmath.Vec3[float32]) (Node, error) {
	return r.graph.AddInfinitePlanarPartition(outwardNormal)
}

// AddUnionOf adds a union node to the renderer's scene.
func (r *Renderer) AddUnionOf(left, right NodeArgument) (Node, error) {
	return r.graph.AddUnionOf(left, right)
}

// AddIntersectionOf adds an intersection node to the renderer's scene.
func (r *Renderer) AddIntersectionOf(left, right NodeArgument) (Node, error) {
	return r.graph.AddIntersectionOf(left, right)
}

// AddDifferenceOf adds a difference node to the renderer's scene.
func (r *Renderer) AddDifferenceOf(left, right NodeArgument) (Node, error) {
	return r.graph.AddDifferenceOf(left, right)
}

// IsRoot reports whether node is a root of the renderer's scene forest.
func (r *Renderer) IsRoot(node Node) bool { return r.graph.IsRoot(node) }

// Destroy releases every live resource in exact reverse creation order. It
// is safe to call on a renderer whose construction aborted partway, and a
// second call is a no-op: each destroyed handle is zeroed so nothing is
// destroyed twice.
func (r *Renderer) Destroy() {
	if r == nil {
		return
	}

	if r.deviceDriver != nil {
		r.deviceDriver.DeviceWaitIdle()
	}

	for _, fence := range r.inFlightFences {
		if fence.Initialized() {
			r.deviceDriver.DestroyFence(fence, nil)
		}
	}
	r.inFlightFences = nil
	r.imagesInFlight = nil

	for _, semaphore := range r.renderFinishedSemaphores {
		if semaphore.Initialized() {
			r.deviceDriver.DestroySemaphore(semaphore, nil)
		}
	}
	r.renderFinishedSemaphores = nil

	for _, semaphore := range r.imageAvailableSemaphores {
		if semaphore.Initialized() {
			r.deviceDriver.DestroySemaphore(semaphore, nil)
		}
	}
	r.imageAvailableSemaphores = nil

	if len(r.commandBuffers) > 0 {
		r.deviceDriver.FreeCommandBuffers(r.commandBuffers...)
		r.commandBuffers = nil
	}

	if r.descriptorPool.Initialized() {
		// Sets allocated from the pool are returned with it.
		r.deviceDriver.DestroyDescriptorPool(r.descriptorPool, nil)
		r.descriptorPool = core1_0.DescriptorPool{}
		r.descriptorSets = nil
	}

	for _, buffer := range r.uniformBuffers {
		if buffer.Initialized() {
			r.deviceDriver.DestroyBuffer(buffer, nil)
		}
	}
	r.uniformBuffers = nil

	for _, memory := range r.uniformBuffersMemory {
		if memory.Initialized() {
			r.deviceDriver.FreeMemory(memory, nil)
		}
	}
	r.uniformBuffersMemory = nil

	if r.commandPool.Initialized() {
		r.deviceDriver.DestroyCommandPool(r.commandPool, nil)
		r.commandPool = core1_0.CommandPool{}
	}

	for _, framebuffer := range r.framebuffers {
		if framebuffer.Initialized() {
			r.deviceDriver.DestroyFramebuffer(framebuffer, nil)
		}
	}
	r.framebuffers = nil

	if r.graphicsPipeline.Initialized() {
		r.deviceDriver.DestroyPipeline(r.graphicsPipeline, nil)
		r.graphicsPipeline = core1_0.Pipeline{}
	}

	if r.pipelineLayout.Initialized() {
		r.deviceDriver.DestroyPipelineLayout(r.pipelineLayout, nil)
		r.pipelineLayout = core1_0.PipelineLayout{}
	}

	if r.descriptorSetLayout.Initialized() {
		r.deviceDriver.DestroyDescriptorSetLayout(r.descriptorSetLayout, nil)
		r.descriptorSetLayout = core1_0.DescriptorSetLayout{}
	}

	if r.renderPass.Initialized() {
		r.deviceDriver.DestroyRenderPass(r.renderPass, nil)
		r.renderPass = core1_0.RenderPass{}
	}

	for _, view := range r.swapchainImageViews {
		if view.Initialized() {
			r.deviceDriver.DestroyImageView(view, nil)
		}
	}
	r.swapchainImageViews = nil
	r.swapchainImages = nil

	if r.swapchain.Initialized() {
		r.swapchainExtension.DestroySwapchain(r.swapchain, nil)
		r.swapchain = khr_swapchain.Swapchain{}
	}

	if r.deviceDriver != nil {
		r.deviceDriver.DestroyDevice(nil)
		r.deviceDriver = nil
	}

	if r.debugMessenger.Initialized() {
		r.debugDriver.DestroyDebugUtilsMessenger(r.debugMessenger, nil)
		r.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
	}

	if r.surface.Initialized() {
		r.surfaceExtension.DestroySurface(r.surface, nil)
		r.surface = khr_surface.Surface{}
	}

	if r.instanceDriver != nil {
		r.instanceDriver.DestroyInstance(nil)
		r.instanceDriver = nil
	}

	// The graph is released together with its owning renderer.
	r.graph = nil
}
