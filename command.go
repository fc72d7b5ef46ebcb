// command.go
package csgr

import (
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// fullScreenVertexCount is two triangles covering the viewport; the vertex
// stage derives positions from gl_VertexIndex.
const fullScreenVertexCount = 6

func (r *Renderer) createCommandPool() error {
	pool, _, err := r.deviceDriver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		QueueFamilyIndex: r.graphicsFamilyIndex,
	})
	if err != nil {
		return errors.Wrap(err, "creating the command pool")
	}
	r.commandPool = pool
	return nil
}

// clearColor is magenta when diagnostics are on, so an un-drawn frame is
// unmistakable, and black otherwise.
func (r *Renderer) clearColor() core1_0.ClearValueFloat {
	if r.cfg.Diagnostics {
		return core1_0.ClearValueFloat{1, 0, 1, 1}
	}
	return core1_0.ClearValueFloat{0, 0, 0, 1}
}

// recordCommandBuffers allocates one primary command buffer per swapchain
// image and records the static draw sequence once. Geometry and shaders
// never change, so the buffers are never re-recorded.
func (r *Renderer) recordCommandBuffers() error {
	buffers, _, err := r.deviceDriver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        r.commandPool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: len(r.swapchainImages),
	})
	if err != nil {
		return errors.Wrap(err, "allocating command buffers")
	}
	r.commandBuffers = buffers

	for bufferIndex, buffer := range buffers {
		_, err = r.deviceDriver.BeginCommandBuffer(buffer, core1_0.CommandBufferBeginInfo{})
		if err != nil {
			return errors.Wrapf(err, "beginning command buffer %d", bufferIndex)
		}

		err = r.deviceDriver.CmdBeginRenderPass(buffer, core1_0.SubpassContentsInline,
			core1_0.RenderPassBeginInfo{
				RenderPass:  r.renderPass,
				Framebuffer: r.framebuffers[bufferIndex],
				RenderArea: core1_0.Rect2D{
					Offset: core1_0.Offset2D{X: 0, Y: 0},
					Extent: r.swapchainExtent,
				},
				ClearValues: []core1_0.ClearValue{
					r.clearColor(),
				},
			})
		if err != nil {
			return errors.Wrapf(err, "beginning the render pass in command buffer %d", bufferIndex)
		}

		r.deviceDriver.CmdBindPipeline(buffer, core1_0.PipelineBindPointGraphics, r.graphicsPipeline)
		r.deviceDriver.CmdSetViewport(buffer, []core1_0.Viewport{
			{
				X:        0,
				Y:        0,
				Width:    float32(r.swapchainExtent.Width),
				Height:   float32(r.swapchainExtent.Height),
				MinDepth: 0,
				MaxDepth: 1,
			},
		}...)
		r.deviceDriver.CmdBindDescriptorSets(buffer, core1_0.PipelineBindPointGraphics, r.pipelineLayout, 0, []core1_0.DescriptorSet{
			r.descriptorSets[bufferIndex],
		}, nil)
		r.deviceDriver.CmdDraw(buffer, fullScreenVertexCount, 1, 0, 0)
		r.deviceDriver.CmdEndRenderPass(buffer)

		_, err = r.deviceDriver.EndCommandBuffer(buffer)
		if err != nil {
			return errors.Wrapf(err, "ending command buffer %d", bufferIndex)
		}
	}
	return nil
}
