// sync.go
package csgr

import (
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// MaxFramesInFlight bounds how many frames the CPU may record ahead of the
// GPU. Each frame slot owns an image-available semaphore, a render-finished
// semaphore, and an in-flight fence.
const MaxFramesInFlight = 2

// nextFrameIndex advances the frame slot. After k frames the index is
// k mod MaxFramesInFlight.
func nextFrameIndex(current int) int {
	return (current + 1) % MaxFramesInFlight
}

func (r *Renderer) createSyncObjects() error {
	for i := 0; i < MaxFramesInFlight; i++ {
		imageAvailable, _, err := r.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return errors.Wrap(err, "creating an image-available semaphore")
		}
		r.imageAvailableSemaphores = append(r.imageAvailableSemaphores, imageAvailable)

		renderFinished, _, err := r.deviceDriver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
		if err != nil {
			return errors.Wrap(err, "creating a render-finished semaphore")
		}
		r.renderFinishedSemaphores = append(r.renderFinishedSemaphores, renderFinished)

		// Starts signaled so the first wait on each slot returns at once.
		fence, _, err := r.deviceDriver.CreateFence(nil, core1_0.FenceCreateInfo{
			Flags: core1_0.FenceCreateSignaled,
		})
		if err != nil {
			return errors.Wrap(err, "creating an in-flight fence")
		}
		r.inFlightFences = append(r.inFlightFences, fence)
	}

	// One slot per swapchain image recording which in-flight fence owns it;
	// zero-value fences mean "not owned yet".
	r.imagesInFlight = make([]core1_0.Fence, len(r.swapchainImages))
	return nil
}

// DrawFrame runs the steady-state frame protocol once: wait for this slot's
// previous submission, acquire an image, hand the image to this slot's
// fence, refresh the image's uniforms, submit the pre-recorded commands, and
// present. The trailing present-queue idle wait intentionally serializes the
// CPU and GPU per frame. Submission and presentation failures are fatal; the
// renderer is not usable afterwards.
func (r *Renderer) DrawFrame(elapsedSeconds float64) error {
	frameFence := []core1_0.Fence{r.inFlightFences[r.currentFrame]}

	_, err := r.deviceDriver.WaitForFences(true, common.NoTimeout, frameFence...)
	if err != nil {
		return errors.Wrap(err, "waiting for the in-flight fence")
	}

	imageIndex, _, err := r.swapchainExtension.AcquireNextImage(
		r.swapchain, common.NoTimeout, &r.imageAvailableSemaphores[r.currentFrame], nil)
	if err != nil {
		return errors.Wrap(err, "acquiring the next swapchain image")
	}

	// The swapchain may hand back an image a different in-flight frame still
	// owns when it has more images than frame slots.
	if r.imagesInFlight[imageIndex].Initialized() {
		_, err = r.deviceDriver.WaitForFences(true, common.NoTimeout, r.imagesInFlight[imageIndex])
		if err != nil {
			return errors.Wrapf(err, "waiting for the prior owner of image %d", imageIndex)
		}
	}
	r.imagesInFlight[imageIndex] = r.inFlightFences[r.currentFrame]

	err = r.writeUniforms(imageIndex, FragmentUniforms{
		ElapsedTimeSeconds: float32(elapsedSeconds),
		ResolutionX:        float32(r.swapchainExtent.Width),
		ResolutionY:        float32(r.swapchainExtent.Height),
	})
	if err != nil {
		return err
	}

	_, err = r.deviceDriver.ResetFences(frameFence...)
	if err != nil {
		return errors.Wrap(err, "resetting the in-flight fence")
	}

	_, err = r.deviceDriver.QueueSubmit(r.graphicsQueue, &r.inFlightFences[r.currentFrame],
		core1_0.SubmitInfo{
			WaitSemaphores:   []core1_0.Semaphore{r.imageAvailableSemaphores[r.currentFrame]},
			WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
			CommandBuffers:   []core1_0.CommandBuffer{r.commandBuffers[imageIndex]},
			SignalSemaphores: []core1_0.Semaphore{r.renderFinishedSemaphores[r.currentFrame]},
		},
	)
	if err != nil {
		return errors.Wrap(err, "submitting the frame")
	}

	_, err = r.swapchainExtension.QueuePresent(r.presentQueue, khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{r.renderFinishedSemaphores[r.currentFrame]},
		Swapchains:     []khr_swapchain.Swapchain{r.swapchain},
		ImageIndices:   []int{imageIndex},
	})
	if err != nil {
		return errors.Wrap(err, "presenting the frame")
	}

	_, err = r.deviceDriver.QueueWaitIdle(r.presentQueue)
	if err != nil {
		return errors.Wrap(err, "waiting for the presentation queue")
	}

	r.currentFrame = nextFrameIndex(r.currentFrame)
	return nil
}
