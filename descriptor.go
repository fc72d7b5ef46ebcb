// descriptor.go
package csgr

import (
	"bytes"
	"encoding/binary"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// FragmentUniforms is the uniform block consumed by the fragment stage at
// binding 0. Its layout is a bit-exact contract with the compiled shader
// binary and must not change independently of it.
type FragmentUniforms struct {
	ElapsedTimeSeconds float32
	ResolutionX        float32
	ResolutionY        float32
}

// createUniformBuffers allocates one host-visible uniform buffer per
// swapchain image so each pre-recorded command buffer has its own copy to
// read while other frames are being prepared.
func (r *Renderer) createUniformBuffers() error {
	bufferSize := int(unsafe.Sizeof(FragmentUniforms{}))

	for i := 0; i < len(r.swapchainImages); i++ {
		buffer, memory, err := r.createBuffer(bufferSize, core1_0.BufferUsageUniformBuffer,
			core1_0.MemoryPropertyHostVisible|core1_0.MemoryPropertyHostCoherent)
		if err != nil {
			return errors.Wrapf(err, "creating uniform buffer %d", i)
		}
		r.uniformBuffers = append(r.uniformBuffers, buffer)
		r.uniformBuffersMemory = append(r.uniformBuffersMemory, memory)
	}
	return nil
}

func (r *Renderer) createBuffer(size int, usage core1_0.BufferUsageFlags, properties core1_0.MemoryPropertyFlags) (core1_0.Buffer, core1_0.DeviceMemory, error) {
	buffer, _, err := r.deviceDriver.CreateBuffer(nil, core1_0.BufferCreateInfo{
		Size:        size,
		Usage:       usage,
		SharingMode: core1_0.SharingModeExclusive,
	})
	if err != nil {
		return core1_0.Buffer{}, core1_0.DeviceMemory{}, err
	}

	memRequirements := r.deviceDriver.GetBufferMemoryRequirements(buffer)
	memoryTypeIndex, err := r.findMemoryType(memRequirements.MemoryTypeBits, properties)
	if err != nil {
		return buffer, core1_0.DeviceMemory{}, err
	}

	memory, _, err := r.deviceDriver.AllocateMemory(nil, core1_0.MemoryAllocateInfo{
		AllocationSize:  memRequirements.Size,
		MemoryTypeIndex: memoryTypeIndex,
	})
	if err != nil {
		return buffer, core1_0.DeviceMemory{}, err
	}

	_, err = r.deviceDriver.BindBufferMemory(buffer, memory, 0)
	return buffer, memory, err
}

func (r *Renderer) findMemoryType(typeFilter uint32, properties core1_0.MemoryPropertyFlags) (int, error) {
	memProperties := r.instanceDriver.GetPhysicalDeviceMemoryProperties(r.physicalDevice)
	for i, memoryType := range memProperties.MemoryTypes {
		typeBit := uint32(1 << i)
		if typeFilter&typeBit != 0 && memoryType.PropertyFlags&properties == properties {
			return i, nil
		}
	}
	return 0, errors.Errorf("no suitable memory type for filter %#x", typeFilter)
}

func (r *Renderer) createDescriptorPool() error {
	var err error
	r.descriptorPool, _, err = r.deviceDriver.CreateDescriptorPool(nil, core1_0.DescriptorPoolCreateInfo{
		MaxSets: len(r.swapchainImages),
		PoolSizes: []core1_0.DescriptorPoolSize{
			{
				Type:            core1_0.DescriptorTypeUniformBuffer,
				DescriptorCount: len(r.swapchainImages),
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating the descriptor pool")
	}
	return nil
}

// createDescriptorSets allocates one set per swapchain image, all against
// the same layout, and points each at that image's uniform buffer.
func (r *Renderer) createDescriptorSets() error {
	allocLayouts := make([]core1_0.DescriptorSetLayout, len(r.swapchainImages))
	for i := range allocLayouts {
		allocLayouts[i] = r.descriptorSetLayout
	}

	var err error
	r.descriptorSets, _, err = r.deviceDriver.AllocateDescriptorSets(core1_0.DescriptorSetAllocateInfo{
		DescriptorPool: r.descriptorPool,
		SetLayouts:     allocLayouts,
	})
	if err != nil {
		return errors.Wrap(err, "allocating descriptor sets")
	}

	for i := range r.descriptorSets {
		err = r.deviceDriver.UpdateDescriptorSets([]core1_0.WriteDescriptorSet{
			{
				DstSet:          r.descriptorSets[i],
				DstBinding:      0,
				DstArrayElement: 0,

				DescriptorType: core1_0.DescriptorTypeUniformBuffer,

				BufferInfo: []core1_0.DescriptorBufferInfo{
					{
						Buffer: r.uniformBuffers[i],
						Offset: 0,
						Range:  int(unsafe.Sizeof(FragmentUniforms{})),
					},
				},
			},
		}, nil)
		if err != nil {
			return errors.Wrapf(err, "writing descriptor set %d", i)
		}
	}
	return nil
}

// writeUniforms maps the image's uniform memory, writes the block, and
// unmaps. Callers must hold the acquire/fence guarantee that no submitted
// frame is still reading this buffer.
func (r *Renderer) writeUniforms(imageIndex int, uniforms FragmentUniforms) error {
	size := binary.Size(uniforms)
	memory := r.uniformBuffersMemory[imageIndex]

	ptr, _, err := r.deviceDriver.MapMemory(memory, 0, size, 0)
	if err != nil {
		return errors.Wrapf(err, "mapping uniform memory for image %d", imageIndex)
	}
	defer r.deviceDriver.UnmapMemory(memory)

	buf := &bytes.Buffer{}
	if err := binary.Write(buf, common.ByteOrder, uniforms); err != nil {
		return errors.Wrap(err, "encoding uniforms")
	}
	copy(unsafe.Slice((*byte)(ptr), size), buf.Bytes())
	return nil
}
