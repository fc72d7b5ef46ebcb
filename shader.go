// shader.go
package csgr

import (
	"os"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// loadShaderModule reads a pre-compiled SPIR-V blob from path and wraps it in
// a shader module. The blob is opaque to this package; only its length is
// checked.
func (r *Renderer) loadShaderModule(path string) (core1_0.ShaderModule, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(err, "reading shader binary %q", path)
	}
	if len(blob) == 0 || len(blob)%4 != 0 {
		return core1_0.ShaderModule{}, errors.Errorf("shader binary %q is not valid SPIR-V (%d bytes)", path, len(blob))
	}

	module, _, err := r.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: bytesToBytecode(blob),
	})
	if err != nil {
		return core1_0.ShaderModule{}, errors.Wrapf(err, "creating shader module from %q", path)
	}
	return module, nil
}

// bytesToBytecode reinterprets a little-endian SPIR-V byte blob as words.
func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = uint32(b[byteIndex]) |
			uint32(b[byteIndex+1])<<8 |
			uint32(b[byteIndex+2])<<16 |
			uint32(b[byteIndex+3])<<24
	}
	return byteCode
}
