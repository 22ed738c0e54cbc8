package vertex

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/vecmath"
)

// Shader entry points in shaders/transform.wgsl.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/transform.wgsl
var transformShaderWGSL string

// ShaderSource returns the WGSL source of the transform shader.
func ShaderSource() string {
	return transformShaderWGSL
}

// CompileShader compiles the transform shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(transformShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("vertex: compile transform shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("vertex: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	vecmath.Logger().Debug("vertex: compiled transform shader", "words", len(words))
	return words, nil
}
