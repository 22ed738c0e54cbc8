// Package vertex packs vecmath vectors into GPU vertex and uniform buffers.
//
// Positions are stored as tightly packed little-endian float32 pairs that
// match the layout returned by [Layout]. The embedded WGSL program
// (shaders/transform.wgsl) draws such a buffer through a vecmath.Matrix
// supplied with [TransformUniform].
package vertex

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vecmath"
)

// Stride is the byte size of one packed position.
const Stride = 8

// UniformSize is the byte size of the transform uniform block.
const UniformSize = 64

// ErrShortBuffer is returned by Unpack when the input is not a whole
// number of positions.
var ErrShortBuffer = errors.New("vertex: buffer length is not a multiple of stride")

// Layout returns the vertex buffer layout for packed positions:
// one Float32x2 attribute at shader location 0.
func Layout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: Stride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// Pack encodes points as float32 pairs.
func Pack(points []vecmath.Vec2) []byte {
	return AppendPacked(make([]byte, 0, len(points)*Stride), points)
}

// AppendPacked appends the encoding of points to dst.
func AppendPacked(dst []byte, points []vecmath.Vec2) []byte {
	for _, p := range points {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(p.X)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(p.Y)))
	}
	return dst
}

// Unpack decodes a buffer produced by Pack.
func Unpack(data []byte) ([]vecmath.Vec2, error) {
	if len(data)%Stride != 0 {
		return nil, fmt.Errorf("unpack %d bytes: %w", len(data), ErrShortBuffer)
	}
	points := make([]vecmath.Vec2, len(data)/Stride)
	for i := range points {
		off := i * Stride
		points[i] = vecmath.Vec2{
			X: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))),
			Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:]))),
		}
	}
	return points, nil
}

// TransformUniform encodes the uniform block read by the transform shader.
// m maps vertex positions to pixel coordinates in a viewport of the given
// size (origin top-left, y down).
func TransformUniform(m vecmath.Matrix, viewport vecmath.Vec2, c color.Color) []byte {
	r, g, b, a := c.RGBA()
	words := [UniformSize / 4]float32{
		float32(m.A), float32(m.B), float32(m.C), 0,
		float32(m.D), float32(m.E), float32(m.F), 0,
		float32(viewport.X), float32(viewport.Y), 0, 0,
		float32(r) / 0xffff, float32(g) / 0xffff, float32(b) / 0xffff, float32(a) / 0xffff,
	}

	buf := make([]byte, 0, UniformSize)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(w))
	}
	return buf
}
