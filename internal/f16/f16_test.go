package f16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat32KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   Bits
		want float32
	}{
		{"+0", PositiveZero, 0},
		{"+1", One, 1},
		{"-1", 0xBC00, -1},
		{"max", MaxValue, 65504},
		{"min-subnormal", 0x0001, float32(math.Ldexp(1, -24))},
		{"max-subnormal", 0x03FF, float32(math.Ldexp(1023, -24))},
		{"min-normal", 0x0400, float32(math.Ldexp(1, -14))},
		{"+Inf", PositiveInf, float32(math.Inf(1))},
		{"-Inf", NegativeInf, float32(math.Inf(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Float32())
			assert.Equal(t, tt.in, FromFloat32(tt.want))
		})
	}
}

func TestNegativeZero(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	assert.Equal(t, math.Float32bits(negZero), math.Float32bits(NegativeZero.Float32()))
	assert.Equal(t, NegativeZero, FromFloat32(negZero))
}

func TestNaN(t *testing.T) {
	assert.True(t, math.IsNaN(float64(QuietNaN.Float32())))
	h := FromFloat32(float32(math.NaN()))
	assert.True(t, h.IsNaN())
	assert.False(t, PositiveInf.IsNaN())
	assert.True(t, NegativeInf.IsInf())
}

// Every binary16 pattern must survive a trip through float32.
func TestAllPatternsRoundTrip(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		h := Bits(i)
		got := FromFloat32(h.Float32())
		if h.IsNaN() {
			require.True(t, got.IsNaN(), "pattern %04x", i)
			continue
		}
		require.Equal(t, h, got, "pattern %04x", i)
	}
}

func TestRoundingTiesToEven(t *testing.T) {
	step := float32(math.Ldexp(1, -10))

	assert.Equal(t, One, FromFloat32(1+step/2))
	assert.Equal(t, Bits(0x3C02), FromFloat32(1+step+step/2))

	// 65520 is halfway between the max finite value and 65536.
	assert.Equal(t, PositiveInf, FromFloat32(65520))
	assert.Equal(t, MaxValue, FromFloat32(65519))

	// 2^-25 is halfway between zero and the smallest subnormal.
	assert.Equal(t, PositiveZero, FromFloat32(float32(math.Ldexp(1, -25))))
	assert.Equal(t, Bits(0x0001), FromFloat32(float32(math.Ldexp(1.5, -25))))
}

func TestExact32(t *testing.T) {
	_, ok := Exact32(0.5)
	assert.True(t, ok)
	_, ok = Exact32(0.1)
	assert.False(t, ok)
	_, ok = Exact32(70000)
	assert.False(t, ok)
	_, ok = Exact32(float32(math.Copysign(0, -1)))
	assert.True(t, ok)
}

func TestLittleEndian(t *testing.T) {
	b := AppendLE(nil, One)
	assert.Equal(t, []byte{0x00, 0x3C}, b)
	assert.Equal(t, One, LoadLE(b))
}
