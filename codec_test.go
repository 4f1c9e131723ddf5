package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecEncodeParseFixedNumeric(t *testing.T) {
	var codec = NewCodec(N(), FixedLen(6))

	var wire, err = codec.Encode([]byte("42"))
	require.NoError(t, err)
	assert.Equal(t, "000042", string(wire))

	var value, consumed, parseErr = codec.Parse(append(wire, []byte("trailing")...))
	require.NoError(t, parseErr)
	assert.Equal(t, "000042", string(value))
	assert.Equal(t, 6, consumed)
}

func TestCodecEncodeParseLLVarAlpha(t *testing.T) {
	var codec = NewCodec(ANS(), LLVar())

	var wire, err = codec.Encode([]byte("hi there"))
	require.NoError(t, err)
	assert.Equal(t, "08hi there", string(wire))

	var value, consumed, parseErr = codec.Parse(wire)
	require.NoError(t, parseErr)
	assert.Equal(t, "hi there", string(value))
	assert.Equal(t, len(wire), consumed)
}

func TestCodecWithPaddingOverride(t *testing.T) {
	var codec = NewCodec(AN(), FixedLen(4), WithPadding(PadLeftZero))
	assert.Equal(t, PadLeftZero, codec.Padding())
}

func TestCodecDefaultPaddingFromClass(t *testing.T) {
	var codec = NewCodec(N(), FixedLen(4))
	assert.Equal(t, PadLeftZero, codec.Padding())

	var ansCodec = NewCodec(ANS(), FixedLen(4))
	assert.Equal(t, PadRightSpace, ansCodec.Padding())
}

func TestCodecStripPadding(t *testing.T) {
	var codec = NewCodec(ANS(), FixedLen(8))
	var wire, err = codec.Encode([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "hi", string(codec.StripPadding(wire)))
}

func TestCodecString(t *testing.T) {
	var codec = NewCodec(N(), LLVar())
	assert.Equal(t, "N/LLVAR/left-zero", codec.String())
}
