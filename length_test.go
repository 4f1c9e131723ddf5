package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedLengthFrameUnframe(t *testing.T) {
	var length = FixedLen(4)

	var wire, err = length.Frame([]byte("1234"))
	require.NoError(t, err)
	assert.Equal(t, "1234", string(wire))

	var payload, consumed, unErr = length.Unframe([]byte("1234rest"))
	require.NoError(t, unErr)
	assert.Equal(t, "1234", string(payload))
	assert.Equal(t, 4, consumed)
}

func TestFixedLengthWrongSize(t *testing.T) {
	var _, err = FixedLen(4).Frame([]byte("123"))
	require.Error(t, err)
}

func TestLLVarFrameUnframe(t *testing.T) {
	var length = LLVar()

	var wire, err = length.Frame([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "05hello", string(wire))

	var payload, consumed, unErr = length.Unframe([]byte("05hellotrailing"))
	require.NoError(t, unErr)
	assert.Equal(t, "hello", string(payload))
	assert.Equal(t, 7, consumed)
}

func TestLLLVarFrameUnframe(t *testing.T) {
	var length = LLLVar()

	var wire, err = length.Frame([]byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "004data", string(wire))
}

func TestLLVarExceedsMax(t *testing.T) {
	var long = make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	var _, err = LLVar().Frame(long)
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, LengthOverflow, ie.Kind)
}

func TestVarLenUnframeTruncated(t *testing.T) {
	var _, _, err = LLVar().Unframe([]byte("10ab"))
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, Truncated, ie.Kind)
}

func TestVarLenUnframeNonNumericPrefix(t *testing.T) {
	var _, _, err = LLVar().Unframe([]byte("XXhello"))
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, InvalidValue, ie.Kind)
}

func TestVarLenCustomDigits(t *testing.T) {
	var length = VarLen(4)
	assert.Equal(t, "VAR4", length.Name())
	assert.Equal(t, 9999, length.MaxWidth())

	var wire, err = length.Frame([]byte("ok"))
	require.NoError(t, err)
	assert.Equal(t, "0002ok", string(wire))
}

func TestLengthNames(t *testing.T) {
	assert.Equal(t, "FIXED:6", FixedLen(6).Name())
	assert.Equal(t, "LLVAR", LLVar().Name())
	assert.Equal(t, "LLLVAR", LLLVar().Name())
}
