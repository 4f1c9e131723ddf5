package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmapSetIsSetClear(t *testing.T) {
	var bmp = NewBitmap()

	require.NoError(t, bmp.Set(2))
	require.NoError(t, bmp.Set(11))
	assert.True(t, bmp.IsSet(2))
	assert.True(t, bmp.IsSet(11))
	assert.False(t, bmp.IsSet(3))

	require.NoError(t, bmp.Clear(2))
	assert.False(t, bmp.IsSet(2))
}

func TestBitmapSecondaryIndicator(t *testing.T) {
	var bmp = NewBitmap()

	assert.False(t, bmp.HasSecondary())
	require.NoError(t, bmp.Set(100))
	assert.True(t, bmp.HasSecondary())
	assert.True(t, bmp.IsSet(100))
	assert.True(t, bmp.primary[0]&0x80 != 0)

	require.NoError(t, bmp.Clear(100))
	assert.False(t, bmp.HasSecondary())
}

func TestBitmapPresentFieldsOrder(t *testing.T) {
	var bmp = NewBitmap()
	for _, f := range []int{70, 3, 2, 64, 11} {
		require.NoError(t, bmp.Set(f))
	}
	assert.Equal(t, []int{2, 3, 11, 64, 70}, bmp.PresentFields())
}

func TestBitmapEncodeHexRoundTrip(t *testing.T) {
	var bmp = NewBitmap()
	require.NoError(t, bmp.Set(2))
	require.NoError(t, bmp.Set(11))

	var wire, err = bmp.Encode(BitmapHex)
	require.NoError(t, err)
	assert.Equal(t, hexBitmapChars, len(wire))

	var decoded = NewBitmap()
	var consumed, decErr = decoded.Decode(wire, BitmapHex)
	require.NoError(t, decErr)
	assert.Equal(t, hexBitmapChars, consumed)
	assert.Equal(t, []int{2, 11}, decoded.PresentFields())
}

func TestBitmapEncodeBinaryRoundTripWithSecondary(t *testing.T) {
	var bmp = NewBitmap()
	require.NoError(t, bmp.Set(2))
	require.NoError(t, bmp.Set(100))

	var wire, err = bmp.Encode(BitmapBinary)
	require.NoError(t, err)
	assert.Equal(t, primaryBitmapBytes+secondaryBitmapBytes, len(wire))

	var decoded = NewBitmap()
	var consumed, decErr = decoded.Decode(wire, BitmapBinary)
	require.NoError(t, decErr)
	assert.Equal(t, primaryBitmapBytes+secondaryBitmapBytes, consumed)
	assert.Equal(t, []int{2, 100}, decoded.PresentFields())
}

func TestBitmapEncodeHexLiteral(t *testing.T) {
	var bmp = NewBitmap()
	require.NoError(t, bmp.Set(2))
	require.NoError(t, bmp.Set(4))

	var wire, err = bmp.Encode(BitmapHex)
	require.NoError(t, err)
	assert.Equal(t, "5000000000000000", string(wire))
}

func TestBitmapDecodeTruncated(t *testing.T) {
	var bmp = NewBitmap()
	var _, err = bmp.Decode([]byte{0x01, 0x02}, BitmapBinary)
	require.Error(t, err)

	var ie *Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, Truncated, ie.Kind)
}

func TestBitmapSetOutOfRange(t *testing.T) {
	var bmp = NewBitmap()
	require.Error(t, bmp.Set(0))
	require.Error(t, bmp.Set(129))
}

func TestBitmapReset(t *testing.T) {
	var bmp = NewBitmap()
	require.NoError(t, bmp.Set(2))
	require.NoError(t, bmp.Set(100))
	bmp.Reset()
	assert.Empty(t, bmp.PresentFields())
	assert.False(t, bmp.HasSecondary())
}
