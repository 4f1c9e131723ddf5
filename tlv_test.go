package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTLVShortForm(t *testing.T) {
	var buf = []byte{0x9F, 0x02, 0x06, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00}
	var elements, err = ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, []byte{0x9F, 0x02}, elements[0].Tag)
	assert.Equal(t, 6, len(elements[0].Value))
}

func TestParseTLVMultipleElements(t *testing.T) {
	var buf = []byte{
		0x9F, 0x02, 0x02, 0x00, 0x01,
		0x5F, 0x2A, 0x01, 0x08,
	}
	var elements, err = ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 2)
	assert.Equal(t, []byte{0x00, 0x01}, elements[0].Value)
	assert.Equal(t, []byte{0x08}, elements[1].Value)
}

func TestParseTLVLongFormLength(t *testing.T) {
	var value = make([]byte, 200)
	var buf = append([]byte{0x5F, 0x2A, 0x81, 0xC8}, value...)
	var elements, err = ParseTLV(buf)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, 200, len(elements[0].Value))
}

func TestParseTLVTruncated(t *testing.T) {
	var _, err = ParseTLV([]byte{0x9F, 0x02, 0x06, 0x00})
	require.Error(t, err)

	var te *TLVError
	require.ErrorAs(t, err, &te)
}

func TestPackTLVRoundTrip(t *testing.T) {
	var elements = []TLV{
		{Tag: []byte{0x9F, 0x02}, Value: []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00}},
	}
	var buf = make([]byte, 32)
	var n, err = PackTLV(elements, buf)
	require.NoError(t, err)

	var parsed, parseErr = ParseTLV(buf[:n])
	require.NoError(t, parseErr)
	require.Len(t, parsed, 1)
	assert.Equal(t, elements[0].Value, parsed[0].Value)
}

func TestPackTLVBufferTooSmall(t *testing.T) {
	var elements = []TLV{{Tag: []byte{0x9F, 0x02}, Value: []byte{0x01, 0x02, 0x03}}}
	var buf = make([]byte, 2)
	var _, err = PackTLV(elements, buf)
	require.Error(t, err)
}
