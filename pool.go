// pool.go - Only for internal buffer reuse
package iso8583

import "sync"

// defaultMessageBufferSize covers a typical ISO 8583 message: MTI (4 bytes)
// + secondary bitmap (16 bytes) + a handful of LLVAR/LLLVAR fields, without
// reallocating for the common case.
const defaultMessageBufferSize = 512

var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, defaultMessageBufferSize)
		return &buf
	},
}

// Only pool buffers, not messages
func getBuffer() []byte {
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) <= 8192 { // Don't pool huge buffers
		b := buf[:0]
		bufferPool.Put(&b)
	}
}
