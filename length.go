package iso8583

import "fmt"

// Length is the length-framing half of a field codec: given an encoded
// payload from a Class, it decides how many bytes of length prefix (if any)
// precede the payload on the wire, and how to recover the payload's extent
// while parsing. Pairing a Length with a Class is what makes a Codec.
type Length interface {
	// Name identifies the discipline, e.g. "FIXED:19", "LLVAR", "LLLVAR".
	Name() string
	// Frame writes the length prefix (if any) plus payload into wire form.
	Frame(payload []byte) ([]byte, error)
	// Unframe reads one field's worth of bytes starting at buf[0], returning
	// the payload (without any length prefix) and the number of bytes of
	// buf consumed (prefix + payload).
	Unframe(buf []byte) (payload []byte, consumed int, err error)
	// MaxWidth returns the largest payload width this discipline can frame;
	// for fixed fields this is the exact width.
	MaxWidth() int
}

// fixedLength is a length discipline with a single, unprefixed width: the payload
// from Class.Encode is always exactly width bytes, no length digits appear
// on the wire at all.
type fixedLength struct{ width int }

// FixedLen returns a length discipline for a field whose wire width never
// varies and carries no length prefix.
func FixedLen(width int) Length { return fixedLength{width: width} }

func (f fixedLength) Name() string { return fmt.Sprintf("FIXED:%d", f.width) }
func (f fixedLength) MaxWidth() int { return f.width }

func (f fixedLength) Frame(payload []byte) ([]byte, error) {
	if len(payload) > f.width {
		return nil, &Error{Kind: LengthOverflow, Offset: -1,
			Err: fmt.Errorf("fixed field payload is %d bytes, want %d", len(payload), f.width)}
	}
	if len(payload) < f.width {
		return nil, &Error{Kind: LengthUnderflow, Offset: -1,
			Err: fmt.Errorf("fixed field payload is %d bytes, want %d", len(payload), f.width)}
	}
	return payload, nil
}

func (f fixedLength) Unframe(buf []byte) ([]byte, int, error) {
	if len(buf) < f.width {
		return nil, 0, &Error{Kind: Truncated, Offset: -1,
			Err: fmt.Errorf("need %d bytes for fixed field, have %d", f.width, len(buf))}
	}
	return buf[:f.width], f.width, nil
}

// varLength is an ASCII-decimal length-prefixed discipline: digits decimal
// digits precede the payload, e.g. digits=2 is LLVAR, digits=3 is LLLVAR.
type varLength struct {
	digits int
	max    int
}

// LLVar returns the standard 2-digit ASCII length-prefixed discipline
// (payload 0-99 bytes).
func LLVar() Length { return varLength{digits: 2, max: 99} }

// LLLVar returns the standard 3-digit ASCII length-prefixed discipline
// (payload 0-999 bytes).
func LLLVar() Length { return varLength{digits: 3, max: 999} }

// VarLen returns an ASCII length-prefixed discipline with an arbitrary
// number of decimal digits, for non-standard schemas (e.g. LLLLVAR).
func VarLen(digits int) Length {
	max := 1
	for i := 0; i < digits; i++ {
		max *= 10
	}
	return varLength{digits: digits, max: max - 1}
}

func (v varLength) Name() string {
	switch v.digits {
	case 2:
		return "LLVAR"
	case 3:
		return "LLLVAR"
	default:
		return fmt.Sprintf("VAR%d", v.digits)
	}
}

func (v varLength) MaxWidth() int { return v.max }

func (v varLength) Frame(payload []byte) ([]byte, error) {
	if len(payload) > v.max {
		return nil, &Error{Kind: LengthOverflow, Offset: -1,
			Err: fmt.Errorf("%s payload of %d bytes exceeds max %d", v.Name(), len(payload), v.max)}
	}
	prefix := make([]byte, v.digits)
	n := len(payload)
	for i := v.digits - 1; i >= 0; i-- {
		prefix[i] = byte('0' + n%10)
		n /= 10
	}
	out := make([]byte, 0, v.digits+len(payload))
	out = append(out, prefix...)
	out = append(out, payload...)
	return out, nil
}

func (v varLength) Unframe(buf []byte) ([]byte, int, error) {
	if len(buf) < v.digits {
		return nil, 0, &Error{Kind: Truncated, Offset: -1,
			Err: fmt.Errorf("need %d length-prefix digits, have %d bytes", v.digits, len(buf))}
	}
	n := 0
	for i := 0; i < v.digits; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			return nil, 0, &Error{Kind: InvalidValue, Offset: -1,
				Err: fmt.Errorf("%s length prefix %q is not numeric", v.Name(), buf[:v.digits])}
		}
		n = n*10 + int(c-'0')
	}
	if n > v.max {
		return nil, 0, &Error{Kind: LengthOverflow, Offset: -1,
			Err: fmt.Errorf("%s declared length %d exceeds max %d", v.Name(), n, v.max)}
	}
	end := v.digits + n
	if len(buf) < end {
		return nil, 0, &Error{Kind: Truncated, Offset: -1,
			Err: fmt.Errorf("%s declared length %d, only %d bytes remain", v.Name(), n, len(buf)-v.digits)}
	}
	return buf[v.digits:end], end, nil
}
