package iso8583

import "fmt"

// Kind is the closed set of error kinds the codec can raise, per the
// error handling design: every failure belongs to exactly one of these.
type Kind int

const (
	// UnknownField: Set/Get against a key with no schema definition.
	UnknownField Kind = iota
	// UnknownMti: MTI assignment to a code or name not registered.
	UnknownMti
	// MissingMti: serialize called with no MTI set.
	MissingMti
	// InvalidValue: content class violated during encode or parse.
	InvalidValue
	// LengthOverflow: declared length bound exceeded.
	LengthOverflow
	// LengthUnderflow: fixed value is under-length and no padding rescues it.
	LengthUnderflow
	// Truncated: parse ran out of bytes mid-section.
	Truncated
	// TrailingData: parse succeeded but bytes remained.
	TrailingData
	// SchemaConflict: duplicate MTI name or number at family declaration time.
	SchemaConflict
)

func (k Kind) String() string {
	switch k {
	case UnknownField:
		return "unknown_field"
	case UnknownMti:
		return "unknown_mti"
	case MissingMti:
		return "missing_mti"
	case InvalidValue:
		return "invalid_value"
	case LengthOverflow:
		return "length_overflow"
	case LengthUnderflow:
		return "length_underflow"
	case Truncated:
		return "truncated"
	case TrailingData:
		return "trailing_data"
	case SchemaConflict:
		return "schema_conflict"
	default:
		return "unknown"
	}
}

// Error makes a bare Kind usable as an errors.Is target (see Error.Is).
func (k Kind) Error() string { return k.String() }

// Error is the error type returned by every codec operation. Section names
// (e.g. "mti", "bitmap", or a header name such as "tpdu") fill Section when the failure isn't
// tied to a numbered data field.
type Error struct {
	Kind    Kind
	Field   int    // data field number, 0 if not applicable
	Section string // section/header name when Field is 0
	Offset  int    // byte offset within the message, -1 if not applicable
	Err     error  // underlying cause, if any
}

func (e *Error) Error() string {
	where := e.Section
	if e.Field != 0 {
		where = fmt.Sprintf("field %d", e.Field)
	}
	if where == "" {
		where = "message"
	}
	if e.Offset >= 0 {
		if e.Err != nil {
			return fmt.Sprintf("iso8583: %s: %s at offset %d: %v", where, e.Kind, e.Offset, e.Err)
		}
		return fmt.Sprintf("iso8583: %s: %s at offset %d", where, e.Kind, e.Offset)
	}
	if e.Err != nil {
		return fmt.Sprintf("iso8583: %s: %s: %v", where, e.Kind, e.Err)
	}
	return fmt.Sprintf("iso8583: %s: %s", where, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is supports errors.Is(err, SomeKind) by treating a bare Kind value as a
// sentinel that matches any *Error carrying that Kind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// ValidationError is raised by the optional business-rule validator in
// validation.go, layered above the core length/character-class checks.
type ValidationError struct {
	Field   int
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %d (%s): %s", ve.Field, ve.Rule, ve.Message)
}

// TLVError is raised by tlv.go while decoding BER-TLV sub-elements.
type TLVError struct {
	Tag []byte
	Err error
}

func (te *TLVError) Error() string {
	return fmt.Sprintf("TLV tag %x: %v", te.Tag, te.Err)
}
