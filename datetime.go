package iso8583

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/strftime"
)

// digitLayoutPatterns maps a DateTime content class's digit layout to the
// equivalent strftime pattern, used only by the convenience time.Time
// paths below — the wire form stays plain fixed-length numeric ASCII.
var digitLayoutPatterns = map[string]string{
	"YYMMDDhhmmss": "%y%m%d%H%M%S",
	"MMDDhhmmss":   "%m%d%H%M%S",
	"YYMMDD":       "%y%m%d",
	"MMDD":         "%m%d",
	"YYMM":         "%y%m",
	"hhmmss":       "%H%M%S",
}

// FormatDateTime renders t as the fixed-width digit string a
// DateTime(layout) class expects on the wire.
func FormatDateTime(layout string, t time.Time) ([]byte, error) {
	pattern, ok := digitLayoutPatterns[layout]
	if !ok {
		return nil, fmt.Errorf("iso8583: no strftime pattern registered for datetime layout %q", layout)
	}
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return nil, fmt.Errorf("iso8583: formatting datetime layout %q: %w", layout, err)
	}
	return []byte(s), nil
}

// SetTime sets a DateTime field's value from a time.Time, applying the
// field's registered digit layout via FormatDateTime. Returns InvalidValue
// if field is not declared with a DateTime content class.
func (m *Message) SetTime(field int, t time.Time) error {
	def, ok := m.family.Field(field)
	if !ok {
		return &Error{Kind: UnknownField, Field: field, Offset: -1,
			Err: fmt.Errorf("field %d has no schema definition", field)}
	}
	dtc, ok := def.Codec.Class().(dateTimeClass)
	if !ok {
		return &Error{Kind: InvalidValue, Field: field, Offset: -1,
			Err: fmt.Errorf("field %d is not a datetime field", field)}
	}
	digits, err := FormatDateTime(dtc.layout, t)
	if err != nil {
		return &Error{Kind: InvalidValue, Field: field, Offset: -1, Err: err}
	}
	return m.Set(field, digits)
}

// describeDateTime renders a datetime field's raw digits as a labeled
// integer for Message.Describe.
func describeDateTime(layout string, digits []byte) (string, error) {
	if len(digits) != len(layout) {
		return "", fmt.Errorf("digit count %d does not match layout %q", len(digits), layout)
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s=%0*d", layout, len(layout), n), nil
}
