package iso8583

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Message is one ISO 8583 message instance bound to a Family. It holds only
// the values that vary per instance (MTI, header values, data field
// values); the field/header definitions and wire layout live on the shared
// Family and are never copied. A Message is safe for concurrent read access
// but Set/SetHeader calls must not race each other or a concurrent Bytes.
type Message struct {
	family  *Family
	mtiCode string
	header  map[string][]byte
	data    map[int][]byte
	bitmap  *Bitmap
	mu      sync.RWMutex
}

// MTI returns the message's 4-digit MTI code, or "" if none has been set.
func (m *Message) MTI() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mtiCode
}

// SetMTI assigns the message's MTI, accepting either a raw 4-digit code or
// a name previously registered with Family.DeclareMTI.
func (m *Message) SetMTI(mti string) error {
	code, err := m.family.resolveMTI(mti)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mtiCode = code
	return nil
}

// Set assigns a data field's value. A nil value removes the field (the
// null-sentinel convention); any other value, including an empty but
// non-nil slice, sets it. The value is validated against the field's
// content class but not yet padded or length-framed — that happens at
// Bytes time.
func (m *Message) Set(field int, value []byte) error {
	if field < 2 || field > MaxFields {
		return &Error{Kind: InvalidValue, Field: field, Offset: -1,
			Err: fmt.Errorf("field number %d out of range 2-%d", field, MaxFields)}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == nil {
		delete(m.data, field)
		_ = m.bitmap.Clear(field)
		return nil
	}
	def, ok := m.family.Field(field)
	if !ok {
		return &Error{Kind: UnknownField, Field: field, Offset: -1,
			Err: fmt.Errorf("field %d has no schema definition", field)}
	}
	if _, err := def.Codec.Class().Encode(value, 0, def.Codec.Padding()); err != nil {
		if ie, ok := err.(*Error); ok {
			ie.Field = field
			return ie
		}
		return err
	}
	m.data[field] = value
	_ = m.bitmap.Set(field)
	return nil
}

// SetString is a convenience wrapper around Set for text-valued fields.
func (m *Message) SetString(field int, value string) error {
	return m.Set(field, []byte(value))
}

// Get returns a data field's raw value and whether it is present.
func (m *Message) Get(field int) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[field]
	return v, ok
}

// GetString is a convenience wrapper around Get for text-valued fields.
func (m *Message) GetString(field int) (string, bool) {
	v, ok := m.Get(field)
	if !ok {
		return "", false
	}
	return string(v), true
}

// SetHeader assigns a header section value by name; nil removes it.
func (m *Message) SetHeader(name string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if value == nil {
		delete(m.header, name)
		return nil
	}
	def, ok := m.family.Header(name)
	if !ok {
		return &Error{Kind: UnknownField, Section: name, Offset: -1,
			Err: fmt.Errorf("header %q has no schema definition", name)}
	}
	if _, err := def.Codec.Class().Encode(value, 0, def.Codec.Padding()); err != nil {
		if ie, ok := err.(*Error); ok {
			ie.Section = name
			return ie
		}
		return err
	}
	m.header[name] = value
	return nil
}

// Header returns a header section's raw value and whether it is present.
func (m *Message) Header(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.header[name]
	return v, ok
}

// Alias looks up a data field by a string alias registered with
// Family.DeclareAlias.
func (m *Message) Alias(alias string) ([]byte, bool) {
	field, ok := m.family.ResolveAlias(alias)
	if !ok {
		return nil, false
	}
	return m.Get(field)
}

// SetAlias sets a data field by its registered alias.
func (m *Message) SetAlias(alias string, value []byte) error {
	field, ok := m.family.ResolveAlias(alias)
	if !ok {
		return &Error{Kind: UnknownField, Offset: -1, Err: fmt.Errorf("alias %q not registered", alias)}
	}
	return m.Set(field, value)
}

// HasField reports whether a data field is present.
func (m *Message) HasField(field int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[field]
	return ok
}

func (m *Message) presentFieldsLocked() []int {
	out := make([]int, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// PresentFields returns the data field numbers set on this message, in
// ascending order.
func (m *Message) PresentFields() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.presentFieldsLocked()
}

// Family returns the schema this message is bound to.
func (m *Message) Family() *Family { return m.family }

// Bytes serializes the message using its Family's default Layout.
func (m *Message) Bytes() ([]byte, error) {
	return m.BytesWithLayout(m.family.Layout())
}

// BytesWithLayout serializes the message using an explicit Layout,
// overriding the Family's default (e.g. to add a header the Family itself
// doesn't always carry).
func (m *Message) BytesWithLayout(layout *Layout) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.mtiCode == "" {
		return nil, &Error{Kind: MissingMti, Section: "mti", Offset: -1, Err: fmt.Errorf("message has no MTI set")}
	}

	buf := getBuffer()
	defer putBuffer(buf)

	for _, section := range layout.orderedSections() {
		switch section {
		case sectionMTI:
			mtiWire, err := mtiCodec.Encode([]byte(m.mtiCode))
			if err != nil {
				if ie, ok := err.(*Error); ok {
					ie.Section = "mti"
					return nil, ie
				}
				return nil, err
			}
			buf = append(buf, mtiWire...)

		case sectionHeader:
			for _, name := range m.family.headerNames() {
				val, ok := m.header[name]
				if !ok {
					continue
				}
				def, _ := m.family.Header(name)
				wire, err := def.Codec.Encode(val)
				if err != nil {
					if ie, ok := err.(*Error); ok {
						ie.Section = name
						return nil, ie
					}
					return nil, err
				}
				buf = append(buf, wire...)
			}

		case sectionBitmapData:
			bmp := NewBitmap()
			for field := range m.data {
				if err := bmp.Set(field); err != nil {
					return nil, err
				}
			}
			bmpWire, err := bmp.Encode(layout.BitmapMode)
			if err != nil {
				return nil, err
			}
			buf = append(buf, bmpWire...)

			for _, field := range m.presentFieldsLocked() {
				def, ok := m.family.Field(field)
				if !ok {
					return nil, &Error{Kind: UnknownField, Field: field, Offset: -1,
						Err: fmt.Errorf("field %d has no schema definition", field)}
				}
				wire, err := def.Codec.Encode(m.data[field])
				if err != nil {
					if ie, ok := err.(*Error); ok {
						ie.Field = field
						return nil, ie
					}
					return nil, err
				}
				buf = append(buf, wire...)
			}
		}
	}

	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

// Parse decodes a raw message using the Family's default Layout.
func (f *Family) Parse(data []byte) (*Message, error) {
	return f.ParseWithLayout(data, f.Layout())
}

// ParseWithLayout decodes a raw message using an explicit Layout.
func (f *Family) ParseWithLayout(data []byte, layout *Layout) (*Message, error) {
	msg := &Message{
		family: f,
		data:   make(map[int][]byte),
		header: make(map[string][]byte),
		bitmap: NewBitmap(),
	}
	offset := 0

	for _, section := range layout.orderedSections() {
		switch section {
		case sectionHeader:
			for _, name := range f.headerNames() {
				def, _ := f.Header(name)
				val, n, err := def.Codec.Parse(data[offset:])
				if err != nil {
					if ie, ok := err.(*Error); ok {
						ie.Section = name
						return nil, ie
					}
					return nil, err
				}
				msg.header[name] = val
				offset += n
			}

		case sectionMTI:
			mtiVal, n, err := mtiCodec.Parse(data[offset:])
			if err != nil {
				if ie, ok := err.(*Error); ok {
					ie.Section = "mti"
					return nil, ie
				}
				return nil, err
			}
			offset += n

			code, err := f.resolveMTI(string(mtiVal))
			if err != nil {
				return nil, err
			}
			msg.mtiCode = code

		case sectionBitmapData:
			consumed, err := msg.bitmap.Decode(data[offset:], layout.BitmapMode)
			if err != nil {
				return nil, err
			}
			offset += consumed

			for _, field := range msg.bitmap.PresentFields() {
				def, ok := f.Field(field)
				if !ok {
					return nil, &Error{Kind: UnknownField, Field: field, Offset: offset,
						Err: fmt.Errorf("field %d set in bitmap but not declared in schema", field)}
				}
				val, n, err := def.Codec.Parse(data[offset:])
				if err != nil {
					if ie, ok := err.(*Error); ok {
						ie.Field = field
						ie.Offset = offset
						return nil, ie
					}
					return nil, err
				}
				msg.data[field] = val
				offset += n
			}
		}
	}

	if offset != len(data) {
		return nil, &Error{Kind: TrailingData, Offset: offset,
			Err: fmt.Errorf("%d trailing byte(s) after last declared field", len(data)-offset)}
	}

	return msg, nil
}

// Validate runs the Family's attached business-rule validator, if any.
func (m *Message) Validate() error {
	m.mu.RLock()
	v := m.family.validator
	m.mu.RUnlock()
	if v == nil {
		return nil
	}
	return v.ValidateMessage(m)
}

// Describe renders a human-readable summary of the message: MTI, header
// values, and data fields by name, expanding DE 55 as TLV sub-elements
// when it parses as one.
func (m *Message) Describe() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "MTI: %s", m.mtiCode)
	if name, ok := m.family.MTIName(m.mtiCode); ok {
		fmt.Fprintf(&b, " (%s)", name)
	}
	b.WriteByte('\n')

	for _, name := range m.family.headerNames() {
		if val, ok := m.header[name]; ok {
			fmt.Fprintf(&b, "header %s: %q\n", name, val)
		}
	}

	for _, field := range m.presentFieldsLocked() {
		def, _ := m.family.Field(field)
		label := fmt.Sprintf("DE%d", field)
		if def != nil && def.Name != "" {
			label = fmt.Sprintf("DE%d (%s)", field, def.Name)
		}
		val := m.data[field]
		if field == 55 {
			if tlvs, err := ParseTLV(val); err == nil {
				fmt.Fprintf(&b, "%s: %d TLV element(s)\n", label, len(tlvs))
				for _, t := range tlvs {
					fmt.Fprintf(&b, "  tag %X: %X\n", t.Tag, t.Value)
				}
				continue
			}
		}
		if def != nil {
			if dtc, ok := def.Codec.Class().(dateTimeClass); ok {
				if rendered, err := describeDateTime(dtc.layout, val); err == nil {
					fmt.Fprintf(&b, "%s: %s\n", label, rendered)
					continue
				}
			}
		}
		fmt.Fprintf(&b, "%s: %q\n", label, val)
	}
	return b.String()
}

// LogValue implements slog.LogValuer for structured logging of a message.
func (m *Message) LogValue() slog.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields := m.presentFieldsLocked()
	fieldArgs := make([]any, 0, len(fields))
	for _, field := range fields {
		fieldArgs = append(fieldArgs, slog.String(strconv.Itoa(field), string(m.data[field])))
	}

	return slog.GroupValue(
		slog.String("mti", m.mtiCode),
		slog.Group("fields", fieldArgs...),
	)
}
