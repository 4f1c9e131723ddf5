package iso8583

// MsgOption customizes a Message at construction time, applied by
// Family.New after the MTI is resolved.
type MsgOption func(*Message) error

// WithField sets a data field's value as part of construction.
func WithField(field int, value []byte) MsgOption {
	return func(m *Message) error { return m.Set(field, value) }
}

// WithString sets a data field's value from a string as part of construction.
func WithString(field int, value string) MsgOption {
	return func(m *Message) error { return m.SetString(field, value) }
}

// WithHeaderValue sets a header section's value as part of construction.
func WithHeaderValue(name string, value []byte) MsgOption {
	return func(m *Message) error { return m.SetHeader(name, value) }
}
