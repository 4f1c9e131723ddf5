package iso8583

import "fmt"

// Codec is a complete field codec: a content Class wrapped by a Length
// framing discipline, plus the padding rule to apply when Class needs a
// fixed width. A FieldDef or HeaderDef embeds one Codec; Message.Set/Get
// and the layout engine go through it for every encode/parse.
type Codec struct {
	class   Class
	length  Length
	pad     PaddingRule
	padSet  bool
}

// NewCodec composes a content class and a length discipline into a field
// codec. By default the class's own DefaultPadding is used; override with
// WithPadding.
func NewCodec(class Class, length Length, opts ...Option) *Codec {
	c := &Codec{class: class, length: length}
	for _, opt := range opts {
		opt(c)
	}
	if !c.padSet {
		c.pad = class.DefaultPadding()
	}
	return c
}

// Option customizes a Codec at declaration time.
type Option func(*Codec)

// WithPadding overrides the content class's default padding rule.
func WithPadding(p PaddingRule) Option {
	return func(c *Codec) {
		c.pad = p
		c.padSet = true
	}
}

func (c *Codec) Class() Class   { return c.class }
func (c *Codec) Length() Length { return c.length }
func (c *Codec) Padding() PaddingRule { return c.pad }

// fixedWidth reports the width a fixed-length codec's class must produce,
// or 0 for variable-length codecs (the class picks its own natural size).
func (c *Codec) fixedWidth() int {
	if _, ok := c.length.(fixedLength); ok {
		return c.length.MaxWidth()
	}
	return 0
}

// Encode turns a host-level value into the wire bytes for this field,
// including any length prefix.
func (c *Codec) Encode(value []byte) ([]byte, error) {
	payload, err := c.class.Encode(value, c.fixedWidth(), c.pad)
	if err != nil {
		return nil, err
	}
	return c.length.Frame(payload)
}

// Parse reads one field's worth of wire bytes from the front of buf,
// returning the decoded host-level value and the number of bytes consumed.
func (c *Codec) Parse(buf []byte) (value []byte, consumed int, err error) {
	payload, n, err := c.length.Unframe(buf)
	if err != nil {
		return nil, 0, err
	}
	v, err := c.class.Decode(payload)
	if err != nil {
		return nil, 0, err
	}
	return v, n, nil
}

// StripPadding removes this codec's padding from an already-decoded value.
func (c *Codec) StripPadding(value []byte) []byte {
	return c.class.StripPadding(value, c.pad)
}

func (c *Codec) String() string {
	return fmt.Sprintf("%s/%s/%s", c.class.Name(), c.length.Name(), c.pad)
}
