package iso8583

import "sync"

// builderPool reuses Builder instances across message construction calls,
// following the same only-pool-the-reusable-wrapper discipline as pool.go.
var builderPool = sync.Pool{
	New: func() interface{} {
		return &Builder{errs: make([]error, 0, 4)}
	},
}

// Builder is a fluent, error-accumulating alternative to repeated
// Message.Set calls: every method records its first error and keeps going,
// so a long chain of field assignments can be written without checking an
// error after each one. Build returns the first error encountered, if any.
type Builder struct {
	family *Family
	msg    *Message
	errs   []error
}

// NewBuilder starts building a message for family with the given MTI.
func NewBuilder(family *Family, mti string) *Builder {
	b := builderPool.Get().(*Builder)
	b.errs = b.errs[:0]
	b.family = family
	msg, err := family.New(mti)
	b.msg = msg
	if err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// Release returns the Builder to the pool. The Builder must not be used
// after Release; the Message it produced is unaffected.
func (b *Builder) Release() {
	b.family = nil
	b.msg = nil
	b.errs = b.errs[:0]
	builderPool.Put(b)
}

// Field sets a data field, recording (not returning) any error.
func (b *Builder) Field(fieldNum int, value []byte) *Builder {
	if err := b.msg.Set(fieldNum, value); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// FieldString sets a data field from a string, recording any error.
func (b *Builder) FieldString(fieldNum int, value string) *Builder {
	return b.Field(fieldNum, []byte(value))
}

// Header sets a header section value, recording any error.
func (b *Builder) Header(name string, value []byte) *Builder {
	if err := b.msg.SetHeader(name, value); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// PAN sets field 2, the primary account number.
func (b *Builder) PAN(pan string) *Builder { return b.FieldString(2, pan) }

// ProcessingCode sets field 3.
func (b *Builder) ProcessingCode(code string) *Builder { return b.FieldString(3, code) }

// Amount sets field 4, the transaction amount.
func (b *Builder) Amount(amount string) *Builder { return b.FieldString(4, amount) }

// STAN sets field 11, the system trace audit number.
func (b *Builder) STAN(stan string) *Builder { return b.FieldString(11, stan) }

// Build returns the constructed Message, or the first error recorded
// during the chain.
func (b *Builder) Build() (*Message, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return b.msg, nil
}

// MustBuild returns the constructed Message, panicking on the first
// recorded error.
func (b *Builder) MustBuild() *Message {
	if len(b.errs) > 0 {
		panic(b.errs[0])
	}
	return b.msg
}
