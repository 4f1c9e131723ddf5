// Package iso8583 encodes and decodes ISO 8583 financial transaction
// messages: the wire format used between payment terminals, acquirers,
// card schemes and issuers.
//
// A host application declares a message family with NewFamily, registers
// its MTI table, declares header and data field definitions, and
// gets back a schema that can serialize Message values to bytes and parse
// bytes back into Message values, byte-exact against the declared layout.
// Every family encodes its MTI with the same fixed 4-digit numeric ASCII
// codec; a family cannot supply a different MTI codec.
//
// Example:
//
//	family := iso8583.NewStandardFamily("acquirer")
//	msg, err := family.New("0200")
//	msg.Set(2, []byte("474747474747"))
//	msg.Set(3, []byte("000000"))
//	data, err := msg.Bytes()
//
//	parsed, err := family.Parse(data)
package iso8583

// Version identifies the schema/wire format revision implemented here.
const Version = "1.0.0"

// MaxFields is the highest data field number addressable by a single
// (primary+secondary) bitmap.
const MaxFields = 128
