package iso8583

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// FieldDef declares one data element's codec and whether it must be
// present for a message to pass Validate.
type FieldDef struct {
	Number    int
	Name      string
	Codec     *Codec
	Mandatory bool
}

// HeaderDef declares one header-section value (e.g. a TPDU), keyed by name
// rather than by a numbered data element.
type HeaderDef struct {
	Name  string
	Codec *Codec
}

// Family is an immutable, shared schema: the MTI table, the data-field and
// header definitions, and the wire Layout used to serialize and parse
// Message instances. Build one with NewFamily and the Declare* methods at
// startup; every Message it creates or parses references this same Family
// by pointer rather than cloning it.
type Family struct {
	name          string
	mtiCodeToName map[string]string
	mtiNameToCode map[string]string
	fields        map[int]*FieldDef
	headers       map[string]*HeaderDef
	aliases       map[string]int
	layout        *Layout
	validator     *CompiledValidator
	mu            sync.RWMutex
}

// NewFamily returns an empty Family with the default Layout (no header
// section, hex-encoded bitmap).
func NewFamily(name string) *Family {
	return &Family{
		name:          name,
		mtiCodeToName: make(map[string]string),
		mtiNameToCode: make(map[string]string),
		fields:        make(map[int]*FieldDef),
		headers:       make(map[string]*HeaderDef),
		aliases:       make(map[string]int),
		layout:        DefaultLayout(),
	}
}

// Name returns the Family's declared name.
func (f *Family) Name() string { return f.name }

// SetLayout replaces the Family's wire Layout.
func (f *Family) SetLayout(layout *Layout) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.layout = layout
}

// Layout returns the Family's current wire Layout.
func (f *Family) Layout() *Layout {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.layout
}

// SetValidator attaches a business-rule validator, consulted by
// Message.Validate.
func (f *Family) SetValidator(v *CompiledValidator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validator = v
}

// DeclareField registers or overwrites a data field definition.
// Redeclaring a field number silently overwrites the previous definition —
// a developer action taken at startup, not a runtime failure.
func (f *Family) DeclareField(def *FieldDef) error {
	if def.Number < 2 || def.Number > MaxFields {
		return &Error{Kind: InvalidValue, Section: "schema", Offset: -1,
			Err: fmt.Errorf("field number %d out of range 2-%d", def.Number, MaxFields)}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[def.Number] = def
	return nil
}

// Field returns the definition for a data field number, if declared.
func (f *Family) Field(number int) (*FieldDef, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	def, ok := f.fields[number]
	return def, ok
}

// Fields returns every declared field definition, ordered by field number.
func (f *Family) Fields() []*FieldDef {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*FieldDef, 0, len(f.fields))
	for _, def := range f.fields {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// DeclareHeader registers or overwrites a header section definition.
// Redeclaring a name silently overwrites, same rationale as DeclareField.
func (f *Family) DeclareHeader(def *HeaderDef) error {
	if def.Name == "" {
		return &Error{Kind: InvalidValue, Section: "schema", Offset: -1, Err: fmt.Errorf("header name must not be empty")}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.headers[def.Name] = def
	return nil
}

// Header returns the definition for a header name, if declared.
func (f *Family) Header(name string) (*HeaderDef, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	def, ok := f.headers[name]
	return def, ok
}

// headerNames returns declared header names in ascending order — the
// single order used for both serialize and parse.
func (f *Family) headerNames() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.headers))
	for name := range f.headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeclareAlias registers a string alias (e.g. "pan") for a data field
// number, so callers can use Message.Alias/SetAlias instead of the raw
// field number.
func (f *Family) DeclareAlias(alias string, fieldNumber int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aliases[alias] = fieldNumber
	return nil
}

// ResolveAlias returns the field number registered for alias, if any.
func (f *Family) ResolveAlias(alias string) (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n, ok := f.aliases[alias]
	return n, ok
}

// New creates a Message bound to this Family with the given MTI (a
// 4-digit code or a name previously registered with DeclareMTI), applying
// any MsgOptions in order. The first option (or MTI resolution) error
// encountered is returned via err; msg is still usable when err is set,
// mirroring how a builder accumulates the first failure instead of
// aborting construction outright.
func (f *Family) New(mti string, opts ...MsgOption) (msg *Message, err error) {
	msg = &Message{
		family: f,
		data:   make(map[int][]byte),
		header: make(map[string][]byte),
		bitmap: NewBitmap(),
	}
	if e := msg.SetMTI(mti); e != nil && err == nil {
		err = e
	}
	for _, opt := range opts {
		if e := opt(msg); e != nil && err == nil {
			err = e
		}
	}
	return msg, err
}

// LogValue implements slog.LogValuer, summarizing the schema without
// dumping the full field table.
func (f *Family) LogValue() slog.Value {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slog.GroupValue(
		slog.String("name", f.name),
		slog.Int("fields", len(f.fields)),
		slog.Int("headers", len(f.headers)),
		slog.Int("mti_codes", len(f.mtiCodeToName)),
	)
}
