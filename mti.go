package iso8583

import "fmt"

// mtiCodec is the fixed 4-digit numeric codec used for every MTI, per the
// wire format: no length prefix, always exactly 4 ASCII digits.
var mtiCodec = NewCodec(N(), FixedLen(4))

// DeclareMTI registers a named MTI code, e.g. DeclareMTI("0200",
// "authorization_request"). Declaring a code or name that already has a
// different counterpart returns SchemaConflict.
func (f *Family) DeclareMTI(code, name string) error {
	if len(code) != 4 || !isDigits([]byte(code)) {
		return &Error{Kind: InvalidValue, Section: "mti", Offset: -1,
			Err: fmt.Errorf("MTI code %q must be 4 digits", code)}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.mtiCodeToName[code]; ok && existing != name {
		return &Error{Kind: SchemaConflict, Section: "mti", Offset: -1,
			Err: fmt.Errorf("MTI code %q already declared as %q", code, existing)}
	}
	if existing, ok := f.mtiNameToCode[name]; ok && existing != code {
		return &Error{Kind: SchemaConflict, Section: "mti", Offset: -1,
			Err: fmt.Errorf("MTI name %q already declared for code %q", name, existing)}
	}
	f.mtiCodeToName[code] = name
	f.mtiNameToCode[name] = code
	return nil
}

// MTIName returns the name registered for an MTI code, if any.
func (f *Family) MTIName(code string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	name, ok := f.mtiCodeToName[code]
	return name, ok
}

// MTICode returns the code registered for an MTI name, if any.
func (f *Family) MTICode(name string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	code, ok := f.mtiNameToCode[name]
	return code, ok
}

// resolveMTI turns either a 4-digit code or a declared name into a code.
// When the Family has no MTI declarations at all, any syntactically valid
// 4-digit code is accepted unconstrained.
func (f *Family) resolveMTI(s string) (string, error) {
	if len(s) == 4 && isDigits([]byte(s)) {
		f.mu.RLock()
		_, known := f.mtiCodeToName[s]
		anyDeclared := len(f.mtiCodeToName) > 0
		f.mu.RUnlock()
		if anyDeclared && !known {
			return "", &Error{Kind: UnknownMti, Section: "mti", Offset: -1, Err: fmt.Errorf("MTI code %q not registered", s)}
		}
		return s, nil
	}
	if code, ok := f.MTICode(s); ok {
		return code, nil
	}
	return "", &Error{Kind: UnknownMti, Section: "mti", Offset: -1, Err: fmt.Errorf("MTI %q not registered", s)}
}

// IsRequest reports whether an MTI code's class digit (the third digit)
// marks it a request (even) rather than a response (odd).
func IsRequest(code string) bool {
	if len(code) != 4 || !isDigits([]byte(code)) {
		return false
	}
	return (code[2]-'0')%2 == 0
}

// ResponseMTI flips a request MTI's class digit to its paired response,
// e.g. "0200" -> "0210".
func ResponseMTI(requestCode string) (string, error) {
	if len(requestCode) != 4 || !isDigits([]byte(requestCode)) {
		return "", &Error{Kind: InvalidValue, Section: "mti", Offset: -1,
			Err: fmt.Errorf("MTI %q must be 4 digits", requestCode)}
	}
	if !IsRequest(requestCode) {
		return "", &Error{Kind: InvalidValue, Section: "mti", Offset: -1,
			Err: fmt.Errorf("MTI %q is not a request", requestCode)}
	}
	b := []byte(requestCode)
	b[2]++
	return string(b), nil
}
