package ezid

import "database/sql/driver"

// Domain tags an identifier namespace and carries its fixed prefix. Domains
// are usually empty struct types:
//
//	type user struct{}
//
//	func (user) Prefix() string { return "user" }
//
//	type UserID = ezid.Typed[user]
//
// Two domains may legally share a prefix; their IDs stay textually
// indistinguishable but type-distinct.
type Domain interface {
	Prefix() string
}

// Typed is an ID bound to a Domain at compile time. Typed values of
// different domains are structurally identical but mutually incompatible:
// they cannot be compared, assigned, or mixed without an explicit conversion
// through the untyped ID. Typed is comparable and usable as a map key.
type Typed[D Domain] struct {
	id ID
}

// NewTyped returns a fresh identifier for domain D: the domain's prefix,
// the current time, 128 bits of entropy. A domain prefix over 32 bytes is a
// programming error and panics.
func NewTyped[D Domain]() Typed[D] {
	var d D
	return Typed[D]{id: MustNew(d.Prefix())}
}

// ParseTyped copies text into a typed identifier, failing with ErrTooLong
// exactly as FromString does.
func ParseTyped[D Domain](str string) (Typed[D], error) {
	id, err := FromString(str)
	if err != nil {
		return Typed[D]{}, err
	}
	return Typed[D]{id: id}, nil
}

// Wrap explicitly converts an untyped ID into domain D.
func Wrap[D Domain](id ID) Typed[D] {
	return Typed[D]{id: id}
}

// Unwrap explicitly converts the typed identifier back to an untyped ID.
func (t Typed[D]) Unwrap() ID {
	return t.id
}

// IsNil returns true for the zero Typed value.
func (t Typed[D]) IsNil() bool {
	return t.id.IsNil()
}

// String returns the text of the wrapped ID.
func (t Typed[D]) String() string {
	return t.id.String()
}

// Compare returns an integer comparing two identifiers of the same domain,
// with the ordering of ID.Compare.
func (t Typed[D]) Compare(other Typed[D]) int {
	return t.id.Compare(other.id)
}

// MarshalText implements encoding.TextMarshaler.
func (t Typed[D]) MarshalText() ([]byte, error) {
	return t.id.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Typed[D]) UnmarshalText(text []byte) error {
	return t.id.UnmarshalText(text)
}

// MarshalJSON implements json.Marshaler.
func (t Typed[D]) MarshalJSON() ([]byte, error) {
	return t.id.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Typed[D]) UnmarshalJSON(text []byte) error {
	return t.id.UnmarshalJSON(text)
}

// Value implements driver.Valuer.
func (t Typed[D]) Value() (driver.Value, error) {
	return t.id.Value()
}

// Scan implements sql.Scanner.
func (t *Typed[D]) Scan(value interface{}) error {
	return t.id.Scan(value)
}
