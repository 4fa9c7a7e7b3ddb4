/*
Package ezid provides compact, prefixed, URL-friendly, time-sortable unique
identifiers that live entirely on the stack. The string representation of an
ID looks like:

	user_1imRQe7n42DGM5Tflk9n8mt7Fhc7

and is composed of an:

  - optional ASCII prefix of up to 32 bytes, followed by "_"
  - 6-character base62 timestamp representing seconds since the Unix epoch
  - 22-character base62 random value carrying 128 bits of entropy

IDs sharing a prefix (or lacking one) sort chronologically to the second;
the trailing random component breaks ties arbitrarily.

Example:

	id, _ := ezid.New("user")
	fmt.Printf("%s", id) // user_1tSm9Y4xdg2spTOXaYTIRiUDyTg3

IDs are fixed-size comparable arrays, usable as map keys, and implement the
usual marshaling interfaces (text, JSON, database/sql) so they round-trip
through a single TEXT column or a JSON string without help.

For compile-time separation of identifier namespaces, see Typed.
*/
package ezid

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"time"
)

const (
	// prefixBytes is the maximum prefix length in bytes.
	prefixBytes = 32

	// timestampBytes is the width of the raw timestamp field, held as a
	// big-endian uint64 of Unix seconds.
	timestampBytes = 8

	// randomnessBytes is the width of the raw random field: 128 bits.
	randomnessBytes = 16

	// timestampLen is floor(log62(2^64)) + 1. Eleven digits would represent
	// every uint64; six covers every second until December 3769, after
	// which the encoding wraps.
	timestampLen = 6

	// randomLen is floor(log62(2^128)) + 1.
	randomLen = 22

	// maxLen is the maximum length of an ID's text.
	maxLen = prefixBytes + timestampLen + randomLen
)

var (
	// ID{}: no prefix, zero timestamp, zero randomness.
	nilID ID

	// ErrTooLong is returned on attempts to parse text that cannot fit in
	// an ID's buffer.
	ErrTooLong = errors.New("ezid: id text too long")

	// ErrPrefixTooLong is returned when a prefix exceeds 32 bytes.
	ErrPrefixTooLong = errors.New("ezid: prefix too long")
)

// ID is an immutable identifier held in a fixed buffer one byte longer than
// the longest possible text; bytes past the text are always zero, so byte-wise
// equality and ordering over the whole array agree with the logical text.
type ID [maxLen + 1]byte

// New returns a fresh ID carrying prefix, the current time, and 128 bits of
// entropy. It fails only when prefix exceeds 32 bytes.
func New(prefix string) (ID, error) {
	b, err := NewBuilder().WithPrefix(prefix)
	if err != nil {
		return nilID, err
	}
	return b.Build(), nil
}

// MustNew is like New but panics on an over-long prefix. Intended for
// fixed prefix literals.
func MustNew(prefix string) ID {
	id, err := New(prefix)
	if err != nil {
		panic(fmt.Errorf("ezid: MustNew(%q): %w", prefix, err))
	}
	return id
}

// FromString copies text into an ID. It fails with ErrTooLong when the text
// cannot fit; no other validation is performed, matching Builder output being
// the usual source of IDs.
func FromString(str string) (ID, error) {
	id := &ID{}
	err := id.UnmarshalText([]byte(str))
	return *id, err
}

// IsNil returns true if ID == nilID.
func (id ID) IsNil() bool {
	return id == nilID
}

// NilID returns the zero value for ezid.ID.
func NilID() ID {
	return nilID
}

// textLen reports the length of the logical text: the populated bytes before
// the zero-padded tail.
func (id ID) textLen() int {
	if i := bytes.IndexByte(id[:], 0); i >= 0 {
		return i
	}
	return maxLen
}

// String returns the text of the ID, excluding the zero-padded tail.
func (id ID) String() string {
	return string(id[:id.textLen()])
}

// Prefix returns the ID's prefix, or "" when the ID has none.
func (id ID) Prefix() string {
	if n := id.textLen(); n > timestampLen+randomLen {
		// the byte before the digits is the "_" separator
		return string(id[:n-timestampLen-randomLen-1])
	}
	return ""
}

// Timestamp returns the decoded timestamp component in seconds since the
// Unix epoch, or 0 when the ID does not carry well-formed digits.
func (id ID) Timestamp() uint64 {
	n := id.textLen()
	if n < timestampLen+randomLen {
		return 0
	}
	_, lo, ok := decode62(id[n-timestampLen-randomLen : n-randomLen])
	if !ok {
		return 0
	}
	return lo
}

// Time returns the timestamp component as a time.Time with second
// resolution.
func (id ID) Time() time.Time {
	return time.Unix(int64(id.Timestamp()), 0)
}

// Random returns the decoded 16-byte random component, or a zero array when
// the ID does not carry well-formed digits.
func (id ID) Random() [randomnessBytes]byte {
	var r [randomnessBytes]byte
	n := id.textLen()
	if n < timestampLen+randomLen {
		return r
	}
	hi, lo, ok := decode62(id[n-randomLen : n])
	if !ok {
		return r
	}
	binary.BigEndian.PutUint64(r[:8], hi)
	binary.BigEndian.PutUint64(r[8:], lo)
	return r
}

// UnmarshalText implements encoding.TextUnmarshaler. All parsing is called
// from here.
func (id *ID) UnmarshalText(text []byte) error {
	if len(text) >= maxLen {
		return ErrTooLong
	}
	*id = nilID
	copy(id[:], text)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return id[:id.textLen():id.textLen()], nil
}

// MarshalJSON implements json.Marshaler, encoding the ID as a JSON string.
// The nil ID encodes as null.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == nilID {
		return []byte("null"), nil
	}
	n := id.textLen()
	text := make([]byte, n+2)
	copy(text[1:], id[:n])
	text[0], text[n+1] = '"', '"'
	return text, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		*id = nilID
		return nil
	}
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return fmt.Errorf("ezid: invalid id JSON: %s", text)
	}
	return id.UnmarshalText(text[1 : len(text)-1])
}

// Value implements driver.Valuer, encoding the ID for a TEXT column. The nil
// ID maps to NULL.
func (id ID) Value() (driver.Value, error) {
	if id.IsNil() {
		return nil, nil
	}
	return id.String(), nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(value interface{}) error {
	switch val := value.(type) {
	case string:
		return id.UnmarshalText([]byte(val))
	case []byte:
		return id.UnmarshalText(val)
	case nil:
		*id = nilID
		return nil
	default:
		return fmt.Errorf("ezid: unsupported type: %T, value: %#v", value, value)
	}
}

// Compare returns an integer comparing two IDs byte-wise over the whole
// buffer. Because the prefix precedes the timestamp digits, IDs sort first
// by prefix, then chronologically, then by random component. The result is 0
// if the IDs are identical, -1 if id sorts before other, +1 otherwise.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

type sorter []ID

func (s sorter) Len() int {
	return len(s)
}

func (s sorter) Less(i, j int) bool {
	return s[i].Compare(s[j]) < 0
}

func (s sorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Sort sorts an array of IDs in place.
func Sort(ids []ID) {
	sort.Sort(sorter(ids))
}
