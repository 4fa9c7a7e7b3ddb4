package ezid_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ezid-go/ezid"
)

// domain tags under test; empty structs carrying a fixed prefix each
type (
	foo struct{}
	bar struct{}
	// zab shares bar's prefix on purpose: textually indistinguishable,
	// type-distinct
	zab struct{}
)

func (foo) Prefix() string { return "foo" }
func (bar) Prefix() string { return "bar" }
func (zab) Prefix() string { return "bar" }

type (
	FooID = ezid.Typed[foo]
	BarID = ezid.Typed[bar]
)

func TestNewTyped(t *testing.T) {
	id := ezid.NewTyped[foo]()
	if !strings.HasPrefix(id.String(), "foo_") {
		t.Errorf("NewTyped[foo]() = %q, want foo_ prefix", id)
	}
	if id.IsNil() {
		t.Error("NewTyped[foo]().IsNil() = true")
	}
	if got, want := id.Unwrap().Prefix(), "foo"; got != want {
		t.Errorf("Unwrap().Prefix() = %q, want %q", got, want)
	}
}

func TestTypedZeroValue(t *testing.T) {
	var id FooID
	if !id.IsNil() {
		t.Error("zero Typed value is not nil")
	}
	if id.String() != "" {
		t.Errorf("zero Typed String() = %q, want empty", id.String())
	}
}

func TestTypedDomainsAreDistinctTypes(t *testing.T) {
	// Typed[foo] and Typed[bar] only meet through the untyped ID; without
	// Wrap/Unwrap the comparison below would not compile.
	f := ezid.NewTyped[foo]()
	b := ezid.NewTyped[bar]()
	if f.Unwrap() == b.Unwrap() {
		t.Error("distinct domains produced identical IDs")
	}
}

func TestTypedSharedPrefixDomains(t *testing.T) {
	b := ezid.NewTyped[bar]()
	z := ezid.NewTyped[zab]()
	if !strings.HasPrefix(b.String(), "bar_") || !strings.HasPrefix(z.String(), "bar_") {
		t.Errorf("shared-prefix domains rendered %q and %q, want bar_ prefixes", b, z)
	}
	// moving a value between the domains requires two explicit conversions
	moved := ezid.Wrap[zab](b.Unwrap())
	if moved.String() != b.String() {
		t.Errorf("Wrap[zab](b.Unwrap()) = %q, want %q", moved, b)
	}
}

func TestParseTyped(t *testing.T) {
	want := ezid.NewTyped[foo]()
	got, err := ezid.ParseTyped[foo](want.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("ParseTyped() = %v, want %v", got, want)
	}
	if _, err := ezid.ParseTyped[foo](strings.Repeat("a", 60)); err != ezid.ErrTooLong {
		t.Errorf("ParseTyped(too long) err = %v, want %v", err, ezid.ErrTooLong)
	}
}

func TestTypedCompare(t *testing.T) {
	a := ezid.NewTyped[foo]()
	b := ezid.NewTyped[foo]()
	if got, want := a.Compare(b), a.Unwrap().Compare(b.Unwrap()); got != want {
		t.Errorf("Compare() = %d, want %d", got, want)
	}
	if a.Compare(a) != 0 {
		t.Error("Compare() with itself != 0")
	}
}

func TestTypedAsMapKey(t *testing.T) {
	seen := map[FooID]int{}
	id := ezid.NewTyped[foo]()
	seen[id]++
	parsed, err := ezid.ParseTyped[foo](id.String())
	if err != nil {
		t.Fatal(err)
	}
	seen[parsed]++
	if got, want := seen[id], 2; got != want {
		t.Errorf("map lookups after round trip = %d, want %d", got, want)
	}
}

type typedJSON struct {
	Foo FooID
	Bar BarID
}

func TestTypedJSONRoundTrip(t *testing.T) {
	v := typedJSON{Foo: ezid.NewTyped[foo](), Bar: ezid.NewTyped[bar]()}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var got typedJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("json round trip = %+v, want %+v", got, v)
	}
	// nil typed values marshal as null
	data, err = json.Marshal(typedJSON{})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"Foo":null,"Bar":null}`; string(data) != want {
		t.Errorf("json.Marshal(zero) = %s, want %s", data, want)
	}
}

func TestTypedTextRoundTrip(t *testing.T) {
	id := ezid.NewTyped[bar]()
	text, err := id.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got BarID
	if err := got.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if got != id {
		t.Errorf("text round trip = %v, want %v", got, id)
	}
}

func TestTypedDriverValueScan(t *testing.T) {
	id := ezid.NewTyped[foo]()
	val, err := id.Value()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := val, id.String(); got != want {
		t.Errorf("Value() = %v, want %v", got, want)
	}
	var scanned FooID
	if err := scanned.Scan(val); err != nil {
		t.Fatal(err)
	}
	if scanned != id {
		t.Errorf("Scan() = %v, want %v", scanned, id)
	}
	if err := scanned.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if !scanned.IsNil() {
		t.Errorf("Scan(nil) = %v, want nil", scanned)
	}
}
