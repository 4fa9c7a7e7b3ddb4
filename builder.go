package ezid

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Builder stages the prefix, timestamp and random fields of an ID before
// rendering. Builders are plain comparable values; the zero Builder is the
// degenerate identifier: no prefix, zero timestamp, zero randomness.
type Builder struct {
	prefix    [prefixBytes]byte
	prefixLen int
	hasPrefix bool
	timestamp [timestampBytes]byte
	random    [randomnessBytes]byte
}

// NewBuilder returns a Builder carrying the current Unix time in seconds and
// 16 fresh bytes of entropy, and no prefix.
func NewBuilder() Builder {
	var b Builder
	binary.BigEndian.PutUint64(b.timestamp[:], uint64(time.Now().Unix()))
	b.random = randomBytes()
	return b
}

// Prefix returns the staged prefix and whether one is set.
func (b Builder) Prefix() (string, bool) {
	if !b.hasPrefix {
		return "", false
	}
	return string(b.prefix[:b.prefixLen]), true
}

// WithPrefix returns a copy of b carrying prefix. Prefixes longer than 32
// bytes are rejected with ErrPrefixTooLong, never truncated; the empty
// prefix is legal and renders as a bare "_" separator.
func (b Builder) WithPrefix(prefix string) (Builder, error) {
	if len(prefix) > prefixBytes {
		return b, ErrPrefixTooLong
	}
	b.prefix = [prefixBytes]byte{}
	copy(b.prefix[:], prefix)
	b.prefixLen = len(prefix)
	b.hasPrefix = true
	return b, nil
}

// Timestamp returns the staged raw timestamp bytes, big-endian Unix seconds.
func (b Builder) Timestamp() [timestampBytes]byte {
	return b.timestamp
}

// WithTimestamp returns a copy of b carrying the raw timestamp bytes.
// Primarily for deterministic construction in tests.
func (b Builder) WithTimestamp(timestamp [timestampBytes]byte) Builder {
	b.timestamp = timestamp
	return b
}

// Random returns the staged raw random bytes.
func (b Builder) Random() [randomnessBytes]byte {
	return b.random
}

// WithRandom returns a copy of b carrying the raw random bytes. Primarily
// for deterministic construction in tests.
func (b Builder) WithRandom(random [randomnessBytes]byte) Builder {
	b.random = random
	return b
}

// String renders the staged fields as [<prefix>_]<timestamp><random>, the
// raw byte arrays interpreted big-endian before encoding.
func (b Builder) String() string {
	buf := make([]byte, 0, maxLen+1)
	return string(b.render(buf))
}

// render appends the text of b to buf.
func (b Builder) render(buf []byte) []byte {
	if b.hasPrefix {
		buf = append(buf, b.prefix[:b.prefixLen]...)
		buf = append(buf, '_')
	}
	var ts [timestampLen]byte
	encode62(0, binary.BigEndian.Uint64(b.timestamp[:]), ts[:])
	buf = append(buf, ts[:]...)

	var rnd [randomLen]byte
	encode62(
		binary.BigEndian.Uint64(b.random[:8]),
		binary.BigEndian.Uint64(b.random[8:]),
		rnd[:],
	)
	return append(buf, rnd[:]...)
}

// Build renders the staged fields into an immutable ID. The fixed digit
// widths keep any rendering within capacity except for prefixes over 31
// bytes, whose separator pushes the text past the buffer; Build panics
// rather than silently overflowing in that case.
func (b Builder) Build() ID {
	var id ID
	text := b.render(id[:0:maxLen+1])
	if len(text) > maxLen {
		panic(fmt.Sprintf("ezid: rendered id is %d bytes, capacity %d", len(text), maxLen))
	}
	return id
}
