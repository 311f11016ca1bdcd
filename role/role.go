package role

import "math/bits"

// Role is an immutable 256-bit role bitmap. A singleton Role has exactly one
// bit set, at the position of a role identifier in [0, 255]; a combined Role
// is the union of singletons and serves as an any-of or all-of matching
// criterion depending on the query. The zero value is the empty bitmap.
//
// Role instances are intended to be constructed once and then passed around
// by value; there is no mutating method.
type Role struct {
	// a holds bits 0..63, b holds 64..127, c holds 128..191, d holds 192..255.
	a, b, c, d uint64
}

// Encode returns the singleton Role with exactly bit id set. The uint8
// parameter bounds identifiers to [0, 255] at compile time, so every input
// is representable and Encode cannot fail.
func Encode(id uint8) Role {
	var r Role
	switch {
	case id < 64:
		r.a = 1 << id
	case id < 128:
		r.b = 1 << (id - 64)
	case id < 192:
		r.c = 1 << (id - 128)
	default:
		r.d = 1 << (id - 192)
	}
	return r
}

// Combine returns the bitwise union of all operands. Combining with the zero
// Role is the identity; Combine() returns the zero Role.
func Combine(rs ...Role) Role {
	var out Role
	for _, r := range rs {
		out = out.Union(r)
	}
	return out
}

// Union returns r | o.
func (r Role) Union(o Role) Role {
	return Role{
		a: r.a | o.a,
		b: r.b | o.b,
		c: r.c | o.c,
		d: r.d | o.d,
	}
}

// Difference returns r &^ o, the bits of r not present in o.
func (r Role) Difference(o Role) Role {
	return Role{
		a: r.a &^ o.a,
		b: r.b &^ o.b,
		c: r.c &^ o.c,
		d: r.d &^ o.d,
	}
}

// Intersect returns r & o.
func (r Role) Intersect(o Role) Role {
	return Role{
		a: r.a & o.a,
		b: r.b & o.b,
		c: r.c & o.c,
		d: r.d & o.d,
	}
}

// HasAny reports whether r holds at least one of the bits set in required.
// Always false when required is the zero Role.
func (r Role) HasAny(required Role) bool {
	return !r.Intersect(required).IsZero()
}

// HasAll reports whether every bit set in required is also set in r.
// Vacuously true when required is the zero Role.
func (r Role) HasAll(required Role) bool {
	return r.Intersect(required) == required
}

// Has reports whether bit id is set.
func (r Role) Has(id uint8) bool {
	return r.HasAny(Encode(id))
}

// IsZero reports whether no bit is set.
func (r Role) IsZero() bool {
	return r == Role{}
}

// Count returns the number of set bits.
func (r Role) Count() int {
	return bits.OnesCount64(r.a) +
		bits.OnesCount64(r.b) +
		bits.OnesCount64(r.c) +
		bits.OnesCount64(r.d)
}

// IDs returns the identifiers of all set bits in ascending order.
func (r Role) IDs() []uint8 {
	out := make([]uint8, 0, r.Count())
	for word, w := range [4]uint64{r.a, r.b, r.c, r.d} {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			out = append(out, uint8(word*64+bit))
			w &= w - 1
		}
	}
	return out
}

// FromWords constructs a Role from four 64-bit words; a is bits 0..63 and d
// is bits 192..255. Deliberate extraction/construction escape hatch, the
// inverse of [Role.Words].
func FromWords(a, b, c, d uint64) Role {
	return Role{a: a, b: b, c: c, d: d}
}

// Words returns the four 64-bit words of the bitmap, low bits first.
func (r Role) Words() (a, b, c, d uint64) {
	return r.a, r.b, r.c, r.d
}

// String returns the hex form for logs and error messages.
func (r Role) String() string {
	return r.Hex()
}
