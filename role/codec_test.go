package role

import (
	"errors"
	"testing"
)

func TestBytesLayoutBigEndian(t *testing.T) {
	// Bit 0 lives in the last byte of the first word group.
	b := Encode(0).Bytes()
	if b[7] != 0x01 {
		t.Fatalf("Encode(0) byte 7 = %#x, want 0x01", b[7])
	}

	// Bit 64 is the low bit of word b.
	b = Encode(64).Bytes()
	if b[15] != 0x01 {
		t.Fatalf("Encode(64) byte 15 = %#x, want 0x01", b[15])
	}

	// Bit 255 is the high bit of word d.
	b = Encode(255).Bytes()
	if b[24] != 0x80 {
		t.Fatalf("Encode(255) byte 24 = %#x, want 0x80", b[24])
	}
}

func TestFromBytesRoundTrip(t *testing.T) {
	for _, r := range []Role{
		{},
		Encode(0),
		Encode(127),
		Encode(255),
		Combine(Encode(1), Encode(65), Encode(129), Encode(193)),
		FromWords(^uint64(0), 0, ^uint64(0), 0),
	} {
		b := r.Bytes()
		decoded, err := FromBytes(b[:])
		if err != nil {
			t.Fatalf("FromBytes(%s): %v", r, err)
		}
		if decoded != r {
			t.Fatalf("round trip changed value: %s -> %s", r, decoded)
		}
	}
}

func TestFromBytesRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 1, 31, 33, 64} {
		if _, err := FromBytes(make([]byte, n)); !errors.Is(err, ErrInvalidRoleBytes) {
			t.Fatalf("FromBytes(len %d): expected ErrInvalidRoleBytes, got %v", n, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	r := Combine(Encode(0), Encode(100), Encode(255))

	h := r.Hex()
	if len(h) != EncodedSize*2 {
		t.Fatalf("Hex() length = %d, want %d", len(h), EncodedSize*2)
	}

	parsed, err := ParseHex(h)
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if parsed != r {
		t.Fatalf("hex round trip changed value: %s -> %s", r, parsed)
	}

	prefixed, err := ParseHex("0x" + h)
	if err != nil {
		t.Fatalf("ParseHex with 0x prefix: %v", err)
	}
	if prefixed != r {
		t.Fatal("0x-prefixed parse differs")
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"0x",
		"ff",
		"zz" + Encode(0).Hex()[2:],
	}
	for _, s := range cases {
		if _, err := ParseHex(s); !errors.Is(err, ErrInvalidRoleHex) {
			t.Fatalf("ParseHex(%q): expected ErrInvalidRoleHex, got %v", s, err)
		}
	}
}
