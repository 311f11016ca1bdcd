package role

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
)

// EncodedSize is the length of the binary form produced by [Role.Bytes].
const EncodedSize = 32

var (
	// ErrInvalidRoleBytes is returned by [FromBytes] for inputs that are not
	// exactly EncodedSize bytes.
	ErrInvalidRoleBytes = errors.New("invalid role bytes length")
	// ErrInvalidRoleHex is returned by [ParseHex] for malformed hex input.
	ErrInvalidRoleHex = errors.New("invalid role hex")
)

// Bytes returns the big-endian binary form: words a, b, c, d in order, each
// encoded big-endian. The layout is stable; persisted records depend on it.
func (r Role) Bytes() [EncodedSize]byte {
	var out [EncodedSize]byte
	binary.BigEndian.PutUint64(out[0:8], r.a)
	binary.BigEndian.PutUint64(out[8:16], r.b)
	binary.BigEndian.PutUint64(out[16:24], r.c)
	binary.BigEndian.PutUint64(out[24:32], r.d)
	return out
}

// FromBytes decodes the binary form produced by [Role.Bytes].
func FromBytes(data []byte) (Role, error) {
	if len(data) != EncodedSize {
		return Role{}, ErrInvalidRoleBytes
	}
	return Role{
		a: binary.BigEndian.Uint64(data[0:8]),
		b: binary.BigEndian.Uint64(data[8:16]),
		c: binary.BigEndian.Uint64(data[16:24]),
		d: binary.BigEndian.Uint64(data[24:32]),
	}, nil
}

// Hex returns the 64-character lowercase hex form of [Role.Bytes].
func (r Role) Hex() string {
	b := r.Bytes()
	return hex.EncodeToString(b[:])
}

// ParseHex decodes the form produced by [Hex]. A leading "0x" is accepted.
func ParseHex(s string) (Role, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != EncodedSize*2 {
		return Role{}, ErrInvalidRoleHex
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return Role{}, ErrInvalidRoleHex
	}
	return FromBytes(data)
}
