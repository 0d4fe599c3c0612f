// Package uniuri generates random strings from crypto/rand, used as opaque
// entity identifiers.
package uniuri

import "crypto/rand"

const (
	// StdLen is the standard length of a uniuri string, ~95 bits of entropy.
	StdLen = 16
)

// StdChars is the set of characters allowed in a uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// New returns a new random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a new random string of the provided length, consisting of
// standard characters.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a new random string of the provided length, consisting
// of the provided byte slice of allowed characters (maximum 256).
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > 256 {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// Reject bytes above maxRb to avoid modulo bias.
	maxRb := 255 - (256 % clen)
	out := make([]byte, length)
	buf := make([]byte, length+length/2)

	i := 0
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			c := int(rb)
			if c > maxRb {
				continue
			}
			out[i] = chars[c%clen]
			i++
			if i == length {
				return string(out)
			}
		}
	}
}
