// Package ids generates and recognizes the collision-resistant identifiers
// used as primary keys across the platform: a "c" prefix followed by 24
// base-36 characters.
package ids

import (
	"crypto/rand"
	"regexp"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var pattern = regexp.MustCompile(`(?i)^c[a-z0-9]{24}$`)

func New() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	out := make([]byte, 25)
	out[0] = 'c'
	for i, b := range buf {
		out[i+1] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// IsID reports whether s has the shape of an internal identifier. It says
// nothing about whether such a row exists.
func IsID(s string) bool {
	return pattern.MatchString(s)
}
