package event

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const idSuffixLen = 9

// GenerateID produces an event identifier of the form
// "<unix-millis>-<9 base36 chars>", e.g. "1709992860000-k3x9q0m2f".
//
// Uniqueness is probabilistic: the millisecond prefix plus a random base36
// suffix makes collisions overwhelmingly unlikely within one process, but
// nothing checks for them. This is a known, accepted weakness carried over
// from the existing stored-data format; the prefix also keeps IDs roughly
// sortable by creation time, which nothing currently relies on.
func GenerateID() string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
