// Package randid generates short random IDs that users type back on the
// command line (termlinks history --reopen ID).
package randid

import "math/rand/v2"

// alphabet omits the look-alike characters 0, o, 1, l and i.
const alphabet = "abcdefghjkmnpqrstuvwxyz23456789"

// Generate returns a random ID of n characters drawn from alphabet.
// n <= 0 yields an empty string.
func Generate(n int) string {
	if n <= 0 {
		return ""
	}

	id := make([]byte, n)
	for i := range id {
		id[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(id)
}
