package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Channel is a running hash transcript. Each Send folds data into the state,
// so the final state fingerprints the whole sequence that was sent.
type Channel struct {
	state    []byte
	log      []string
	keepLog  bool
	hashFunc string
}

// NewChannel creates a new channel; an empty hashFunc selects sha3. Only
// sha3 and sha256 are byte-oriented; anything else falls back to sha3.
func NewChannel(hashFunc string) *Channel {
	if hashFunc != HashSHA256 {
		hashFunc = HashSHA3
	}
	return &Channel{
		state:    []byte{0},
		hashFunc: hashFunc,
	}
}

// WithLog makes the channel keep a textual record of every Send
func (c *Channel) WithLog() *Channel {
	c.keepLog = true
	c.log = make([]string, 0, 64)
	return c
}

// Send appends data to the channel state
func (c *Channel) Send(data []byte) {
	if c.keepLog {
		c.log = append(c.log, fmt.Sprintf("send:%s", hex.EncodeToString(data)))
	}
	c.state = c.hash(append(c.state, data...))
}

// SendWords appends words to the channel state
func (c *Channel) SendWords(words []uint64) {
	c.Send(WordsToBytes(words))
}

// State returns the current channel state
func (c *Channel) State() []byte {
	return append([]byte(nil), c.state...)
}

// Hex returns the current state hex-encoded
func (c *Channel) Hex() string {
	return hex.EncodeToString(c.state)
}

// HashFunction returns the hash in use
func (c *Channel) HashFunction() string {
	return c.hashFunc
}

// Log returns the record of sends; empty unless WithLog was called
func (c *Channel) Log() []string {
	return append([]string(nil), c.log...)
}

// hash computes the hash of the input using the configured hash function
func (c *Channel) hash(data []byte) []byte {
	switch c.hashFunc {
	case HashSHA256:
		h := sha256.Sum256(data)
		return h[:]
	default:
		h := sha3.Sum256(data)
		return h[:]
	}
}

// String returns the send log joined by spaces
func (c *Channel) String() string {
	return strings.Join(c.log, " ")
}
