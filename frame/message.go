package frame

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Message is an ordered list of hex chunks ready for transmission, first
// chunk first. A Message is never modified in place; Append returns a new
// one.
type Message []string

// Build returns a new Message holding the chunks of exactly one frame
// wrapping content. Empty content builds an empty Message.
func Build(content []byte) Message {
	if len(content) == 0 {
		return nil
	}
	return Split(hex.EncodeToString(Encode(content)), ChunkSize)
}

// Append returns a new Message with the chunks of one more independently
// framed content added after the chunks of m. Empty content returns m.
func (m Message) Append(content []byte) Message {
	if len(content) == 0 {
		return m
	}
	chunks := Build(content)
	out := make(Message, 0, len(m)+len(chunks))
	out = append(out, m...)
	return append(out, chunks...)
}

// Concat returns a new Message with the chunks of n after those of m.
func (m Message) Concat(n Message) Message {
	out := make(Message, 0, len(m)+len(n))
	out = append(out, m...)
	return append(out, n...)
}

// String returns every chunk joined together.
func (m Message) String() string {
	return strings.Join(m, "")
}

// Bytes returns the raw bytes of each chunk, in order.
func (m Message) Bytes() ([][]byte, error) {
	out := make([][]byte, 0, len(m))
	for i, chunk := range m {
		b, err := hex.DecodeString(chunk)
		if err != nil {
			return nil, fmt.Errorf("frame: chunk %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Frames reassembles the chunks of m and returns the content of every
// frame found, in order.
func (m Message) Frames() ([][]byte, error) {
	b, err := hex.DecodeString(m.String())
	if err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}

	var contents [][]byte
	for len(b) > 0 {
		var content []byte
		if content, b, err = Decode(b); err != nil {
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, nil
}

// Split cuts s into pieces of at most n characters. The last piece holds
// whatever remains.
func Split(s string, n int) []string {
	if s == "" {
		return nil
	}
	pieces := make([]string, 0, (len(s)+n-1)/n)
	for len(s) > n {
		pieces = append(pieces, s[:n])
		s = s[n:]
	}
	return append(pieces, s)
}
