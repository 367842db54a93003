package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m := Build([]byte{0x45, 0x02})
	require.Len(t, m, 1)
	assert.Equal(t, "01040045024b0002", m.String())

	assert.Empty(t, Build(nil))
	assert.Empty(t, Build([]byte{}))
}

func TestBuildChunks(t *testing.T) {
	content := bytes.Repeat([]byte{0x11}, 1000)
	m := Build(content)

	// 1000 content bytes plus 6 framing bytes is 2012 hex digits
	require.Len(t, m, 2)
	assert.Len(t, m[0], ChunkSize)
	assert.Len(t, m[1], 2012-ChunkSize)
	assert.True(t, strings.HasPrefix(m[0], "01ea03"))
	assert.True(t, strings.HasSuffix(m[1], "02"))

	frames, err := m.Frames()
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, content, frames[0])
}

func TestAppend(t *testing.T) {
	first := Build([]byte{0x45, 0x02})
	second := first.Append([]byte{0x74, 0x32})

	assert.Len(t, first, 1, "append must not modify the receiver")
	require.Len(t, second, 2)
	assert.Equal(t, first[0], second[0])

	frames, err := second.Frames()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x45, 0x02}, {0x74, 0x32}}, frames)

	assert.Equal(t, second, second.Append(nil))

	var empty Message
	assert.Equal(t, first, empty.Append([]byte{0x45, 0x02}))
}

func TestConcat(t *testing.T) {
	a := Build([]byte{0x45, 0x02})
	b := Build([]byte{0x45, 0x03, 0x01})
	c := a.Concat(b)

	assert.Equal(t, Message{a[0], b[0]}, c)
	assert.Len(t, a, 1)
}

func TestBytes(t *testing.T) {
	m := Build([]byte{0x45, 0x02})
	b, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x01, 0x04, 0x00, 0x45, 0x02, 0x4b, 0x00, 0x02}}, b)

	_, err = Message{"zz"}.Bytes()
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 100, 663, 664, 665, 2000, 5000} {
		content := make([]byte, n)
		for i := range content {
			content[i] = byte(i * 7)
		}

		frames, err := Build(content).Frames()
		require.NoError(t, err, n)
		require.Len(t, frames, 1, n)
		assert.Equal(t, content, frames[0], n)
	}
}

func TestSplit(t *testing.T) {
	assert.Nil(t, Split("", 4))
	assert.Equal(t, []string{"abcd"}, Split("abcd", 4))
	assert.Equal(t, []string{"abcd", "ef"}, Split("abcdef", 4))
	assert.Equal(t, []string{"ab", "cd", "ef"}, Split("abcdef", 2))
}
