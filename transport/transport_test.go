package transport

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bodgit/dotmatrix/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/time/rate"
)

type failingWriter struct {
	n int
}

var errBroken = errors.New("broken pipe")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errBroken
	}
	w.n--
	return len(p), nil
}

func TestSend(t *testing.T) {
	m := frame.Build([]byte{0x45, 0x02}).Append([]byte{0x74, 0x32})

	b := new(bytes.Buffer)
	s := NewSender(b, 0, zaptest.NewLogger(t))
	require.NoError(t, s.Send(context.Background(), m))

	assert.Equal(t, []byte{
		0x01, 0x04, 0x00, 0x45, 0x02, 0x4b, 0x00, 0x02,
		0x01, 0x04, 0x00, 0x74, 0x32, 0xaa, 0x00, 0x02,
	}, b.Bytes())
}

func TestSendPaced(t *testing.T) {
	m := frame.Build([]byte{0x45, 0x02}).Append([]byte{0x45, 0x02}).Append([]byte{0x45, 0x02})

	s := NewSender(new(bytes.Buffer), rate.Every(20*time.Millisecond), nil)
	start := time.Now()
	require.NoError(t, s.Send(context.Background(), m))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSendErrors(t *testing.T) {
	m := frame.Build([]byte{0x45, 0x02}).Append([]byte{0x45, 0x02})

	err := NewSender(&failingWriter{n: 1}, 0, nil).Send(context.Background(), m)
	assert.ErrorIs(t, err, errBroken)

	err = NewSender(new(bytes.Buffer), 0, nil).Send(context.Background(), frame.Message{"0g"})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewSender(new(bytes.Buffer), rate.Every(time.Hour), nil).Send(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)

	_, err = Open(DefaultConfig("/dev/does-not-exist"))
	assert.Error(t, err)
}
