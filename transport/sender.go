package transport

import (
	"context"
	"fmt"
	"io"

	"github.com/bodgit/dotmatrix/frame"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Sender writes messages chunk by chunk.
type Sender struct {
	w       io.Writer
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewSender returns a Sender writing to w no more than limit chunks per
// second. A limit of zero or less disables pacing. logger may be nil.
func NewSender(w io.Writer, limit rate.Limit, logger *zap.Logger) *Sender {
	if limit <= 0 {
		limit = rate.Inf
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sender{
		w:       w,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
}

// Send writes every chunk of m in order. It stops at the first error.
func (s *Sender) Send(ctx context.Context, m frame.Message) error {
	chunks, err := m.Bytes()
	if err != nil {
		return err
	}

	for i, chunk := range chunks {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := s.w.Write(chunk); err != nil {
			return fmt.Errorf("transport: chunk %d: %w", i, err)
		}
		s.logger.Debug("chunk written", zap.Int("chunk", i), zap.Int("size", len(chunk)))
	}

	return nil
}
