package dotmatrix

import (
	"context"
	"errors"
	"sync"

	"github.com/bodgit/dotmatrix/frame"
	"go.uber.org/zap"
)

// Task is content being decoded and encoded in the background. A Task
// can't be cancelled; once started it runs until it succeeds or fails.
type Task struct {
	done chan struct{}
	msg  frame.Message
	err  error
}

func start(fn func() (frame.Message, error)) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.msg, t.err = fn()
	}()
	return t
}

// Done returns a channel that is closed once the task has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task has finished and returns its result.
func (t *Task) Wait() (frame.Message, error) {
	<-t.done
	return t.msg, t.err
}

// Start encodes b in the background.
func (e *Encoder) Start(b []byte) *Task {
	return start(func() (frame.Message, error) {
		return e.Encode(b)
	})
}

// StartFile encodes file in the background.
func (e *Encoder) StartFile(file string) *Task {
	return start(func() (frame.Message, error) {
		return e.EncodeFile(file)
	})
}

type job struct {
	index int
	file  string
}

func feedFiles(ctx context.Context, files []string) <-chan job {
	out := make(chan job)
	go func() {
		defer close(out)
		for i, file := range files {
			select {
			case out <- job{i, file}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (e *Encoder) fileWorker(in <-chan job, results []frame.Message) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for j := range in {
			m, err := e.EncodeFile(j.file)
			if err != nil {
				e.logger.Error("encoding failed", zap.String("file", j.file), zap.Error(err))
				errc <- err
				return
			}
			e.logger.Debug("file encoded", zap.String("file", j.file), zap.Int("chunks", len(m)))
			results[j.index] = m
		}
	}()
	return errc
}

func waitForPipeline(cancel context.CancelFunc, errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
			cancel()
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// EncodeFiles encodes each file using up to workers files at a time and
// returns the messages in the same order as files. After the first failure
// no further files are started, files already being encoded still run to
// completion.
func (e *Encoder) EncodeFiles(ctx context.Context, files []string, workers int) ([]frame.Message, error) {
	if workers < 1 {
		return nil, errors.New("dotmatrix: need at least one worker")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]frame.Message, len(files))
	jobs := feedFiles(ctx, files)

	errcList := make([]<-chan error, 0, workers)
	for i := 0; i < workers; i++ {
		errcList = append(errcList, e.fileWorker(jobs, results))
	}

	if err := waitForPipeline(cancel, errcList...); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
