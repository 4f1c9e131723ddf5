package iso8583

import (
	"context"
	"fmt"
	"sync"
)

// Processor provides concurrent parsing of already-received byte slices
// against a shared Family, using a bounded worker pool. It performs no I/O
// itself; callers own the transport and hand Processor raw message bytes.
type Processor struct {
	family       *Family
	concurrency  int
	errorHandler func(error)
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithConcurrency sets the maximum number of goroutines used per batch or
// stream.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) { p.concurrency = n }
}

// WithErrorHandler sets a callback invoked for every parse error
// encountered during batch or stream processing.
func WithErrorHandler(handler func(error)) ProcessorOption {
	return func(p *Processor) { p.errorHandler = handler }
}

// NewProcessor creates a Processor bound to family.
func NewProcessor(family *Family, opts ...ProcessorOption) *Processor {
	p := &Processor{
		family:      family,
		concurrency: 4,
		errorHandler: func(err error) {
			fmt.Printf("iso8583: processor error: %v\n", err)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process parses a single raw message.
func (p *Processor) Process(data []byte) (*Message, error) {
	return p.family.Parse(data)
}

// ProcessBatch parses a slice of raw messages concurrently, bounded by the
// Processor's concurrency limit. It returns as soon as ctx is cancelled,
// after letting in-flight jobs finish; results for indices not yet
// processed at that point are nil.
func (p *Processor) ProcessBatch(ctx context.Context, dataSlice [][]byte) ([]*Message, error) {
	results := make([]*Message, len(dataSlice))
	errs := make([]error, len(dataSlice))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency)

	for i, data := range dataSlice {
		select {
		case <-ctx.Done():
			wg.Wait()
			return results, ctx.Err()
		default:
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, msgData []byte) {
			defer wg.Done()
			defer func() { <-semaphore }()

			msg, err := p.family.Parse(msgData)
			if err != nil {
				errs[idx] = err
				if p.errorHandler != nil {
					p.errorHandler(err)
				}
				return
			}
			results[idx] = msg
		}(i, data)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// ProcessStream concurrently parses messages read from input and sends the
// parsed Message values to output, bounded by the Processor's concurrency
// limit, until input closes or ctx is cancelled.
func (p *Processor) ProcessStream(ctx context.Context, input <-chan []byte, output chan<- *Message) error {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, p.concurrency)

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()

		case data, ok := <-input:
			if !ok {
				wg.Wait()
				return nil
			}

			wg.Add(1)
			semaphore <- struct{}{}

			go func(msgData []byte) {
				defer wg.Done()
				defer func() { <-semaphore }()

				msg, err := p.family.Parse(msgData)
				if err != nil {
					if p.errorHandler != nil {
						p.errorHandler(err)
					}
					return
				}

				select {
				case output <- msg:
				case <-ctx.Done():
				}
			}(data)
		}
	}
}
