// SPDX-License-Identifier: MIT
package notation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

type (
	// Result holds the outcome of parsing one buffer.
	Result struct {
		Err   error
		Items Items
	}
)

// Batch parsing errors.
var (
	ErrBatch    = errors.New("failed to parse batch")
	ErrPanicked = errors.New("recovery from panic")
)

// ParseAll parses independent buffers concurrently on a goroutine pool.
//
// Results follow the order of inputs; a buffer's parse error is kept in its Result. The
// returned error reports pool failures & context cancelation, in which case the Results of
// unparsed buffers hold the cause.
func (p *Parser) ParseAll(ctx context.Context, inputs []string) (results []Result, err error) {
	results = make([]Result, len(inputs))
	if len(inputs) < 1 {
		return
	}

	size := p.workers
	if size > len(inputs) {
		size = len(inputs)
	}

	pool, err := ants.NewPool(size, ants.WithLogger(p.log()))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrBatch, err)
		return
	}
	defer pool.Release()

	wg := new(sync.WaitGroup)
	for index := range inputs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
		default:
		}
		if err != nil {
			results[index].Err = err
			continue
		}

		index := index
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[index].Err = fmt.Errorf("%w: %v", ErrPanicked, r)
				}
			}()

			// Buffers are small; cancelation is only observed between them.
			if ctxErr := ctx.Err(); ctxErr != nil {
				results[index].Err = ctxErr
				return
			}
			results[index].Items, results[index].Err = p.Parse(inputs[index])
		}); submitErr != nil {
			wg.Done()
			err = fmt.Errorf("%w: %v", ErrBatch, submitErr)
			results[index].Err = err
		}
	}
	wg.Wait()

	if ctxErr := ctx.Err(); err == nil && ctxErr != nil {
		for index := range results {
			if results[index].Err == ctxErr {
				err = ctxErr
				break
			}
		}
	}

	return
}
