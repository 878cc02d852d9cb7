package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/effects"
)

// Codec turns container bytes into buffers and back. The root package
// provides an implementation that sniffs the container format; tests
// can plug in a single-format codec.
type Codec interface {
	Decode(data []byte) (*audio.Buffer, error)
	Encode(buf *audio.Buffer) ([]byte, error)
}

// ProcessClips decodes, transforms and re-encodes a batch of clips on
// the worker pool, one pool job per clip. Results keep the input
// order. The batch is strict: the first clip that fails to decode,
// transform or encode cancels the rest and its error is returned.
func (e *Engine) ProcessClips(ctx context.Context, codec Codec, clips [][]byte, reqs []effects.Request) ([][]byte, error) {
	out := make([][]byte, len(clips))

	g, ctx := errgroup.WithContext(ctx)
	for i, raw := range clips {
		g.Go(func() error {
			return e.do(ctx, func() error {
				buf, err := codec.Decode(raw)
				if err != nil {
					return fmt.Errorf("clip %d: decode: %w", i, err)
				}
				processed, err := e.chain(ctx, buf, reqs, &Report{}, true)
				if err != nil {
					return fmt.Errorf("clip %d: %w", i, err)
				}
				data, err := codec.Encode(processed)
				if err != nil {
					return fmt.Errorf("clip %d: encode: %w", i, err)
				}
				out[i] = data
				return nil
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
