// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/effects"
)

// Apply runs the requests in order on one worker and returns the
// transformed buffer. The first failing effect aborts the chain: the
// caller gets the original buffer back, the error names the effect
// that failed, and the report shows how far the chain got. Cancelling
// ctx while the job is queued or between effects also aborts.
func (e *Engine) Apply(ctx context.Context, buf *audio.Buffer, reqs []effects.Request) (*audio.Buffer, *Report, error) {
	report := &Report{}
	if err := buf.Validate(); err != nil {
		return buf, report, err
	}

	out := buf
	err := e.do(ctx, func() error {
		result, err := e.chain(ctx, buf, reqs, report, true)
		if err != nil {
			return err
		}
		out = result
		return nil
	})
	if err != nil {
		return buf, report, err
	}
	return out, report, nil
}

// ApplyBestEffort runs the requests in order, skipping any effect that
// fails instead of aborting. Skipped effects are logged and marked in
// the report; the rest of the chain continues on the last good buffer.
// On cancellation the buffer processed so far is returned.
func (e *Engine) ApplyBestEffort(ctx context.Context, buf *audio.Buffer, reqs []effects.Request) (*audio.Buffer, *Report) {
	report := &Report{}
	if err := buf.Validate(); err != nil {
		e.log.WithError(err).Warn("refusing to process invalid buffer")
		return buf, report
	}

	out := buf
	err := e.do(ctx, func() error {
		var err error
		out, err = e.chain(ctx, buf, reqs, report, false)
		return err
	})
	if err != nil {
		e.log.WithError(err).Warn("effect chain abandoned")
	}
	return out, report
}

// chain executes reqs sequentially, recording each outcome in rep. In
// strict mode the first effect error stops the chain; otherwise the
// failed effect is skipped and its input flows on unchanged. The
// returned buffer is the latest intermediate result, even when the
// chain stops early on a context error.
func (e *Engine) chain(ctx context.Context, buf *audio.Buffer, reqs []effects.Request, rep *Report, strict bool) (*audio.Buffer, error) {
	out := buf
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		next, err := req.Apply(out)
		if err != nil {
			if strict {
				rep.add(req, StatusFailed, err)
				return out, fmt.Errorf("%s: %w", req.Kind, err)
			}
			e.log.WithFields(logrus.Fields{
				"effect": req.Kind,
				"error":  err,
			}).Warn("effect failed, passing audio through")
			rep.add(req, StatusSkipped, err)
			continue
		}
		rep.add(req, StatusApplied, nil)
		out = next
	}
	return out, nil
}
