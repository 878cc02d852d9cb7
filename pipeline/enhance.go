// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/effects"
)

const (
	// autoLevelBelow is the peak under which AutoEnhance normalizes.
	autoLevelBelow = 0.7
	// autoLevelTarget is the peak AutoEnhance normalizes to.
	autoLevelTarget = 0.95
)

// AutoEnhance measures the clip and applies the fix-ups the metrics
// call for: noise suppression when the noise floor is objectionable,
// then normalization when the clip peaks below a comfortable playback
// level. The report carries the measured metrics alongside whatever
// the engine ended up applying.
func (e *Engine) AutoEnhance(ctx context.Context, buf *audio.Buffer) (*audio.Buffer, *Report, error) {
	report := &Report{}
	if err := buf.Validate(); err != nil {
		return buf, report, err
	}

	out := buf
	err := e.do(ctx, func() error {
		metrics := audio.AnalyzeQuality(buf)
		report.Quality = &metrics

		result, err := e.chain(ctx, buf, enhancementPlan(metrics), report, true)
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

// enhancementPlan derives the transform sequence from measured
// quality. Suppression must run before normalization; normalizing
// first would raise the noise floor along with the voice.
func enhancementPlan(m audio.QualityMetrics) []effects.Request {
	var reqs []effects.Request
	if m.HasExcessiveNoise {
		reqs = append(reqs, effects.Request{Kind: effects.KindNoiseSuppress})
	}
	if m.Peak > 0 && m.Peak < autoLevelBelow {
		reqs = append(reqs, effects.Request{
			Kind:      effects.KindNormalize,
			Normalize: &effects.NormalizeParams{TargetPeak: autoLevelTarget},
		})
	}
	return reqs
}
