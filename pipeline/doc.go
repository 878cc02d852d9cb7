// SPDX-License-Identifier: EPL-2.0

/*
Package pipeline chains effects over a bounded worker pool.

An Engine owns a fixed number of workers and a bounded queue. Each
Apply call occupies exactly one worker for the whole chain, so effects
run in request order and back-to-back uploads queue up instead of
running unbounded:

	eng := pipeline.New(pipeline.Options{Workers: 4})
	defer eng.Close()

	out, report, err := eng.Apply(ctx, buf, []effects.Request{
		{Kind: effects.KindSilenceRemove},
		{Kind: effects.KindNormalize},
	})

# Strict And Best-Effort

Apply is strict: the first failing effect aborts the chain and the
caller keeps the original buffer. ApplyBestEffort is the lenient
variant for user-facing flows, where a broken echo setting should not
cost the uploader their clip: the failed effect is logged, marked
skipped in the report, and the chain continues with its input.

# Auto Enhancement

AutoEnhance is the one-tap cleanup path. It measures the clip with
audio.AnalyzeQuality and applies only what the metrics call for, noise
suppression first, then normalization. The returned report records the
metrics and the transforms chosen, ready to be stored as JSON next to
the clip.
*/
package pipeline
