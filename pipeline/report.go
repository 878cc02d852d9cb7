// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/effects"
)

// EffectStatus records what the engine did with one requested effect.
type EffectStatus string

const (
	// StatusApplied means the effect ran and its output was kept.
	StatusApplied EffectStatus = "applied"
	// StatusSkipped means the effect failed in best-effort mode and
	// the chain continued with its input unchanged.
	StatusSkipped EffectStatus = "skipped"
	// StatusFailed means the effect failed in strict mode and aborted
	// the chain.
	StatusFailed EffectStatus = "failed"
)

// AppliedEffect is one entry of a processing report: the effect name,
// what happened to it, and the parameters it ran with. Params carries
// the same record the request was built from, so a marshalled entry
// reads like {"name":"echo","status":"applied","params":{"delay":0.3,...}}.
type AppliedEffect struct {
	Name   string       `json:"name"`
	Status EffectStatus `json:"status"`
	Params any          `json:"params,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// Report describes one engine run. It marshals to JSON and is meant to
// be stored next to the processed clip so playback analytics can tell
// which transforms shaped it.
type Report struct {
	Quality *audio.QualityMetrics `json:"quality,omitempty"`
	Effects []AppliedEffect       `json:"effects,omitempty"`
}

func (r *Report) add(req effects.Request, status EffectStatus, err error) {
	entry := AppliedEffect{
		Name:   req.Kind,
		Status: status,
		Params: req.Params(),
	}
	if err != nil {
		entry.Error = err.Error()
	}
	r.Effects = append(r.Effects, entry)
}

// Applied reports whether the named effect ran successfully.
func (r *Report) Applied(name string) bool {
	for _, e := range r.Effects {
		if e.Name == name && e.Status == StatusApplied {
			return true
		}
	}
	return false
}
