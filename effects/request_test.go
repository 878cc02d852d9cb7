// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/melloom/Vocalix-sub017/audio"
	"github.com/melloom/Vocalix-sub017/internal/audiotest"
)

func TestRequestApplyDispatch(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(8000, 1, 8000, 440, 0.5)

	tests := []struct {
		name       string
		req        Request
		wantFrames int
	}{
		{"trim", Request{Kind: KindTrim, Trim: &TrimParams{Start: 0.25}}, 6000},
		{"normalize", Request{Kind: KindNormalize, Normalize: &NormalizeParams{TargetPeak: 0.5}}, 8000},
		{"pitch shift", Request{Kind: KindPitchShift, PitchShift: &PitchShiftParams{Semitones: 12}}, 4000},
		{"speed change", Request{Kind: KindSpeedChange, SpeedChange: &SpeedChangeParams{Factor: 2}}, 4000},
		{"echo", Request{Kind: KindEcho, Echo: &EchoParams{Delay: 0.1, Feedback: 0.5, Wet: 0.5}}, 11200},
		{"reverb", Request{Kind: KindReverb, Reverb: &ReverbParams{RoomSize: 0.5, Damping: 0.5, Wet: 0.3}}, 8000},
		{"voice filter", Request{Kind: KindVoiceFilter, VoiceFilter: &VoiceFilterParams{Preset: PresetChipmunk, Intensity: 1}}, 5333},
		{"noise suppress", Request{Kind: KindNoiseSuppress, NoiseSuppress: &NoiseSuppressParams{Strength: 0.5}}, 8000},
		{"silence remove", Request{Kind: KindSilenceRemove, SilenceRemove: &SilenceRemoveParams{Threshold: 0.02, MinDuration: 0.3, Padding: 0.1}}, 8000},
		{"resample", Request{Kind: KindResample, Resample: &ResampleParams{TargetRate: 16000}}, 16000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.req.Apply(in)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := out.Frames(); got != tt.wantFrames {
				t.Fatalf("Frames() = %d, want %d", got, tt.wantFrames)
			}
		})
	}
}

func TestRequestApplyDefaults(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(8000, 1, 8000, 440, 0.5)

	t.Run("normalize", func(t *testing.T) {
		out, err := Request{Kind: KindNormalize}.Apply(in)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		if got := out.Peak(); math.Abs(got-0.95) > 1e-6 {
			t.Fatalf("Peak() = %v, want the 0.95 default target", got)
		}
	})

	t.Run("echo", func(t *testing.T) {
		out, err := Request{Kind: KindEcho}.Apply(in)
		if err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
		// Default delay 0.3 s at 8 kHz extends the clip by 4*2400 frames.
		if got := out.Frames(); got != 17600 {
			t.Fatalf("Frames() = %d, want 17600", got)
		}
	})

	t.Run("voice filter needs a preset", func(t *testing.T) {
		_, err := Request{Kind: KindVoiceFilter}.Apply(in)
		if !errors.Is(err, ErrUnknownPreset) {
			t.Fatalf("error = %v, want ErrUnknownPreset", err)
		}
	})

	// Kinds whose zero or default parameters describe a no-op must hand
	// the input back untouched.
	for _, kind := range []string{KindTrim, KindPitchShift, KindSpeedChange, KindResample, KindSilenceRemove} {
		t.Run(kind, func(t *testing.T) {
			out, err := Request{Kind: kind}.Apply(in)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if out != in {
				t.Fatal("expected the input buffer back unchanged")
			}
		})
	}
}

func TestRequestApplyUnknownKind(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(8000, 1, 800, 440, 0.5)

	for _, kind := range []string{"flanger", ""} {
		out, err := Request{Kind: kind}.Apply(in)
		if !errors.Is(err, ErrUnknownEffect) {
			t.Fatalf("Apply(%q) error = %v, want ErrUnknownEffect", kind, err)
		}
		if out != in {
			t.Fatal("failed request must hand the input back")
		}
	}
}

func TestRequestApplyInvalidBuffer(t *testing.T) {
	t.Parallel()

	_, err := Request{Kind: KindTrim}.Apply(nil)
	if !errors.Is(err, audio.ErrNilBuffer) {
		t.Fatalf("error = %v, want ErrNilBuffer", err)
	}
}

func TestRequestJSON(t *testing.T) {
	t.Parallel()

	req := Request{
		Kind: KindEcho,
		Echo: &EchoParams{Delay: 0.25, Feedback: 0.5, Wet: 0.4},
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"kind":"echo","echo":{"delay":0.25,"feedback":0.5,"wet":0.4}}`
	if string(data) != want {
		t.Fatalf("Marshal() = %s, want %s", data, want)
	}

	var back Request
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(back, req) {
		t.Fatalf("round trip = %+v, want %+v", back, req)
	}
}

func TestRequestParams(t *testing.T) {
	t.Parallel()

	req := Request{Kind: KindEcho, Echo: &EchoParams{Delay: 0.25}}
	if got, ok := req.Params().(EchoParams); !ok || got.Delay != 0.25 {
		t.Fatalf("Params() = %v, want the echo parameters", req.Params())
	}

	if got := (Request{Kind: KindEcho}).Params(); got != nil {
		t.Fatalf("Params() = %v, want nil for an unset field", got)
	}

	// A parameter field that does not match the kind stays invisible.
	mismatched := Request{Kind: KindTrim, Echo: &EchoParams{Delay: 0.25}}
	if got := mismatched.Params(); got != nil {
		t.Fatalf("Params() = %v, want nil for a mismatched field", got)
	}
}
