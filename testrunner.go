package blit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string `yaml:"action" json:"action"`
	Label  string `yaml:"label,omitempty" json:"label,omitempty"`
	Key    string `yaml:"key,omitempty" json:"key,omitempty"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
	Count  int    `yaml:"count,omitempty" json:"count,omitempty"`
	DX     int    `yaml:"dx,omitempty" json:"dx,omitempty"`
	DY     int    `yaml:"dy,omitempty" json:"dy,omitempty"`
	DZ     int    `yaml:"dz,omitempty" json:"dz,omitempty"`
	Left   bool   `yaml:"left,omitempty" json:"left,omitempty"`
	Right  bool   `yaml:"right,omitempty" json:"right,omitempty"`
	Frames int    `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps" json:"steps"`
}

// TestRunner sequences injected input and screenshots across ticks for
// scripted runs. Attach to a Pipeline via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) test script and returns a TestRunner
// ready to be attached to a Pipeline via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "key":
			if _, ok := ParseScanCode(st.Key); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		case "text", "pointer", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the pipeline. The runner advances at
// the start of every Tick, before input is sampled.
func (p *Pipeline) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// TestRunner returns the attached runner, or nil.
func (p *Pipeline) TestRunner() *TestRunner {
	return p.testRunner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Pipeline.Tick.
func (r *TestRunner) step(p *Pipeline) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.pendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	count := max(st.Count, 1)
	switch st.Action {
	case "screenshot":
		p.Screenshot(st.Label)
	case "key":
		code, _ := ParseScanCode(st.Key)
		for i := 0; i < count; i++ {
			p.InjectKey(Special(code))
		}
	case "text":
		for i := 0; i < count; i++ {
			p.InjectText(st.Text)
		}
	case "pointer":
		for i := 0; i < count; i++ {
			p.InjectPointer(PointerState{DX: st.DX, DY: st.DY, DZ: st.DZ, Left: st.Left, Right: st.Right})
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	// Key and text injections are consumed by this very tick, so only
	// pointer samples can still be pending here.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectPointers) == 0 {
		r.done = true
	}
}
