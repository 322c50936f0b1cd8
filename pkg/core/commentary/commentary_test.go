package commentary

import (
	"strings"
	"testing"

	"acquisition_calc/pkg/core/scenario"
)

func TestBuildPrompt(t *testing.T) {
	r := scenario.Compute(scenario.Input{TargetRevenues: []float64{2500000}})[0]

	prompt := BuildPrompt(r)

	for _, want := range []string{
		"Purchase price: $2625000",
		"Cash required at close: $617625",
		"DSCR:",
		"Risk score:",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildPromptDegenerate(t *testing.T) {
	r := scenario.Compute(scenario.Input{TargetRevenues: []float64{0}})[0]

	prompt := BuildPrompt(r)
	if !strings.Contains(prompt, "Warnings:") {
		t.Error("degenerate scenario warnings must reach the model")
	}
	if strings.Contains(prompt, "NaN") || strings.Contains(prompt, "Inf") {
		t.Errorf("degenerate figures leaked: %s", prompt)
	}
}
