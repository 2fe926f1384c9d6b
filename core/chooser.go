package core

import (
	"context"
	"fmt"
	"slices"

	"github.com/huangsam/ringside/internal/contract"
)

// Prompts passed to a Chooser.
const (
	PromptBodyType  = "body_type"
	PromptPersona   = "persona"
	PromptFinisher  = "finisher"
	PromptSignature = "signature"
)

// Chooser presents options to a player and returns the one picked.
// Options are never empty when Choose is called.
type Chooser interface {
	Choose(ctx context.Context, prompt string, options []string) (string, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(ctx context.Context, prompt string, options []string) (string, error)

// Choose calls f.
func (f ChooserFunc) Choose(ctx context.Context, prompt string, options []string) (string, error) {
	return f(ctx, prompt, options)
}

// FirstChooser always picks the first option, which is the best ranked one.
type FirstChooser struct{}

// Choose returns options[0].
func (FirstChooser) Choose(_ context.Context, _ string, options []string) (string, error) {
	return options[0], nil
}

// FixedChooser answers prompts from preset picks, falling back to the first option
// for prompts it has no pick for.
type FixedChooser map[string]string

// Choose returns the preset pick for prompt. A pick that is not among the options is an error.
func (f FixedChooser) Choose(_ context.Context, prompt string, options []string) (string, error) {
	pick, ok := f[prompt]
	if !ok || pick == "" {
		return options[0], nil
	}
	if !slices.Contains(options, pick) {
		return "", fmt.Errorf("%w: %q is not an available %s, choose one of %v", contract.ErrInvalidInput, pick, prompt, options)
	}
	return pick, nil
}

// choose guards against empty option lists and picks through c.
func choose(ctx context.Context, c Chooser, prompt string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%w: no eligible %s options", contract.ErrNotEligible, prompt)
	}
	if c == nil {
		c = FirstChooser{}
	}
	pick, err := c.Choose(ctx, prompt, options)
	if err != nil {
		return "", err
	}
	if !slices.Contains(options, pick) {
		return "", fmt.Errorf("%w: %q is not an available %s", contract.ErrInvalidInput, pick, prompt)
	}
	return pick, nil
}
