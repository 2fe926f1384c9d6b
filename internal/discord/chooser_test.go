package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huangsam/ringside/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pickingSender answers every menu by resolving it with pick(options).
type pickingSender struct {
	selections *selections
	userID     string
	pick       func(options []string) string
	labels     []string
	sizes      []int
	err        error
}

func (p *pickingSender) SendMenu(_ context.Context, customID, label string, options []string) error {
	p.labels = append(p.labels, label)
	p.sizes = append(p.sizes, len(options))
	if p.err != nil {
		return p.err
	}
	if p.pick != nil {
		go p.selections.resolve(customID, p.userID, p.pick(options))
	}
	return nil
}

func TestSelections(t *testing.T) {
	s := newSelections()
	id, ch := s.open("u1")
	assert.Contains(t, id, selectPrefix)
	assert.Equal(t, 1, s.size())

	assert.False(t, s.resolve(id, "u2", "Giant"), "another user's pick is rejected")
	assert.False(t, s.resolve(selectPrefix+"999", "u1", "Giant"))
	assert.True(t, s.resolve(id, "u1", "Giant"))
	assert.Equal(t, "Giant", <-ch)
	assert.Zero(t, s.size())
	assert.False(t, s.resolve(id, "u1", "Giant"), "a menu resolves once")

	other, _ := s.open("u1")
	assert.NotEqual(t, id, other)
	s.close(other)
	assert.Zero(t, s.size())
}

func TestMenuChooser(t *testing.T) {
	sel := newSelections()
	sender := &pickingSender{selections: sel, userID: "u1", pick: func(o []string) string { return o[len(o)-1] }}
	c := &menuChooser{sender: sender, selections: sel, userID: "u1", timeout: time.Second}

	got, err := c.Choose(context.Background(), core.PromptFinisher, []string{"Piledriver", "Powerbomb"})
	require.NoError(t, err)
	assert.Equal(t, "Powerbomb", got)
	assert.Equal(t, []string{"Pick a finisher"}, sender.labels)
	assert.Zero(t, sel.size())
}

func TestMenuChooser_TruncatesOptions(t *testing.T) {
	sel := newSelections()
	sender := &pickingSender{selections: sel, userID: "u1", pick: func(o []string) string { return o[0] }}
	c := &menuChooser{sender: sender, selections: sel, userID: "u1", timeout: time.Second}

	opts := make([]string, 40)
	for i := range opts {
		opts[i] = string(rune('A' + i))
	}
	_, err := c.Choose(context.Background(), core.PromptPersona, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{maxMenuOptions}, sender.sizes)
}

func TestMenuChooser_Failures(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		sel := newSelections()
		c := &menuChooser{sender: &pickingSender{selections: sel}, selections: sel, userID: "u1", timeout: 10 * time.Millisecond}
		_, err := c.Choose(context.Background(), core.PromptBodyType, []string{"Lean"})
		assert.ErrorIs(t, err, errPickTimeout)
		assert.Zero(t, sel.size())
	})

	t.Run("canceled", func(t *testing.T) {
		sel := newSelections()
		c := &menuChooser{sender: &pickingSender{selections: sel}, selections: sel, userID: "u1", timeout: time.Minute}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Choose(ctx, core.PromptBodyType, []string{"Lean"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("send error", func(t *testing.T) {
		sel := newSelections()
		boom := errors.New("boom")
		c := &menuChooser{sender: &pickingSender{selections: sel, err: boom}, selections: sel, userID: "u1"}
		_, err := c.Choose(context.Background(), core.PromptSignature, []string{"Lariat"})
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, sel.size())
	})
}

func TestPromptLabel(t *testing.T) {
	assert.Equal(t, "Pick a body type", promptLabel(core.PromptBodyType))
	assert.Equal(t, "Pick a signature move", promptLabel(core.PromptSignature))
	assert.Equal(t, "Pick one: ring gear", promptLabel("ring_gear"))
}
