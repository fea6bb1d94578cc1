package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// A finished tween runs its finish hooks and hands control to the chained
// follow-up tween, the way the game-over overlay chains into the label.
func TestActionChainRunsFollowUpTween(t *testing.T) {
	g := &Game{Tweens: make(map[*gween.Tween]Action)}

	var dimValues, fadeValues []float32
	finished := false

	dim := Action{onChange: func(v float32) { dimValues = append(dimValues, v) }}
	fade := dim.next(gween.New(0, 1, 0.1, ease.Linear))
	fade.onChange = func(v float32) { fadeValues = append(fadeValues, v) }
	fade.addOnFinish(func() { finished = true })
	g.Tweens[gween.New(0, 0.65, 0.1, ease.OutQuad)] = dim

	for i := 0; i < 20 && len(g.Tweens) > 0; i++ {
		g.stepTweens(0.02)
	}

	assert.Empty(t, g.Tweens)
	assert.NotEmpty(t, dimValues)
	assert.NotEmpty(t, fadeValues)
	assert.True(t, finished)
	assert.Equal(t, float32(0.65), dimValues[len(dimValues)-1])
	assert.Equal(t, float32(1), fadeValues[len(fadeValues)-1])
}
