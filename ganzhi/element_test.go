package ganzhi_test

import (
	"testing"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/stretchr/testify/assert"
)

// TestElement_GenerationCycle walks the full generation cycle
// Metal→Water→Wood→Fire→Earth→Metal.
func TestElement_GenerationCycle(t *testing.T) {
	cycle := []ganzhi.Element{ganzhi.Metal, ganzhi.Water, ganzhi.Wood, ganzhi.Fire, ganzhi.Earth}
	for i, e := range cycle {
		next := cycle[(i+1)%len(cycle)]
		assert.True(t, e.Generates(next), "%s must generate %s", e, next)
		assert.False(t, next.Generates(e), "%s must not generate %s", next, e)
	}
}

// TestElement_ControlCycle walks the control cycle
// Metal→Wood, Water→Fire, Wood→Earth, Fire→Metal, Earth→Water.
func TestElement_ControlCycle(t *testing.T) {
	controls := map[ganzhi.Element]ganzhi.Element{
		ganzhi.Metal: ganzhi.Wood,
		ganzhi.Water: ganzhi.Fire,
		ganzhi.Wood:  ganzhi.Earth,
		ganzhi.Fire:  ganzhi.Metal,
		ganzhi.Earth: ganzhi.Water,
	}
	for e, target := range controls {
		assert.True(t, e.Controls(target), "%s must control %s", e, target)
		assert.False(t, e.Generates(target), "%s must not generate %s", e, target)
	}
}

// TestRelate_Total verifies every element pair lands in exactly one relation
// and that the directed relations mirror correctly.
func TestRelate_Total(t *testing.T) {
	for a := ganzhi.Element(0); a < ganzhi.NumElements; a++ {
		for b := ganzhi.Element(0); b < ganzhi.NumElements; b++ {
			rel := ganzhi.Relate(a, b)
			switch {
			case a == b:
				assert.Equal(t, ganzhi.RelationSame, rel)
			case a.Generates(b):
				assert.Equal(t, ganzhi.RelationGenerates, rel)
			case a.Controls(b):
				assert.Equal(t, ganzhi.RelationControls, rel)
			case b.Generates(a):
				assert.Equal(t, ganzhi.RelationGeneratedBy, rel)
			default:
				assert.Equal(t, ganzhi.RelationControlledBy, rel)
			}
		}
	}
}

// TestRelate_Mirror checks that swapping arguments flips the directed relations.
func TestRelate_Mirror(t *testing.T) {
	assert.Equal(t, ganzhi.RelationGenerates, ganzhi.Relate(ganzhi.Wood, ganzhi.Fire))
	assert.Equal(t, ganzhi.RelationGeneratedBy, ganzhi.Relate(ganzhi.Fire, ganzhi.Wood))
	assert.Equal(t, ganzhi.RelationControls, ganzhi.Relate(ganzhi.Wood, ganzhi.Earth))
	assert.Equal(t, ganzhi.RelationControlledBy, ganzhi.Relate(ganzhi.Earth, ganzhi.Wood))
}
