package reading_test

import (
	"testing"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/reading"
	"github.com/stretchr/testify/assert"
)

// TestRelativeOf_MetalPalace spells out the five categories against a
// metal palace.
func TestRelativeOf_MetalPalace(t *testing.T) {
	cases := map[ganzhi.Element]reading.Relative{
		ganzhi.Metal: reading.Sibling,
		ganzhi.Water: reading.Child,
		ganzhi.Wood:  reading.Wealth,
		ganzhi.Fire:  reading.Officer,
		ganzhi.Earth: reading.Parent,
	}
	for line, want := range cases {
		assert.Equal(t, want, reading.RelativeOf(ganzhi.Metal, line), "metal palace, %s line", line)
	}
}

// TestRelativeOf_Total: every (palace, line) element pair yields a valid
// category, and rotating both elements together preserves it.
func TestRelativeOf_Total(t *testing.T) {
	for self := ganzhi.Element(0); self < ganzhi.NumElements; self++ {
		for line := ganzhi.Element(0); line < ganzhi.NumElements; line++ {
			got := reading.RelativeOf(self, line)
			assert.True(t, got.Valid(), "%s palace, %s line", self, line)

			shifted := reading.RelativeOf((self+1)%ganzhi.NumElements, (line+1)%ganzhi.NumElements)
			assert.Equal(t, got, shifted, "category is cycle-invariant")
		}
	}
}
