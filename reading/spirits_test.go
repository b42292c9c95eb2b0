package reading_test

import (
	"testing"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/reading"
	"github.com/stretchr/testify/assert"
)

// TestSpiritOf_Seeds: the day stem seeds the bottom line.
func TestSpiritOf_Seeds(t *testing.T) {
	cases := map[ganzhi.Stem]reading.Spirit{
		ganzhi.StemJia:  reading.Qinglong,
		ganzhi.StemYi:   reading.Qinglong,
		ganzhi.StemBing: reading.Zhuque,
		ganzhi.StemDing: reading.Zhuque,
		ganzhi.StemWu:   reading.Gouchen,
		ganzhi.StemJi:   reading.Tengshe,
		ganzhi.StemGeng: reading.Baihu,
		ganzhi.StemXin:  reading.Baihu,
		ganzhi.StemRen:  reading.Xuanwu,
		ganzhi.StemGui:  reading.Xuanwu,
	}
	for stem, want := range cases {
		assert.Equal(t, want, reading.SpiritOf(stem, 1), "day stem %s", stem)
	}
}

// TestSpiritOf_Walk: spirits walk the six lines in cycle order and wrap.
func TestSpiritOf_Walk(t *testing.T) {
	for pos := 1; pos <= 6; pos++ {
		assert.Equal(t, reading.Spirit(pos-1), reading.SpiritOf(ganzhi.StemJia, pos))
	}

	// 己 seeds 螣蛇, so the walk wraps back through 青龍.
	assert.Equal(t, reading.Tengshe, reading.SpiritOf(ganzhi.StemJi, 1))
	assert.Equal(t, reading.Xuanwu, reading.SpiritOf(ganzhi.StemJi, 3))
	assert.Equal(t, reading.Qinglong, reading.SpiritOf(ganzhi.StemJi, 4))
	assert.Equal(t, reading.Gouchen, reading.SpiritOf(ganzhi.StemJi, 6))
}
