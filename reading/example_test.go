package reading_test

import (
	"fmt"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/reading"
)

// ExampleCompute casts 乾為天 with the bottom line changing on a 甲子
// day and prints the bottom line's classification.
func ExampleCompute() {
	pillars, err := ganzhi.NewFourPillars(
		ganzhi.MustPillar(ganzhi.StemYi, ganzhi.BranchSi),
		ganzhi.MustPillar(ganzhi.StemDing, ganzhi.BranchHai),
		ganzhi.MustPillar(ganzhi.StemJia, ganzhi.BranchZi),
		ganzhi.MustPillar(ganzhi.StemJia, ganzhi.BranchXu),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, err := reading.Compute("111111", []int{1}, pillars)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	first := r.Line(1)
	fmt.Println(r.Cast.Name, "→", r.Transformed.Name)
	fmt.Println(first.Relative.Glyph(), first.Line.Pillar().Glyph(), first.Spirit.Glyph())
	// Output:
	// 乾為天 → 天風姤
	// 子孫 甲子 青龍
}
