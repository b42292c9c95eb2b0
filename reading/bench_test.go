package reading_test

import (
	"testing"

	"github.com/katalvlaran/liuyao/ganzhi"
	"github.com/katalvlaran/liuyao/reading"
)

func BenchmarkCompute(b *testing.B) {
	pillars, err := ganzhi.NewFourPillars(
		ganzhi.MustPillar(ganzhi.StemYi, ganzhi.BranchSi),
		ganzhi.MustPillar(ganzhi.StemDing, ganzhi.BranchHai),
		ganzhi.MustPillar(ganzhi.StemJia, ganzhi.BranchZi),
		ganzhi.MustPillar(ganzhi.StemJia, ganzhi.BranchXu),
	)
	if err != nil {
		b.Fatal(err)
	}
	changing := []int{1, 4}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reading.Compute("111111", changing, pillars); err != nil {
			b.Fatal(err)
		}
	}
}
