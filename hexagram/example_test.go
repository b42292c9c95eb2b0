package hexagram_test

import (
	"fmt"

	"github.com/katalvlaran/liuyao/hexagram"
)

// ExampleCast casts 乾為天 with the bottom line changing and prints both
// hexagram identities.
func ExampleCast() {
	cast, transformed, err := hexagram.Cast("111111", []int{1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cast.Name, cast.Palace, cast.SelfElement)
	fmt.Println(transformed.Name, transformed.Palace, transformed.SelfElement)
	// Output:
	// 乾為天 qian metal
	// 天風姤 qian metal
}
