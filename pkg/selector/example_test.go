package selector_test

import (
	"fmt"

	"github.com/wordkit/wordkit/pkg/selector"
)

func ExampleSelect() {
	res, _ := selector.Select(
		[]string{"apple", "ant", "banana", "bee", "crab"},
		3,
		&selector.Config{MinLength: 4, Sort: selector.SortAsc},
	)
	fmt.Println(res.Words)
	// Output: [apple banana crab]
}

func ExampleSelect_asString() {
	res, _ := selector.Select(
		[]string{"ant", "bee", "crab"},
		3,
		&selector.Config{
			Sort:          selector.SortAsc,
			CaseTransform: selector.CaseCapitalize,
			AsString:      true,
		},
	)
	fmt.Println(res.Joined)
	// Output: Ant, Bee, Crab
}

func ExampleSelect_history() {
	history := selector.NewHistory()

	first, _ := selector.Select([]string{"ant", "bee"}, 1, &selector.Config{
		Sort:    selector.SortAsc,
		History: history,
	})
	second, _ := selector.Select([]string{"ant", "bee"}, 2, &selector.Config{
		Sort:    selector.SortAsc,
		History: history,
	})

	fmt.Println(first.Words, second.Words)
	// Output: [ant] [bee]
}
