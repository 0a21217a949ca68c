package allocation

import "fmt"

func ExampleAllocation() {
	// a fixed allocation, rewritten to equal weights.
	static := Static(Row{"a": W(0.2), "b": W(0.8)})
	pipeline := NewEqualWeight(static)

	// days may be duplicated and unordered, the entry point cleans them up.
	table, err := AllocationStrings(pipeline, "2022-08-02", "2022-08-01", "2022-08-02")
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, on := range table.Days() {
		row := table[on]
		for _, asset := range row.Assets() {
			fmt.Printf("%s %s %s\n", on, asset, row[asset])
		}
	}
	// Output:
	// 2022-08-01 a 0.5
	// 2022-08-01 b 0.5
	// 2022-08-02 a 0.5
	// 2022-08-02 b 0.5
}
