// Command export writes test case definitions to JSON for the Python reference generator.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/wireframe/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	A      [2]int `json:"a"`
	B      [2]int `json:"b"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	return jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		A:      pointToJSON(tc.A),
		B:      pointToJSON(tc.B),
	}
}

func pointToJSON(p image.Point) [2]int {
	return [2]int{p.X, p.Y}
}
