package loader

import (
	"fmt"
	"sort"
)

var builtins = map[string]Source{
	"primegame": {
		Name:        "primegame",
		Description: "Conway's PRIMEGAME: from 2, the powers of two reached are 2^p for each prime p in order",
		Fractions: []string{
			"17/91", "78/85", "19/51", "23/38", "29/33", "77/29", "95/23",
			"77/19", "1/17", "11/13", "13/11", "15/14", "15/2", "55/1",
		},
		Input: 2,
	},
	"multiply": {
		Name:        "multiply",
		Description: "2^a * 3^b halts at 5^(a*b)",
		Fractions:   []string{"455/33", "11/13", "1/11", "3/7", "11/2", "1/3"},
		Input:       72,
	},
	"add": {
		Name:        "add",
		Description: "2^a * 3^b halts at 3^(a+b)",
		Fractions:   []string{"3/2"},
		Input:       72,
	},
	"halve": {
		Name:        "halve",
		Description: "divides by two until odd",
		Fractions:   []string{"1/2"},
		Input:       4,
	},
}

// Builtin returns a copy of the named built-in program.
func Builtin(name string) (*Source, error) {
	src, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in program %q", name)
	}
	src.Fractions = append([]string(nil), src.Fractions...)
	return &src, nil
}

// BuiltinNames lists the built-in programs in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
