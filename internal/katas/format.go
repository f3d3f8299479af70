package katas

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// listString formats elems as a bracketed, comma-separated list, for example "[1, 2, 3]".
func listString[T any](elems []T) string {
	return "[" + strings.Join(lo.Map(elems, func(elem T, _ int) string { return fmt.Sprint(elem) }), ", ") + "]"
}
