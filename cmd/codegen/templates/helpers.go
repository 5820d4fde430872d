package templates

import (
	"strconv"
	"strings"
)

// prefixedStrings returns "p0, p1, ..., pN-1".
func prefixedStrings(prefix string, count int) string {
	return indexed(count, func(i string) string {
		return prefix + i
	})
}

// readableParams returns the input parameter list of an arity-count wrapper.
func readableParams(count int) string {
	return indexed(count, func(i string) string {
		return "in" + i + " reactive.Readable[T" + i + "]"
	})
}

// readArgs returns the tracked reads passed to the wrapped function.
func readArgs(count int) string {
	return indexed(count, func(i string) string {
		return "in" + i + ".Value()"
	})
}

func inputCount(count int) string {
	if count == 1 {
		return "one input"
	}
	return strconv.Itoa(count) + " inputs"
}

func effectInputs(count int) string {
	if count == 1 {
		return "the current value of one input, and again whenever it changes"
	}
	return "the current values of " + strconv.Itoa(count) + " inputs, and again whenever one changes"
}

func indexed(count int, f func(i string) string) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(f(strconv.Itoa(i)))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
