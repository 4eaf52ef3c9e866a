// Package stringseq provides functions for converting iterator sequences to strings.
package stringseq

import (
	"fmt"
	"iter"
	"strings"
)

// AppendFunc appends the elements of seq converted by f to the given string builder.
// The separator string sep is placed between elements in the resulting string.
func AppendFunc[T any](b *strings.Builder, seq iter.Seq[T], f func(T) string, sep string) {
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(item))
		n++
	}
}

// JoinStringer concatenates the stringified elements of its first argument to create a single
// string. The separator string sep is placed between elements in the resulting string.
func JoinStringer[T fmt.Stringer](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	AppendFunc(&b, seq, func(x T) string { return x.String() }, sep)
	return b.String()
}

// JoinInts concatenates integers in base 10 separated by sep.
func JoinInts[T ~int | ~int32 | ~int64](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	AppendFunc(&b, seq, func(x T) string { return fmt.Sprint(int64(x)) }, sep)
	return b.String()
}
