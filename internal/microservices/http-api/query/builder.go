package query

import (
	"strconv"
	"strings"
)

// Builder assembles SQL text alongside its positional arguments.
// Placeholders are numbered in the order values are bound.
type Builder struct {
	sb   strings.Builder
	args []any
}

func (b *Builder) Write(parts ...string) *Builder {
	for _, p := range parts {
		b.sb.WriteString(p)
	}
	return b
}

// Bind records v as the next argument and returns its placeholder.
func (b *Builder) Bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *Builder) Build() (string, []any) {
	return b.sb.String(), b.args
}
