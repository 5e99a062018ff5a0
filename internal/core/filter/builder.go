package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder assembles a WHERE clause as an ordered list of conjuncts with a
// strictly sequential positional parameter list. Conjunct templates use `?`
// markers which are rewritten to `$n` in emission order; the marker count
// must equal the argument count for every Add, so placeholder text and the
// parameter array can never drift apart
type Builder struct {
	conjuncts []string
	args      []any
	next      int
}

// NewBuilder returns a Builder whose first parameter is $start
// start < 1 is treated as 1
func NewBuilder(start int) *Builder {
	if start < 1 {
		start = 1
	}
	return &Builder{next: start}
}

// Add appends one conjunct, rewriting each ? to the next $n
// panics on a marker/argument count mismatch: that is a programmer error in
// a template, never a data error
func (b *Builder) Add(template string, args ...any) {
	n := strings.Count(template, "?")
	if n != len(args) {
		panic(fmt.Sprintf("filter: conjunct %q has %d placeholders but %d args", template, n, len(args)))
	}
	var sb strings.Builder
	for _, r := range template {
		if r == '?' {
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(b.next))
			b.next++
			continue
		}
		sb.WriteRune(r)
	}
	b.conjuncts = append(b.conjuncts, sb.String())
	b.args = append(b.args, args...)
}

// Next reports the positional index the next added parameter will receive
func (b *Builder) Next() int { return b.next }

// Empty reports whether no conjunct has been added
func (b *Builder) Empty() bool { return len(b.conjuncts) == 0 }

// Where joins the conjuncts with AND; empty builder yields "TRUE" so the
// fragment can be interpolated into `WHERE %s` unconditionally
func (b *Builder) Where() string {
	if len(b.conjuncts) == 0 {
		return "TRUE"
	}
	return strings.Join(b.conjuncts, "\nAND ")
}

// Args returns the ordered parameter list matching Where
func (b *Builder) Args() []any { return b.args }
