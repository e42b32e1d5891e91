package sll

import (
	"fmt"
	"strings"
)

// String renders the list as Sll[v0, v1, ...], an empty list as Sll[].
func (l *Sll) String() string {
	var b strings.Builder
	b.WriteString("Sll[")
	for i, item := range l.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteString("]")
	return b.String()
}
