package scopes

import (
	"fmt"
	"go/token"

	"github.com/sirkon/rbtree"
)

// span stores a [start,end] range of a scope and a nested tree for spans
// fully contained in it.
type span struct {
	start token.Pos
	end   token.Pos

	scope    *Scope
	children *rbtree.Tree[*span]
}

// Cmp orders spans as "disjoint by position": overlapping spans compare equal,
// so InsertReturn hands back the node the new span overlaps with.
func (n *span) Cmp(other *span) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *span) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts s into t keeping a strict containment hierarchy:
//   - no overlapping node: s becomes a sibling in t.
//   - s contains the overlapping node r: r is overwritten in place with s and
//     the old r is reattached as a child of s.
//   - r contains s: s descends into r children.
func attachInto(t *rbtree.Tree[*span], s *span) error {
	r := t.InsertReturn(s)
	if r == s {
		return nil
	}

	switch {
	case contains(s, r):
		old := *r
		*r = *s
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		return attachInto(r.children, &old)

	case contains(r, s):
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		return attachInto(r.children, s)

	default:
		return fmt.Errorf(
			"scope %s [%d,%d] partially overlaps scope %s [%d,%d]",
			s.scope, s.start, s.end, r.scope, r.start, r.end,
		)
	}
}

func descendPath(t *rbtree.Tree[*span], pos token.Pos, acc []*Scope) []*Scope {
	probe := &span{start: pos, end: pos}
	for t != nil {
		n := t.Search(probe)
		if n == nil {
			break
		}

		acc = append(acc, n.scope)
		t = n.children
	}

	return acc
}
