package params

// VisitFunc decides what Compare emits for a key. a is the value from the
// walked tree; for a subtree it is the tree Compare collected from the
// recursive walk. b is the counterpart from the other tree and inB reports
// whether the key exists there. Returning false declines the key.
type VisitFunc func(key string, a, b Value, inB bool) (Value, bool)

// Compare walks the keys of a against b and collects the pairs visit
// emits into a new tree.
//
// A subtree of a that is equal to its counterpart in b is skipped
// entirely. Any other subtree is compared recursively against the
// counterpart (an empty tree when b has no tree at that key), and visit is
// then called with the collected result. Scalars, lists and nulls are
// passed to visit as they are.
func Compare(a, b Tree, visit VisitFunc) Tree {
	out := make(Tree)
	for k, av := range a {
		bv, inB := b[k]

		if av.kind == KindTree {
			if inB && av.Equal(bv) {
				continue
			}
			sub := Compare(av.tree, bv.Tree(), visit)
			if v, ok := visit(k, Nested(sub), bv, inB); ok {
				out[k] = v
			}
			continue
		}

		if v, ok := visit(k, av, bv, inB); ok {
			out[k] = v
		}
	}
	return out
}
