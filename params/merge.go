package params

// Merge deep-merges patch into base and returns the result as a new tree.
// Neither input is modified.
//
// For every key in patch:
//   - a null value removes the key from the result;
//   - a tree value merges recursively into a tree value in base;
//   - anything else replaces the value in base.
//
// Keys present only in base are kept unchanged.
func Merge(base, patch Tree) Tree {
	return merge(base, patch, false)
}

// Overlay merges like Merge but records deletions as null values instead
// of removing the keys, so the result still tells which keys the patch
// cleared.
func Overlay(base, patch Tree) Tree {
	return merge(base, patch, true)
}

func merge(base, patch Tree, keepNull bool) Tree {
	out := base.Clone()
	for k, pv := range patch {
		switch pv.kind {
		case KindNull:
			if keepNull {
				out[k] = Null()
			} else {
				delete(out, k)
			}
		case KindTree:
			if bv, ok := out[k]; ok && bv.kind == KindTree {
				out[k] = Nested(merge(bv.tree, pv.tree, keepNull))
				continue
			}
			if keepNull {
				out[k] = pv.Clone()
			} else {
				out[k] = Nested(pv.tree.Compact())
			}
		default:
			out[k] = pv.Clone()
		}
	}
	return out
}
