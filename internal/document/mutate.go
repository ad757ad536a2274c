package document

import (
	"fmt"

	perrors "github.com/perchhub/perch-config/internal/errors"
)

// Set returns a new document with the node at path replaced by value.
//
// Intermediate segments that do not already address a mapping are replaced
// by empty mappings, so setting is destructive: whatever was below a
// non-mapping intermediate is discarded.
func Set(doc Mapping, path Path, value Node) Mapping {
	root := doc.shallowCopy()
	cur := root
	for i, segment := range path {
		if i == len(path)-1 {
			cur[segment] = value
			break
		}
		next, ok := cur[segment].(Mapping)
		if !ok {
			next = Mapping{}
		} else {
			next = next.shallowCopy()
		}
		cur[segment] = next
		cur = next
	}
	return root
}

// Unset returns a new document with the node at path deleted. Every segment
// of the path must exist; otherwise ErrPathNotFound is returned and the
// document is unchanged.
//
// After the deletion, mapping ancestors left empty are pruned all the way
// up to the root. The walk runs over the captured ancestor chain, so an
// ancestor that has already disappeared is simply skipped.
func Unset(doc Mapping, path Path) (Mapping, error) {
	root := doc.shallowCopy()

	// Copy each mapping on the way down, capturing the chain for pruning.
	chain := make([]Mapping, 0, len(path))
	chain = append(chain, root)
	cur := root
	for _, segment := range path[:len(path)-1] {
		next, ok := cur[segment].(Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
		}
		next = next.shallowCopy()
		cur[segment] = next
		cur = next
		chain = append(chain, cur)
	}

	final := path[len(path)-1]
	if _, ok := cur[final]; !ok {
		return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
	}
	delete(cur, final)

	for i := len(chain) - 1; i > 0; i-- {
		if len(chain[i]) != 0 {
			break
		}
		delete(chain[i-1], path[i-1])
	}

	return root, nil
}

// AddItem returns a new document with value appended to the list at path.
// Intermediate segments are created destructively as in Set. When the final
// segment is absent or does not hold a list, it is replaced by an empty
// list before the append.
func AddItem(doc Mapping, path Path, value Node) Mapping {
	root := doc.shallowCopy()
	cur := root
	for _, segment := range path[:len(path)-1] {
		next, ok := cur[segment].(Mapping)
		if !ok {
			next = Mapping{}
		} else {
			next = next.shallowCopy()
		}
		cur[segment] = next
		cur = next
	}

	final := path[len(path)-1]
	list, ok := cur[final].(List)
	if !ok {
		list = List{}
	} else {
		list = list.shallowCopy()
	}
	cur[final] = append(list, value)
	return root
}

// RemoveItem returns a new document with the first occurrence of value
// removed from the list at path. Occurrences are matched by structural
// equality.
//
// Intermediate segments must address existing mappings (ErrPathNotFound
// otherwise). The final segment must hold a list (ErrNotAList otherwise),
// and the value must be present in it (ErrValueNotFound otherwise).
func RemoveItem(doc Mapping, path Path, value Node) (Mapping, error) {
	root := doc.shallowCopy()
	cur := root
	for _, segment := range path[:len(path)-1] {
		next, ok := cur[segment].(Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
		}
		next = next.shallowCopy()
		cur[segment] = next
		cur = next
	}

	final := path[len(path)-1]
	list, ok := cur[final].(List)
	if !ok {
		return nil, fmt.Errorf("%w: %s", perrors.ErrNotAList, path)
	}
	for i, item := range list {
		if Equal(item, value) {
			out := make(List, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			cur[final] = out
			return root, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has no item %v", perrors.ErrValueNotFound, path, ToGo(value))
}

// Get returns the node at path, or ErrPathNotFound if any segment is
// absent or an intermediate segment does not address a mapping. It is a
// pure projection used by show; nothing is copied.
func Get(doc Mapping, path Path) (Node, error) {
	var cur Node = doc
	for _, segment := range path {
		mapping, ok := cur.(Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
		}
		next, present := mapping[segment]
		if !present {
			return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
		}
		cur = next
	}
	return cur, nil
}
