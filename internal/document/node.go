package document

import (
	"fmt"
	"math"
	"strconv"
)

// Node is a single node in a configuration document. Exactly three
// implementations exist: Scalar, List, and Mapping. The closed set lets the
// mutation operations switch over node kinds exhaustively.
type Node interface {
	node()
}

// Scalar holds a leaf value: string, int64, float64, bool, or nil.
type Scalar struct {
	Value any
}

// List is an ordered sequence of nodes.
type List []Node

// Mapping is an unordered mapping from string keys to nodes. The root of
// every document is a Mapping.
type Mapping map[string]Node

func (Scalar) node()  {}
func (List) node()    {}
func (Mapping) node() {}

// String returns the scalar's value formatted for display.
func (s Scalar) String() string {
	if s.Value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", s.Value)
}

// shallowCopy copies the mapping one level deep. Child nodes are shared
// with the receiver; the caller replaces the children it mutates.
func (m Mapping) shallowCopy() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// shallowCopy copies the list one level deep.
func (l List) shallowCopy() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Equal reports whether two nodes are structurally equal: same kind, and
// equal values, elements, or entries respectively.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case Scalar:
		bs, ok := b.(Scalar)
		return ok && a.Value == bs.Value
	case List:
		bl, ok := b.(List)
		if !ok || len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bl[i]) {
				return false
			}
		}
		return true
	case Mapping:
		bm, ok := b.(Mapping)
		if !ok || len(a) != len(bm) {
			return false
		}
		for k, v := range a {
			bv, present := bm[k]
			if !present || !Equal(v, bv) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		return false
	}
}

// FromGo converts a decoded Go value (as produced by a YAML or JSON
// unmarshal into interface{}) into a Node. Integer values of any width are
// normalized to int64 so that scalars parsed from the command line and
// scalars loaded from disk compare equal.
func FromGo(v any) (Node, error) {
	switch v := v.(type) {
	case nil:
		return Scalar{Value: nil}, nil
	case bool:
		return Scalar{Value: v}, nil
	case string:
		return Scalar{Value: v}, nil
	case int:
		return Scalar{Value: int64(v)}, nil
	case int8:
		return Scalar{Value: int64(v)}, nil
	case int16:
		return Scalar{Value: int64(v)}, nil
	case int32:
		return Scalar{Value: int64(v)}, nil
	case int64:
		return Scalar{Value: v}, nil
	case uint:
		return fromUint(uint64(v)), nil
	case uint8:
		return Scalar{Value: int64(v)}, nil
	case uint16:
		return Scalar{Value: int64(v)}, nil
	case uint32:
		return Scalar{Value: int64(v)}, nil
	case uint64:
		return fromUint(v), nil
	case float32:
		return Scalar{Value: float64(v)}, nil
	case float64:
		return Scalar{Value: v}, nil
	case []any:
		list := make(List, 0, len(v))
		for _, item := range v {
			node, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			list = append(list, node)
		}
		return list, nil
	case map[string]any:
		mapping := make(Mapping, len(v))
		for key, item := range v {
			node, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			mapping[key] = node
		}
		return mapping, nil
	case map[any]any:
		mapping := make(Mapping, len(v))
		for key, item := range v {
			ks, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported mapping key %v (%T): keys must be strings", key, key)
			}
			node, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			mapping[ks] = node
		}
		return mapping, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// fromUint normalizes an unsigned integer to int64. Values beyond the
// int64 range keep their decimal form as a string instead of wrapping to a
// negative number.
func fromUint(v uint64) Scalar {
	if v > math.MaxInt64 {
		return Scalar{Value: strconv.FormatUint(v, 10)}
	}
	return Scalar{Value: int64(v)}
}

// ToGo converts a Node back to plain Go values suitable for marshalling.
func ToGo(n Node) any {
	switch n := n.(type) {
	case Scalar:
		return n.Value
	case List:
		out := make([]any, 0, len(n))
		for _, item := range n {
			out = append(out, ToGo(item))
		}
		return out
	case Mapping:
		out := make(map[string]any, len(n))
		for key, item := range n {
			out[key] = ToGo(item)
		}
		return out
	default:
		return nil
	}
}
