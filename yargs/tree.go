package yargs

import (
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// node is one entry of the result tree: a value plus the tokens it came from.
// value is a scalar, []any, or *branch for dot-notation parents.
type node struct {
	value any
	refs  []*token
}

// branch is a nested object of the result tree, ordered by first assignment
type branch struct {
	children *orderedmap.OrderedMap[string, *node]
}

func newBranch() *branch {
	return &branch{children: orderedmap.New[string, *node]()}
}

func (b *branch) get(key string) *node {
	n, _ := b.children.Get(key)
	return n
}

func (b *branch) set(key string, n *node) {
	b.children.Set(key, n)
}

func (b *branch) remove(key string) {
	b.children.Delete(key)
}

func (b *branch) keys() []string {
	keys := make([]string, 0, b.children.Len())
	for pair := b.children.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// incrementMarker tells setKey to add one to a count
type incrementMarker struct{}

var increment = incrementMarker{}

func isIncrement(v any) bool {
	_, ok := v.(incrementMarker)
	return ok
}

// pathKeys splits a key on dots unless dot-notation is disabled
func (s *state) pathKeys(keys []string) []string {
	if !s.cfg.DotNotation && len(keys) > 1 {
		return []string{strings.Join(keys, ".")}
	}
	return keys
}

// setKey writes tok's value at the dotted path keys below root.
//
// A parent holding a non-object value is promoted to [old, {}] (or gets a
// fresh {} appended when it is already an array) and the write continues
// inside that trailing object.
func (s *state) setKey(root *branch, keys []string, tok *token) *node {
	keys = s.pathKeys(keys)

	o := root
	for _, k := range keys[:len(keys)-1] {
		n := o.get(k)
		if n == nil {
			n = &node{value: newBranch()}
			o.set(k, n)
		}
		switch v := n.value.(type) {
		case *branch:
			o = v
		case []any:
			next := newBranch()
			n.value = append(slices.Clone(v), next)
			o = next
		default:
			next := newBranch()
			n.value = []any{v, next}
			o = next
		}
	}

	key := keys[len(keys)-1]
	n := o.get(key)

	isTypeArray := s.flags.isArray(strings.Join(keys, "."))
	valueArr, isValueArray := tok.value.([]any)
	duplicate := s.cfg.DuplicateArgumentsArray

	// nargs has higher priority than duplicate
	if !duplicate {
		if want, _ := s.flags.narg(key); want != 0 {
			duplicate = true
			direct, declared := s.flags.nargs[key]
			if n != nil && declared {
				cur, isArr := n.value.([]any)
				if (n.value != nil && direct == 1) || (isArr && len(cur) == direct) {
					n.value = nil
				}
			}
		}
	}

	if n == nil {
		n = &node{}
		o.set(key, n)
	}
	existing, existingIsArr := n.value.([]any)

	switch {
	case isIncrement(tok.value):
		if f, ok := n.value.(float64); ok {
			n.value = f + 1
		} else {
			n.value = float64(1)
		}
	case existingIsArr:
		switch {
		case duplicate && isTypeArray && isValueArray:
			if s.cfg.FlattenDuplicateArrays {
				n.value = concat(existing, valueArr)
			} else {
				base := existing
				if len(existing) == 0 || !isSlice(existing[0]) {
					base = []any{existing}
				}
				n.value = concat(base, []any{valueArr})
			}
		case !duplicate && isTypeArray == isValueArray:
			n.value = cloneValue(tok.value)
		default:
			n.value = concat(existing, []any{cloneValue(tok.value)})
		}
	case n.value == nil && isTypeArray:
		if isValueArray {
			n.value = slices.Clone(valueArr)
		} else {
			n.value = []any{tok.value}
		}
	case duplicate && n.value != nil && !s.flags.isCount(key):
		n.value = []any{n.value, cloneValue(tok.value)}
	default:
		n.value = cloneValue(tok.value)
	}

	n.refs = append(n.refs, tok)
	return n
}

// hasKey reports whether the dotted path keys exists below root
func (s *state) hasKey(root *branch, keys []string) bool {
	if root == nil {
		return false
	}
	keys = s.pathKeys(keys)

	o := root
	for _, k := range keys[:len(keys)-1] {
		n := o.get(k)
		if n == nil {
			return false
		}
		b, ok := n.value.(*branch)
		if !ok {
			return false
		}
		o = b
	}
	return o.get(keys[len(keys)-1]) != nil
}

// lookupNode returns the node at a dotted path, nil when missing
func lookupNode(root *branch, keys []string) *node {
	o := root
	for i, k := range keys {
		n := o.get(k)
		if n == nil {
			return nil
		}
		if i == len(keys)-1 {
			return n
		}
		b, ok := n.value.(*branch)
		if !ok {
			return nil
		}
		o = b
	}
	return nil
}

// flatten strips provenance, turning branches into plain maps
func flatten(v any) any {
	switch t := v.(type) {
	case *branch:
		out := make(map[string]any, t.children.Len())
		for pair := t.children.Oldest(); pair != nil; pair = pair.Next() {
			out[pair.Key] = flatten(pair.Value.value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = flatten(t[i])
		}
		return out
	default:
		return v
	}
}

// flattenOrdered is flatten keeping the assignment order of every object
func flattenOrdered(v any) any {
	switch t := v.(type) {
	case *branch:
		out := orderedmap.New[string, any]()
		for pair := t.children.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, flattenOrdered(pair.Value.value))
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = flattenOrdered(t[i])
		}
		return out
	default:
		return v
	}
}

func concat(a, b []any) []any {
	out := make([]any, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func isSlice(v any) bool {
	_, ok := v.([]any)
	return ok
}

func cloneValue(v any) any {
	if arr, ok := v.([]any); ok {
		return slices.Clone(arr)
	}
	return v
}
