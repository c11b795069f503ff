package i18n

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"sitecopy/internal/domain"
	"sitecopy/internal/domain/keypath"
)

// toTree renders v in its wire shape: map[string]any, []any and string.
func toTree(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// normalize converts decoder-specific container types into the tree shape
// used everywhere else.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}

// clone deep-copies a tree value so callers cannot reach table internals.
func clone(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = clone(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = clone(e)
		}
		return out
	default:
		return v
	}
}

func lookup(tree map[string]any, p keypath.Path) (any, bool) {
	var cur any = tree
	for _, seg := range p {
		switch node := cur.(type) {
		case map[string]any:
			if seg.IsIdx {
				return nil, false
			}
			next, ok := node[seg.Key]
			if !ok {
				return nil, false
			}
			cur = next
		case []any:
			if !seg.IsIdx || seg.Index >= len(node) {
				return nil, false
			}
			cur = node[seg.Index]
		default:
			return nil, false
		}
	}
	return cur, true
}

// leaves calls fn for every string leaf in tree order; map keys are visited
// sorted so output is deterministic.
func leaves(v any, p keypath.Path, fn func(keypath.Path, string)) {
	switch x := v.(type) {
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(x)) {
			leaves(x[k], p.Key(k), fn)
		}
	case []any:
		for i, e := range x {
			leaves(e, p.Index(i), fn)
		}
	case string:
		fn(p, x)
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// diff appends every structural difference between want and got.
func diff(want, got any, p keypath.Path, out *[]domain.Mismatch) {
	// A nil slice and an empty list have the same shape.
	if want == nil {
		if l, ok := got.([]any); ok && len(l) == 0 {
			return
		}
	}
	if got == nil {
		if l, ok := want.([]any); ok && len(l) == 0 {
			return
		}
	}

	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			*out = append(*out, domain.Mismatch{Path: p.String(), Kind: domain.MismatchType, Detail: "want mapping, got " + kindOf(got)})
			return
		}
		for _, k := range slices.Sorted(maps.Keys(w)) {
			gv, ok := g[k]
			if !ok {
				*out = append(*out, domain.Mismatch{Path: p.Key(k).String(), Kind: domain.MismatchMissing})
				continue
			}
			diff(w[k], gv, p.Key(k), out)
		}
		for _, k := range slices.Sorted(maps.Keys(g)) {
			if _, ok := w[k]; !ok {
				*out = append(*out, domain.Mismatch{Path: p.Key(k).String(), Kind: domain.MismatchUnexpected})
			}
		}
	case []any:
		g, ok := got.([]any)
		if !ok {
			*out = append(*out, domain.Mismatch{Path: p.String(), Kind: domain.MismatchType, Detail: "want list, got " + kindOf(got)})
			return
		}
		if len(w) != len(g) {
			*out = append(*out, domain.Mismatch{Path: p.String(), Kind: domain.MismatchLength, Detail: fmt.Sprintf("want %d, got %d", len(w), len(g))})
		}
		for i := 0; i < min(len(w), len(g)); i++ {
			diff(w[i], g[i], p.Index(i), out)
		}
	case string:
		if _, ok := got.(string); !ok {
			*out = append(*out, domain.Mismatch{Path: p.String(), Kind: domain.MismatchType, Detail: "want string, got " + kindOf(got)})
		}
	default:
		if kindOf(want) != kindOf(got) {
			*out = append(*out, domain.Mismatch{Path: p.String(), Kind: domain.MismatchType, Detail: fmt.Sprintf("want %s, got %s", kindOf(want), kindOf(got))})
		}
	}
}
