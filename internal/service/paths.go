package service

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// fieldPath is a parsed dotted path. Segments address map keys; a numeric
// segment also addresses an array element.
type fieldPath []string

func (p fieldPath) String() string {
	return strings.Join(p, ".")
}

// parsePaths parses keys into paths, dropping duplicates while keeping the
// order of first appearance.
func parsePaths(keys []string) ([]fieldPath, error) {
	paths := make([]fieldPath, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))

	for _, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("%w: empty field path", ErrInvalidArgument)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		path := fieldPath(strings.Split(key, "."))
		if slices.Contains(path, "") {
			return nil, fmt.Errorf("%w: malformed field path %q", ErrInvalidArgument, key)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// lookup returns the value at path and whether the path is present. A
// present key holding nil counts as present.
func lookup(obj map[string]any, path fieldPath) (any, bool) {
	var cur any = obj
	for _, seg := range path {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, ok := arrayIndex(seg, len(c))
			if !ok {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

func arrayIndex(seg string, length int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}

// objectWriter sets values on a copy-on-write clone of an object. Every
// container on a written path is cloned once; everything else stays shared
// with the source object, which is never modified.
type objectWriter struct {
	root map[string]any
	// owned holds the joined paths of containers already cloned.
	owned map[string]struct{}
}

func newObjectWriter(obj map[string]any) *objectWriter {
	root := maps.Clone(obj)
	if root == nil {
		root = make(map[string]any)
	}
	return &objectWriter{
		root:  root,
		owned: make(map[string]struct{}),
	}
}

// set writes value at path. It reports false, writing nothing, when an
// intermediate segment is missing or is not a container.
func (w *objectWriter) set(path fieldPath, value any) bool {
	var parent any = w.root

	for i, seg := range path {
		last := i == len(path)-1

		switch c := parent.(type) {
		case map[string]any:
			if last {
				c[seg] = value
				return true
			}
			child, ok := c[seg]
			if !ok {
				return false
			}
			if child, ok = w.own(path[:i+1], child); !ok {
				return false
			}
			c[seg] = child
			parent = child

		case []any:
			idx, ok := arrayIndex(seg, len(c))
			if !ok {
				return false
			}
			if last {
				c[idx] = value
				return true
			}
			child, ok := w.own(path[:i+1], c[idx])
			if !ok {
				return false
			}
			c[idx] = child
			parent = child

		default:
			return false
		}
	}

	return false
}

// own returns a container at prefix that may be modified: the clone made
// earlier by this writer, or a fresh clone of container.
func (w *objectWriter) own(prefix fieldPath, container any) (any, bool) {
	key := prefix.String()
	_, owned := w.owned[key]

	switch c := container.(type) {
	case map[string]any:
		if owned {
			return c, true
		}
		w.owned[key] = struct{}{}
		return maps.Clone(c), true
	case []any:
		if owned {
			return c, true
		}
		w.owned[key] = struct{}{}
		return slices.Clone(c), true
	}

	return nil, false
}
