package service

// DefaultMask replaces masked values when no mask is given.
const DefaultMask = "*****"

// ReplaceEncryptedValues returns a copy of obj with every present value at
// one of keys replaced by [DefaultMask]. Safes and the store are not
// consulted.
func ReplaceEncryptedValues(obj map[string]any, keys ...string) map[string]any {
	return ReplaceEncryptedValuesWith(obj, DefaultMask, keys...)
}

// ReplaceEncryptedValuesWith is [ReplaceEncryptedValues] with a custom mask.
// Malformed paths are ignored; obj is never modified.
func ReplaceEncryptedValuesWith(obj map[string]any, mask string, keys ...string) map[string]any {
	if len(keys) == 0 {
		return obj
	}

	var w *objectWriter
	for _, key := range keys {
		paths, err := parsePaths([]string{key})
		if err != nil {
			continue
		}
		if _, ok := lookup(obj, paths[0]); !ok {
			continue
		}
		if w == nil {
			w = newObjectWriter(obj)
		}
		w.set(paths[0], mask)
	}

	if w == nil {
		return obj
	}
	return w.root
}
