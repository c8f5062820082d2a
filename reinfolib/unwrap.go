package reinfolib

import "sort"

// wrapperKeys are probed in priority order; the upstream moves the
// record array between these depending on endpoint and plan.
var wrapperKeys = []string{"data", "items", "results", "records", "property"}

// Unwrap locates the record array inside an arbitrary decoded JSON
// payload. If the payload is the array, use it. Otherwise try the
// known wrapper keys, then any array-valued key, and as a last resort
// treat a record-like object as a single-element batch. Only a nil or
// non-object payload yields an empty slice.
func Unwrap(payload any) []any {
	if payload == nil {
		return nil
	}
	if arr, ok := payload.([]any); ok {
		return arr
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	for _, k := range wrapperKeys {
		if arr, ok := obj[k].([]any); ok {
			return arr
		}
	}
	// Unknown wrapper: take the first array-valued key. Keys are
	// sorted so the probe order does not depend on map iteration.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if arr, ok := obj[k].([]any); ok {
			return arr
		}
	}
	return []any{payload}
}
