package config

// Merge layers overrides on top of defaults and returns a new map. Neither
// input is mutated. Values present in overrides win; nested maps are merged
// recursively, everything else is replaced wholesale.
func Merge(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = deepCopy(value)
	}
	for key, value := range overrides {
		base, haveBase := merged[key].(map[string]any)
		next, isMap := value.(map[string]any)
		if haveBase && isMap {
			merged[key] = Merge(base, next)
			continue
		}
		merged[key] = deepCopy(value)
	}
	return merged
}

// deepCopy copies nested maps and slices so callers can mutate a merged
// section without aliasing the registration defaults.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = deepCopy(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = deepCopy(inner)
		}
		return out
	default:
		return value
	}
}
