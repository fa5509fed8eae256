package interpolate

import "github.com/samuelho-dev/monorepo-library-generator/pkg/template"

// Deep applies Interpolate recursively through nested maps and slices,
// preserving the shape of the input: maps stay maps, slices stay slices,
// and non-string leaves pass through untouched. Failures across the whole
// walk are merged into one *Error so a single call names every missing
// key.
func Deep(value any, ctx template.Context) (any, error) {
	failure := &Error{}
	result := deepValue(value, ctx, failure)
	if len(failure.Missing) > 0 {
		return nil, failure
	}
	return result, nil
}

func deepValue(value any, ctx template.Context, failure *Error) any {
	switch v := value.(type) {
	case string:
		resolved, err := Interpolate(v, ctx)
		if err != nil {
			if ie, ok := err.(*Error); ok {
				failure.merge(ie)
			}
			return v
		}
		return resolved
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepValue(item, ctx, failure)
		}
		return out
	case template.Context:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepValue(item, ctx, failure)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepValue(item, ctx, failure)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			resolved, err := Interpolate(item, ctx)
			if err != nil {
				if ie, ok := err.(*Error); ok {
					failure.merge(ie)
				}
				out[i] = item
				continue
			}
			out[i] = resolved
		}
		return out
	default:
		return v
	}
}
