package marking

const (
	// CornerRadiusKey is the style property holding the corner radius
	CornerRadiusKey = "borderRadius"
	// DefaultCornerRadius applies to custom containers that omit one
	DefaultCornerRadius = 16
)

// Style is a free-form style fragment merged over a base style by the
// drawing layer. Values are passed through untouched.
type Style map[string]any

// Clone returns a shallow copy of s. A nil style clones to nil.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// WithDefault returns a copy of s where key is set to value unless s
// already defines it. s itself is never modified.
func (s Style) WithDefault(key string, value any) Style {
	out := s.Clone()
	if out == nil {
		out = Style{}
	}
	if _, ok := out[key]; !ok {
		out[key] = value
	}
	return out
}

// String reads a string property, returning "" when absent or not a string
func (s Style) String(key string) string {
	v, _ := s[key].(string)
	return v
}
