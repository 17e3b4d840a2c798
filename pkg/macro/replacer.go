package macro

import "strings"

// Replacer substitutes placeholders in templates with resolved values.
// It is immutable and safe for concurrent use; each call works on its own
// string map.
type Replacer struct {
	matcher  *Matcher
	resolver ValueResolver
	unknown  string
}

// ReplacerOption configures a Replacer.
type ReplacerOption func(*Replacer)

// WithMatcher sets the placeholder matcher, for custom delimiters.
func WithMatcher(m *Matcher) ReplacerOption {
	return func(r *Replacer) {
		if m != nil {
			r.matcher = m
		}
	}
}

// WithUnresolvedText sets the text substituted for derivable keys that have
// no usable value. Defaults to DefaultUnknownText.
func WithUnresolvedText(s string) ReplacerOption {
	return func(r *Replacer) {
		if s != "" {
			r.unknown = s
		}
	}
}

// NewReplacer creates a Replacer that resolves through resolver.
// It panics if resolver is nil.
func NewReplacer(resolver ValueResolver, opts ...ReplacerOption) *Replacer {
	if resolver == nil {
		panic(ErrNilResolver)
	}
	r := &Replacer{
		matcher:  NewMatcher(),
		resolver: resolver,
		unknown:  DefaultUnknownText,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Replace returns template with every resolvable placeholder substituted.
//
// The first pass resolves each distinct base key referenced by the template.
// The second pass substitutes full keys; placeholders without a value are
// left verbatim so broken macros stay visible. Substituted text is not
// scanned again.
//
// Example:
//
//	objects := macro.ObjectMap{}
//	objects.Put(macro.MustKey("PLAYER"), player)
//	r.Replace(objects, "Hello {PLAYER.DISPLAY_NAME}!") // "Hello Steve!"
func (r *Replacer) Replace(objects ObjectMap, template string) string {
	if template == "" {
		return ""
	}

	values := r.Resolve(objects, template)
	if values.Len() == 0 {
		return template
	}

	return r.substitute(template, values)
}

// ReplaceAll applies Replace to each template with the same objects.
func (r *Replacer) ReplaceAll(objects ObjectMap, templates ...string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = r.Replace(objects, t)
	}
	return out
}

// Resolve runs the first pass only: it returns the values of every base key
// referenced by template, merged first-inserted-wins.
func (r *Replacer) Resolve(objects ObjectMap, template string) *StringMap {
	values := NewStringMap()
	for base := range Distinct(r.matcher.Match(template, PatternBase)) {
		values.Merge(r.resolver.Resolve(base, objects))
	}
	return values
}

func (r *Replacer) substitute(template string, values *StringMap) string {
	re := r.matcher.full
	locs := re.FindAllStringSubmatchIndex(template, -1)
	if len(locs) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	last := 0
	for _, loc := range locs {
		key, err := NewKey(template[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		v, ok := values.Get(key)
		if !ok {
			continue
		}
		b.WriteString(template[last:loc[0]])
		b.WriteString(v.Or(r.unknown))
		last = loc[1]
	}
	b.WriteString(template[last:])

	return b.String()
}
