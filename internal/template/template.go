// Package template implements placeholder substitution for user-supplied
// command templates. The template is caller-trusted text: values are
// substituted verbatim and no shell-metacharacter escaping is performed.
// That trust boundary is a documented contract, not an enforcement gap.
package template

import "strings"

// The fixed placeholder set recognized in command templates.
const (
	Input1 = "{input1}"
	Input2 = "{input2}"
	Input3 = "{input3}"
	Output = "{output}"
)

var placeholders = []string{Input1, Input2, Input3, Output}

// Bindings maps placeholder tokens to resolved values.
type Bindings map[string]string

// Resolve replaces every occurrence of each bound placeholder in tmpl.
// Placeholders without a binding are left as literal text so that a
// misconfigured template stays visible in the resulting command instead of
// being silently dropped. Tokens outside the fixed set are never touched.
func Resolve(tmpl string, b Bindings) string {
	for _, ph := range placeholders {
		if v, ok := b[ph]; ok {
			tmpl = strings.ReplaceAll(tmpl, ph, v)
		}
	}
	return tmpl
}
