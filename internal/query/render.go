package query

import (
	"fmt"
	"strings"
)

// RenderText renders a TextQuery into RediSearch query syntax. Conditions
// are space-joined (AND semantics); a MatchAll query renders as "*".
func RenderText(q *TextQuery) string {
	if q.MatchAll {
		return "*"
	}

	parts := make([]string, 0, len(q.Clauses)+1)
	if q.Match != nil {
		parts = append(parts, renderMatch(q.Match))
	}
	for _, c := range q.Clauses {
		parts = append(parts, renderClause(c))
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, " ")
}

// RenderPredicates renders vector-query metadata predicates into a
// RediSearch pre-filter expression. No predicates renders as "" so the
// caller can fall back to the match-all KNN form.
func RenderPredicates(ps []Predicate) string {
	if len(ps) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		if p.GTE != nil {
			parts = append(parts, renderRange(p.Field, *p.GTE))
		} else {
			parts = append(parts, renderTag(p.Field, p.Eq))
		}
	}
	return strings.Join(parts, " ")
}

func renderMatch(m *Match) string {
	return fmt.Sprintf("@%s:(%s)", strings.Join(m.Fields, "|"), escapeQuery(m.Query))
}

func renderClause(c Clause) string {
	switch {
	case c.GTE != nil:
		return renderRange(c.Field, *c.GTE)
	case len(c.Terms) > 0:
		escaped := make([]string, len(c.Terms))
		for i, t := range c.Terms {
			escaped[i] = tagEscaper.Replace(t)
		}
		return fmt.Sprintf("@%s:{%s}", c.Field, strings.Join(escaped, "|"))
	default:
		return renderTag(c.Field, c.Term)
	}
}

func renderTag(field, value string) string {
	return fmt.Sprintf("@%s:{%s}", field, tagEscaper.Replace(value))
}

func renderRange(field string, min float64) string {
	return fmt.Sprintf("@%s:[%g +inf]", field, min)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
