package mcbook

import "strings"

// Serialize wraps a paginated body with the start and end fragments and
// fills in title and author.
//
// Quotes in title and author are always escaped with a single backslash,
// independent of the version's escape fragment used for page text.
func Serialize(body, title, author string, tpl Templates) string {
	end := strings.NewReplacer(
		TitlePlaceholder, escapeQuotes(title),
		AuthorPlaceholder, escapeQuotes(author),
	).Replace(tpl.End)

	var b strings.Builder
	b.Grow(len(tpl.Start) + len(body) + len(end))
	b.WriteString(tpl.Start)
	b.WriteString(body)
	b.WriteString(end)
	return b.String()
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
