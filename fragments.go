package mcbook

import (
	"fmt"
	"strings"
)

// DefaultVersion is the newest game version with dedicated fragments.
const DefaultVersion = "1.21.5"

// Placeholders substituted into the end fragment.
const (
	TitlePlaceholder  = "{BOOK_TITLE}"
	AuthorPlaceholder = "{BOOK_AUTHOR}"
)

// FragmentTables groups the four version-keyed tables a book command is
// assembled from. Every table needs a floor key low enough for any version
// callers will ask for.
type FragmentTables struct {
	Start   FragmentSet
	NewPage FragmentSet
	End     FragmentSet
	Escape  FragmentSet
}

// DefaultFragmentTables returns the give-command fragments for written books,
// keyed by the first game version that accepts them.
func DefaultFragmentTables() FragmentTables {
	return FragmentTables{
		Start: FragmentSet{
			"1.21.0": `give @p written_book[written_book_content={pages:['`,
			"1.20.5": `give @p written_book[written_book_content={pages:['[["`,
			"1.4.2":  `give @p written_book{pages:['{"text":"`,
		},
		NewPage: FragmentSet{
			"1.21.0": `','`,
			"1.20.5": `"]]','[["`,
			"1.4.2":  `"}','{"text":"`,
		},
		End: FragmentSet{
			"1.21.0": `'],title:"` + TitlePlaceholder + `",author:"` + AuthorPlaceholder + `"}]`,
			"1.20.5": `"]]'],title:"` + TitlePlaceholder + `",author:"` + AuthorPlaceholder + `"}]`,
			"1.4.2":  `"}'],title:"` + TitlePlaceholder + `",author:"` + AuthorPlaceholder + `"}`,
		},
		Escape: FragmentSet{
			"1.21.0": `\`,
			"1.4.2":  `\\`,
		},
	}
}

// Templates holds the fragments resolved for one game version.
type Templates struct {
	Start   string
	NewPage string
	End     string
	Escape  string
}

// Resolve picks the fragments applicable to version from every table.
func (ft FragmentTables) Resolve(version string) (Templates, error) {
	want, err := ParseVersion(version)
	if err != nil {
		return Templates{}, err
	}
	var tpl Templates
	for _, t := range []struct {
		name string
		set  FragmentSet
		dst  *string
	}{
		{"start", ft.Start, &tpl.Start},
		{"new page", ft.NewPage, &tpl.NewPage},
		{"end", ft.End, &tpl.End},
		{"escape", ft.Escape, &tpl.Escape},
	} {
		frag, err := t.set.resolve(want)
		if err != nil {
			return Templates{}, fmt.Errorf("%s fragment: %w", t.name, err)
		}
		*t.dst = frag
	}
	return tpl, nil
}

// EscapedNewline is the rendered form of a newline for these templates.
func (t Templates) EscapedNewline() string {
	return t.Escape + "n"
}

// SupportedVersions lists the versions with dedicated start fragments in
// ascending order.
func SupportedVersions() []string {
	return DefaultFragmentTables().Start.Keys()
}

// IsSupportedVersion reports whether version parses and resolves against the
// default tables.
func IsSupportedVersion(version string) bool {
	_, err := DefaultFragmentTables().Resolve(strings.TrimSpace(version))
	return err == nil
}
