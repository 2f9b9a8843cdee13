package oxml

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// placeholderAliases maps friendly lookup names to the ph type tokens they
// cover, in preference order. Several friendly names fold onto the same
// tokens on purpose: "content" and "text" are how people talk about body
// placeholders.
var placeholderAliases = map[string][]string{
	"title":          {"title", "ctrTitle"},
	"ctrtitle":       {"ctrTitle"},
	"center_title":   {"ctrTitle"},
	"centered_title": {"ctrTitle"},
	"subtitle":       {"subTitle"},
	"body":           {"body", "obj"},
	"content":        {"body", "obj"},
	"text":           {"body", "obj"},
	"bullets":        {"body", "obj"},
	"object":         {"obj"},
	"picture":        {"pic"},
	"image":          {"pic"},
	"chart":          {"chart"},
	"table":          {"tbl"},
	"date":           {"dt"},
	"footer":         {"ftr"},
	"slide_number":   {"sldNum"},
	"header":         {"hdr"},
	"media":          {"media"},
	"clip_art":       {"clipArt"},
	"clipart":        {"clipArt"},
	"diagram":        {"dgm"},
	"slide_image":    {"sldImg"},

	// Lowercased forms of the camel-case ph tokens, so raw tokens keep
	// working through normalization.
	"sldnum": {"sldNum"},
	"sldimg": {"sldImg"},
}

// friendlyNames is the reverse mapping used when listing what a slide has
// to offer. Tokens without an entry fall back to themselves.
var friendlyNames = map[string]string{
	"ctrTitle": "title",
	"subTitle": "subtitle",
	"obj":      "body",
	"pic":      "picture",
	"dt":       "date",
	"ftr":      "footer",
	"sldNum":   "slide_number",
	"hdr":      "header",
	"clipArt":  "clip_art",
	"dgm":      "diagram",
	"sldImg":   "slide_image",
}

// PlaceholderError reports a failed placeholder lookup together with the
// names that would have worked, so the caller's fix is one read away.
type PlaceholderError struct {
	Requested string
	Available []string
}

func (e *PlaceholderError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no placeholder %q: slide has no placeholders", e.Requested)
	}
	return fmt.Sprintf("no placeholder %q: available placeholders are %s",
		e.Requested, strings.Join(e.Available, ", "))
}

// normalizeName lowercases and collapses separators so "Slide Number",
// "slide-number" and "slide_number" all land on the same key.
func normalizeName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// splitIndexSuffix peels a trailing _<digits> off a normalized name.
// Returns the base name and the index, or -1 when there is no suffix.
func splitIndexSuffix(name string) (string, int) {
	i := strings.LastIndex(name, "_")
	if i <= 0 || i == len(name)-1 {
		return name, -1
	}
	idx, err := strconv.Atoi(name[i+1:])
	if err != nil || idx < 0 {
		return name, -1
	}
	return name[:i], idx
}

// aliasTokens expands a normalized base name into candidate ph type tokens.
// Names that are not known friendly names are tried as raw tokens, so
// "sldNum" and "ctrTitle" work verbatim.
func aliasTokens(base string) []string {
	if tokens, ok := placeholderAliases[base]; ok {
		return tokens
	}
	return []string{base}
}

// FriendlyPlaceholderName renders a ph type token as the lookup name a
// caller would use, with the index appended when it disambiguates.
func FriendlyPlaceholderName(phType string, idx int, needIndex bool) string {
	name, ok := friendlyNames[phType]
	if !ok {
		name = phType
	}
	if needIndex && idx >= 0 {
		return fmt.Sprintf("%s_%d", name, idx)
	}
	return name
}

// ResolvePlaceholder finds the placeholder shape a friendly name refers to.
// Resolution runs in stages: the name is normalized, an _<digits> suffix is
// split off as an index constraint, the base is expanded through the alias
// table, and the candidates are matched by type then index. Without an
// index constraint the lowest-index match of the first matching token wins,
// so "body" on a two-body layout deterministically picks idx 0.
func (t *ShapeTree) ResolvePlaceholder(name string) (*Shape, error) {
	base, idx := splitIndexSuffix(normalizeName(name))

	for _, token := range aliasTokens(base) {
		if sp := t.lowestIndexPlaceholder(token, idx); sp != nil {
			return sp, nil
		}
	}

	return nil, &PlaceholderError{
		Requested: name,
		Available: t.placeholderNames(),
	}
}

// lowestIndexPlaceholder returns the placeholder of the given type with the
// smallest index, or the one matching idx exactly when idx >= 0.
func (t *ShapeTree) lowestIndexPlaceholder(phType string, idx int) *Shape {
	var best *Shape
	for _, sp := range t.Placeholders() {
		if sp.Placeholder.Type != phType {
			continue
		}
		if idx >= 0 {
			if sp.Placeholder.Idx == idx {
				return sp
			}
			continue
		}
		if best == nil || sp.Placeholder.Idx < best.Placeholder.Idx {
			best = sp
		}
	}
	return best
}

// placeholderNames lists the friendly names of every placeholder in the
// tree, index-qualified only where two placeholders share a friendly name.
func (t *ShapeTree) placeholderNames() []string {
	phs := t.Placeholders()
	counts := make(map[string]int, len(phs))
	for _, sp := range phs {
		counts[FriendlyPlaceholderName(sp.Placeholder.Type, -1, false)]++
	}

	names := make([]string, 0, len(phs))
	for _, sp := range phs {
		base := FriendlyPlaceholderName(sp.Placeholder.Type, -1, false)
		names = append(names, FriendlyPlaceholderName(sp.Placeholder.Type, sp.Placeholder.Idx, counts[base] > 1))
	}
	sort.Strings(names)
	return names
}
