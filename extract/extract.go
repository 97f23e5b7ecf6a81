// Package extract implements the marker-driven extraction engine for
// job-ad post bodies. Posts are semi-structured Hebrew text: an arrow
// glyph introduces multi-line sections, "label: value" lines carry
// short fields, "**" bullets list roles, and a handful of emoji glyphs
// signal boolean attributes. The engine is a deterministic segmenter
// over these markers; it never infers meaning beyond locating a marker
// and slicing the text that follows it.
//
// Every function in this package is pure and total over string input:
// a missing marker degrades to an empty value, never to an error.
package extract

import (
	"regexp"
	"strings"
)

// Marker grammar literals as they appear in post bodies.
const (
	// Arrow introduces a multi-line section ("⬅️ <title>: <body>").
	// The glyph carries a variation selector, so it must be quoted
	// before being embedded in any pattern.
	Arrow = "⬅️"

	// Arrow-section titles.
	TitleRoles          = "דרושים"
	TitleQualifications = "כישורים נדרשים"
	TitleUnitInfo       = "פרטים על היחידה"
	TitleServiceTerms   = "תנאי שירות"

	// Inline field labels ("<label>: <value>").
	LabelUnitType      = "סוג יחידה"
	LabelArea          = "אזור בארץ"
	LabelServicePeriod = "תקופת שירות הקרובה"

	// PlaceholderRole is substituted when a valid ad lists no role
	// bullets, so the ad still yields one record.
	PlaceholderRole = "לא צוינו תפקידים"
)

var (
	arrowQuoted = regexp.QuoteMeta(Arrow)

	// A span ends at the next arrow marker, a dash-rule line, or the
	// ad-number line, whichever comes first; end of text terminates
	// implicitly. The ad number trails the last section in most posts,
	// so without it the final section would swallow the ad-number line.
	terminatorRe = regexp.MustCompile(`\n(?:` + arrowQuoted + `|-+\s|מודעה\s*מספר\s*#)`)

	// Residual dash-rule fragments stripped from captured sections.
	dashRunRe = regexp.MustCompile(`-+\s*`)

	// "מודעה מספר #NNN" anywhere in the body.
	adNumberRe = regexp.MustCompile(`מודעה\s*מספר\s*#(\d+)`)

	// Role bullets within the roles section.
	roleRe = regexp.MustCompile(`\*\*\s*(.+)`)
)

// Between extracts the value of an inline "<label>: <value>" field.
// The value spans line breaks and runs to the nearest terminator.
// Returns "" when the label is absent.
func Between(text, label string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(label) + `\s*:\s*`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(cutAtTerminator(text[loc[1]:]))
}

// Section extracts the body of an arrow-marked section
// ("⬅️ <title>: <body>"). Dash-rule fragments left inside the captured
// body are stripped. Returns "" when the section is absent.
func Section(text, title string) string {
	body, ok := sectionBody(text, title)
	if !ok {
		return ""
	}
	return strings.TrimSpace(dashRunRe.ReplaceAllString(body, ""))
}

// Roles returns the role names listed as "**" bullets inside the roles
// section, in document order with duplicates preserved. Returns nil
// when the section or its bullets are absent.
func Roles(text string) []string {
	body, ok := sectionBody(text, TitleRoles)
	if !ok {
		return nil
	}

	matches := roleRe.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	roles := make([]string, 0, len(matches))
	for _, m := range matches {
		roles = append(roles, strings.TrimSpace(m[1]))
	}
	return roles
}

// AdNumber returns the digits of the ad-number marker, or "" when the
// post carries none. A post without an ad number is not a job ad.
func AdNumber(text string) string {
	m := adNumberRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// TrimAtLabel cuts value at the first occurrence of another field's
// label. Inline fields occasionally bleed into each other when the
// source omits the separating rule line; the unit-type field is known
// to swallow the area label this way.
func TrimAtLabel(value, label string) string {
	if i := strings.Index(value, label); i >= 0 {
		return strings.TrimSpace(value[:i])
	}
	return value
}

// sectionBody locates an arrow section and returns its raw body up to
// the nearest terminator.
func sectionBody(text, title string) (string, bool) {
	re := regexp.MustCompile(arrowQuoted + `\s*` + regexp.QuoteMeta(title) + `\s*:\s*`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return cutAtTerminator(text[loc[1]:]), true
}

// cutAtTerminator returns the prefix of tail before the nearest
// terminator: the next arrow marker, a dash-rule line, or end of text.
// Go's regexp has no lookahead, so the terminator is located with a
// separate search; taking the earliest match makes the span non-greedy
// by construction, so adjacent sections never bleed into each other.
func cutAtTerminator(tail string) string {
	if loc := terminatorRe.FindStringIndex(tail); loc != nil {
		return tail[:loc[0]]
	}
	return tail
}
