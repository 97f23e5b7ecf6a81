package extract

import (
	"strings"

	"github.com/yardenlev/miluim"
)

// Flag glyphs scanned anywhere in a post body.
const (
	glyphImmediate   = "⏰"
	glyphLoudspeaker = "🔊"
	glyphProhibited  = "🚫"
	glyphPointing    = "👉"

	// recruitmentPhrase follows the loudspeaker glyph verbatim.
	recruitmentPhrase = "זמני או קבוע"
)

// Literal phrases that decide exemption and pool eligibility. Posts
// phrase these inconsistently, so detection is substring-based over the
// first line that carries a 🚫 or 👉 glyph together with the word פטור
// or מאגר.
const (
	wordExemption = "פטור"
	wordPool      = "מאגר"

	phraseNotExempt        = "לא פטור"
	phraseExemptIrrelevant = "לא רלוונטי לבעלי פטור"
	phraseExemptHolders    = "לבעלי פטור"
	phraseNotRelevant      = "לא רלוונטי"
	phrasePoolAffiliated   = "משויכים למאגר"
)

// HasImmediate reports whether the post calls for immediate
// recruitment, signaled by the alarm-clock glyph anywhere in the text.
func HasImmediate(text string) bool {
	return strings.Contains(text, glyphImmediate)
}

// RecruitmentType returns the recruitment-type label when the post
// carries the loudspeaker marker followed by the fixed phrase, or ""
// otherwise.
func RecruitmentType(text string) string {
	if strings.Contains(text, glyphLoudspeaker+" "+recruitmentPhrase) {
		return recruitmentPhrase
	}
	return ""
}

// ParseServicePeriod splits a raw service-period value of the exact
// shape "TOKEN - TOKEN" into its start and end months. Any other shape
// yields two empty strings.
func ParseServicePeriod(raw string) (start, end string) {
	fields := strings.Fields(raw)
	if len(fields) != 3 || fields[1] != "-" {
		return "", ""
	}
	return fields[0], fields[2]
}

// eligibilityRule maps a literal-phrase test to a tri-state outcome.
type eligibilityRule struct {
	match func(line string) bool
	value miluim.TriState
}

// Rule tables evaluated in order against the qualifying line; the first
// match decides the flag. The explicit "(לא פטור!)" parenthetical
// outranks everything, and the negated holder phrases outrank the bare
// ones they contain.
var (
	exemptionRules = []eligibilityRule{
		{contains(phraseNotExempt), miluim.TriNo},
		{contains(phraseExemptIrrelevant), miluim.TriNo},
		{contains(phraseExemptHolders), miluim.TriYes},
	}

	poolRules = []eligibilityRule{
		{allOf(phraseNotRelevant, phrasePoolAffiliated), miluim.TriNo},
		{contains(phrasePoolAffiliated), miluim.TriYes},
	}
)

// ExemptionAndPool scans for the first line that mentions exemption or
// pool eligibility next to a 🚫 or 👉 glyph and applies the rule tables
// to it. Both flags stay unknown when no line qualifies. Detection is
// heuristic: the phrasing overlaps, and an ad can legitimately decide
// one flag while leaving the other unknown.
func ExemptionAndPool(text string) (exempt, pool miluim.TriState) {
	line, ok := eligibilityLine(text)
	if !ok {
		return miluim.TriUnknown, miluim.TriUnknown
	}
	return applyRules(exemptionRules, line), applyRules(poolRules, line)
}

// eligibilityLine returns the first line carrying an eligibility glyph
// together with the exemption or pool keyword.
func eligibilityLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, glyphProhibited) && !strings.Contains(line, glyphPointing) {
			continue
		}
		if strings.Contains(line, wordExemption) || strings.Contains(line, wordPool) {
			return line, true
		}
	}
	return "", false
}

func applyRules(rules []eligibilityRule, line string) miluim.TriState {
	for _, rule := range rules {
		if rule.match(line) {
			return rule.value
		}
	}
	return miluim.TriUnknown
}

func contains(phrase string) func(string) bool {
	return func(line string) bool { return strings.Contains(line, phrase) }
}

func allOf(phrases ...string) func(string) bool {
	return func(line string) bool {
		for _, p := range phrases {
			if !strings.Contains(line, p) {
				return false
			}
		}
		return true
	}
}
