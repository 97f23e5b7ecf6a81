// Package goquery provides HTML metadata extraction using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yardenlev/miluim"
)

// Ensure DescriptionExtractor implements miluim.DescriptionExtractor.
var _ miluim.DescriptionExtractor = (*DescriptionExtractor)(nil)

// DescriptionExtractor pulls the post body out of a page's
// og:description meta tag. The channel's embed pages mirror the full
// post text there, so no DOM traversal beyond the head is needed.
type DescriptionExtractor struct{}

// NewDescriptionExtractor creates a new DescriptionExtractor.
func NewDescriptionExtractor() *DescriptionExtractor {
	return &DescriptionExtractor{}
}

// Extract returns the content of the og:description meta tag.
// Returns ENOTFOUND when the tag is absent, which callers treat the
// same as a failed fetch: the post is skipped.
func (e *DescriptionExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", miluim.Errorf(miluim.EINVALID, "failed to parse HTML: %v", err)
	}

	content, ok := doc.Find(`meta[property="og:description"]`).Attr("content")
	if !ok {
		return "", miluim.Errorf(miluim.ENOTFOUND, "page has no post body")
	}

	return content, nil
}
