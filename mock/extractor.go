package mock

import "github.com/yardenlev/miluim"

var _ miluim.DescriptionExtractor = (*DescriptionExtractor)(nil)

// DescriptionExtractor is a mock implementation of
// miluim.DescriptionExtractor.
type DescriptionExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *DescriptionExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
