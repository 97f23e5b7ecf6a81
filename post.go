package miluim

import "context"

// Post represents a single raw post fetched from the channel.
// The body is the full post text as published; a post that failed to
// fetch never becomes a Post.
type Post struct {
	ID   int    `json:"id"`
	Body string `json:"body"`
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its raw HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DescriptionExtractor pulls the post body text out of a fetched page.
// Implementations hide the HTML parsing details.
type DescriptionExtractor interface {
	// Extract returns the post body embedded in the page metadata.
	// Returns ENOTFOUND when the page carries no post body.
	Extract(html string) (string, error)
}

// RateLimiter paces outbound requests to the source host.
type RateLimiter interface {
	// Wait blocks until the rate limit allows another request.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
