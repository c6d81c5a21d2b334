package materialcolors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// newHTTPClient creates the client used to download the style guide.
// There is no timeout, the page is requested once.
func newHTTPClient(transport http.RoundTripper) *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Transport: transport,
		Jar:       jar,
	}
}

// fetch downloads the page at URL and parses it into a document.
func (g *Generator) fetch(ctx context.Context) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	req.Header.Set("User-Agent", g.UserAgent)
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download failed: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, errors.Wrapf(ErrNetwork, "failed to fetch with status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isMarkupContentType(contentType) {
		return nil, errors.Wrapf(ErrParse, "unsupported content type %q", contentType)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse HTML: %w", ErrParse, err)
	}

	return doc, nil
}
