package notionsync

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jomei/notionapi"
)

const DefaultAPIURL = "https://api.notion.com"

// NewClient returns a Notion client. A non-default apiURL redirects every
// request to that host.
func NewClient(token, apiURL string) (*notionapi.Client, error) {
	opts := []notionapi.ClientOption{notionapi.WithRetry(3)}

	if apiURL != "" && apiURL != DefaultAPIURL {
		endpoint, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parsing notion api url: %w", err)
		}

		opts = append(opts, notionapi.WithHTTPClient(&http.Client{
			Transport: &endpointTransport{endpoint: endpoint, next: http.DefaultTransport},
		}))
	}

	return notionapi.NewClient(notionapi.Token(token), opts...), nil
}

type endpointTransport struct {
	endpoint *url.URL
	next     http.RoundTripper
}

func (t *endpointTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = t.endpoint.Scheme
	req.URL.Host = t.endpoint.Host
	req.Host = t.endpoint.Host

	return t.next.RoundTrip(req)
}
