// Package hub fetches .promptspec.md files from a shared GitHub repository
// so teams can pull a common spec library into their local catalog.
package hub

import (
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v60/github"
)

// Client wraps the GitHub API client with token authentication.
type Client struct {
	inner *gh.Client
}

// NewClient creates a hub client with the given token.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("hub token is required")
	}
	httpClient := &http.Client{
		Transport: &tokenTransport{token: token},
	}
	return &Client{inner: gh.NewClient(httpClient)}, nil
}

// tokenTransport adds Bearer token auth to HTTP requests.
type tokenTransport struct {
	token string
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// ParseRepo splits an "owner/name" reference.
func ParseRepo(ref string) (owner, name string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format %q (expected 'owner/name')", ref)
	}
	return parts[0], parts[1], nil
}
