package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

// ErrMalformedList reports a response body that decoded without error but
// is not a list of repository objects, such as null or [null].
var ErrMalformedList = errors.New("malformed repository list")

// Client lists repositories through the GitHub REST API.
type Client struct {
	gh *gh.Client
}

// NewClient creates a Client. An empty token sends unauthenticated requests;
// an empty baseURL targets api.github.com.
func NewClient(token, baseURL string) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	c := gh.NewClient(httpClient)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
		}
		c.BaseURL = u
	}
	return &Client{gh: c}, nil
}

// ListUserRepositories fetches a single page of the user's public
// repositories, most recently updated first.
func (c *Client) ListUserRepositories(ctx context.Context, user string, perPage int) ([]Repository, error) {
	opt := &gh.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	repos, _, err := c.gh.Repositories.List(ctx, user, opt)
	if err != nil {
		return nil, classify(err)
	}

	if repos == nil {
		return nil, fmt.Errorf("decoding repositories: %w", ErrMalformedList)
	}

	out := make([]Repository, 0, len(repos))
	for i, r := range repos {
		if r == nil {
			return nil, fmt.Errorf("decoding repository %d: %w", i, ErrMalformedList)
		}
		out = append(out, Repository{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Fork:        r.GetFork(),
			HTMLURL:     r.GetHTMLURL(),
		})
	}
	return out, nil
}

// classify turns go-github's status errors into a FetchError and wraps
// everything else.
func classify(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &FetchError{StatusCode: statusOf(rateErr.Response), Message: rateErr.Message}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &FetchError{StatusCode: statusOf(abuseErr.Response), Message: abuseErr.Message}
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return &FetchError{StatusCode: statusOf(respErr.Response), Message: respErr.Message}
	}
	return fmt.Errorf("listing repositories: %w", err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
