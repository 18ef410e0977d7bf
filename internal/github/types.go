package github

import "fmt"

// Repository is the subset of a GitHub repository record the portfolio reads.
type Repository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	Fork        bool   `json:"fork"`
	HTMLURL     string `json:"html_url"`
}

// FetchError reports a non-success HTTP status from the API.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("github api error: status %d: %s", e.StatusCode, e.Message)
}
