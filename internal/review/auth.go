package review

import (
	"context"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// newAuthenticatedClient builds a GitHub client from a static token.
func newAuthenticatedClient(token string) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(httpClient)
}
