package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tessro/weekly/internal/github"
)

// newClient builds a GitHub client, resolving the token from explicit,
// the config file, the dotenv file, then the environment.
func (a *app) newClient(ctx context.Context, explicit string) (*github.Client, error) {
	token, source := a.cfg.ResolveToken(explicit, a.env.Dotenv)
	if token == "" {
		return nil, fmt.Errorf("%w: pass it as an argument, set [github] token, or export GITHUB_TOKEN", github.ErrNoToken)
	}
	slog.Debug("resolved github token", "source", source)

	opts := a.cfg.ClientOptions(token)
	opts.HTTPClient = a.env.HTTPClient
	return github.NewClient(ctx, opts)
}

// fetchIssues runs the issues query. A non-success response is reported on
// w with its status code and raw body before the error is returned.
func (a *app) fetchIssues(ctx context.Context, w io.Writer, owner, repo, token string) (*github.IssuesData, error) {
	client, err := a.newClient(ctx, token)
	if err != nil {
		return nil, err
	}

	data, err := client.FetchIssues(ctx, owner, repo)
	if err != nil {
		var statusErr *github.StatusError
		if errors.As(err, &statusErr) {
			_, _ = fmt.Fprintf(w, "Request failed with status code: %d\n", statusErr.StatusCode)
			_, _ = fmt.Fprintln(w, string(statusErr.Body))
		}
		return nil, err
	}
	return data, nil
}

// tokenArg returns the optional positional token at index i.
func tokenArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}
	return ""
}
