package adapters

import (
	"fmt"

	"github.com/akarpov/feedpulse/internal/adapters/primary/cli"
	httpadapter "github.com/akarpov/feedpulse/internal/adapters/primary/http"
	"github.com/akarpov/feedpulse/internal/adapters/secondary/repository/api"
	"github.com/akarpov/feedpulse/internal/adapters/secondary/repository/cached"
	"github.com/akarpov/feedpulse/internal/config"
	"github.com/akarpov/feedpulse/internal/core/app"
	"github.com/akarpov/feedpulse/internal/format/ascii"
	"github.com/akarpov/feedpulse/internal/permalink"
	"github.com/hashicorp/go-retryablehttp"
	do "github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

var PrimaryPackage = do.Package(
	do.Lazy[*cobra.Command](cli.Command),
	do.Lazy[*httpadapter.Server](NewHTTPServer),
)

var SecondaryPackage = do.Package(
	do.Lazy[*retryablehttp.Client](NewHTTPClient),
	do.Lazy[*api.Repository](NewAPIRepository),
	do.Lazy[app.Repository](NewRepository),
	do.Lazy[*ascii.Formatter](NewFormatter),
	do.Lazy[*permalink.Builder](NewPermalinkBuilder),
)

// NewHTTPClient creates the upstream HTTP client with bounded retries and
// no per-attempt logging.
func NewHTTPClient(_ do.Injector) (*retryablehttp.Client, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil

	return client, nil
}

// NewAPIRepository creates a new feed API repository instance.
func NewAPIRepository(i do.Injector) (*api.Repository, error) {
	client := do.MustInvoke[*retryablehttp.Client](i)
	cfg := do.MustInvoke[*config.Config](i)

	return api.NewRepository(client, cfg.BaseURL), nil
}

// NewRepository creates a repository adapter that implements app.Repository.
// It wraps the feed API repository with TTL caching.
func NewRepository(i do.Injector) (app.Repository, error) {
	apiRepo := do.MustInvoke[*api.Repository](i)

	return cached.NewRepository(apiRepo), nil
}

// NewFormatter creates a new ascii formatter.
func NewFormatter(_ do.Injector) (*ascii.Formatter, error) {
	return ascii.NewFormatter(), nil
}

// NewPermalinkBuilder creates a permalink builder from the configured
// post URL template.
func NewPermalinkBuilder(i do.Injector) (*permalink.Builder, error) {
	cfg := do.MustInvoke[*config.Config](i)

	builder, err := permalink.NewBuilder(cfg.PostURLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to create permalink builder: %w", err)
	}

	return builder, nil
}

// NewHTTPServer creates a new HTTP server.
func NewHTTPServer(i do.Injector) (*httpadapter.Server, error) {
	appInstance := do.MustInvoke[*app.App](i)
	cfg := do.MustInvoke[*config.Config](i)

	return httpadapter.NewServer(cfg.Address, appInstance), nil
}
