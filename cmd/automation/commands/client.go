package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fivetwenty-io/azure-automation/internal/constants"
	"github.com/fivetwenty-io/azure-automation/pkg/automation"
	"github.com/fivetwenty-io/azure-automation/pkg/automationclient"
)

// NewLogger returns a development logger on stderr when verbose is set and a
// no-op logger otherwise.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return logger, nil
}

// CreateClient builds a library client from the CLI configuration. Without
// a token or client secret the azidentity default credential chain is used.
func CreateClient(cfg *Config, userAgent string) (automation.Client, error) {
	logger, err := NewLogger(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	zapLogger := automation.NewZapLogger(logger)

	config := &automation.Config{
		Endpoint:     cfg.Endpoint,
		AccessToken:  cfg.Token,
		TenantID:     cfg.TenantID,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		UserAgent:    userAgent,
		Debug:        cfg.Verbose,
		Logger:       zapLogger,
		RetryMax:     cfg.RetryMax,
		RetryWaitMin: cfg.RetryWait,
	}

	if cfg.Token == "" && cfg.TenantID == "" && cfg.ClientID == "" && cfg.ClientSecret == "" {
		config.UseDefaultCredential = true
	}

	if cfg.Verbose {
		config.RequestInterceptors = append(config.RequestInterceptors, automation.LoggingInterceptor(zapLogger))
		config.ResponseInterceptors = append(config.ResponseInterceptors, automation.LoggingResponseInterceptor(zapLogger))
	}

	client, err := automationclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// collect pages through list for cmd, stopping after constants.MaxPages pages.
func collect[P automation.Page[E], E any](cmd *cobra.Command, list *automation.ListRequest[P, E]) ([]E, error) {
	return collectPages(cmd.Context(), cmd.ErrOrStderr(), constants.MaxPages, list)
}

// collectPages gathers at most limit pages. When more remain, a notice goes
// to stderr so truncated output is not mistaken for the full listing.
func collectPages[P automation.Page[E], E any](
	ctx context.Context, stderr io.Writer, limit int, list *automation.ListRequest[P, E],
) ([]E, error) {
	var (
		items []E
		pages int
	)

	for page, err := range list.Pages(ctx) {
		if err != nil {
			return nil, err
		}

		items = append(items, (*page).Values()...)

		pages++
		if pages >= limit {
			if (*page).NextPageLink() != "" {
				_, _ = fmt.Fprintf(stderr, "Showing the first %d pages (%d items); more results are available.\n", pages, len(items))
			}

			break
		}
	}

	return items, nil
}
