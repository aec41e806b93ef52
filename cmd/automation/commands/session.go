package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/azure-automation/pkg/automation"
)

// session is the loaded configuration and client of one command invocation.
type session struct {
	cfg     *Config
	client  automation.Client
	sub     string
	group   string
	account string
}

// newSession loads configuration and builds a client. Account scoped
// commands pass scoped so that a missing subscription, resource group or
// account fails before any request is sent.
func newSession(cmd *cobra.Command, scoped bool) (*session, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, sub: cfg.Subscription, group: cfg.ResourceGroup, account: cfg.Account}

	if scoped {
		s.sub, s.group, s.account, err = cfg.Scope()
		if err != nil {
			return nil, err
		}
	}

	s.client, err = CreateClient(cfg, userAgent(cmd))
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *session) render(cmd *cobra.Command, value any, header []string, rows [][]string) error {
	return render(cmd.OutOrStdout(), s.cfg.Output, value, header, rows)
}
