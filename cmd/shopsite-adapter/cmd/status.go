package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errServerRequired = errors.New("status needs --server (or SHOPSITE_SERVER)")

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and quota state of a running adapter",
		Long: "Ask a running adapter whether it holds an access token and how\n" +
			"much of its daily call quota is left. A one-shot CLI process has\n" +
			"neither, so this command always talks to --server.",
		Example: `  shopsite-adapter status --server http://localhost:8080`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := viper.GetString("server")
			if server == "" {
				return errServerRequired
			}

			c := newAPIClient(server)
			sess, err := c.Session(cmd.Context())
			if err != nil {
				return err
			}
			quota, err := c.Quota(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, map[string]any{"session": sess, "quota": quota})
			}

			tw := newTabWriter(out)
			tw.writef("AUTHENTICATED\t%t\n", sess.Authenticated)
			if sess.ExpiresAt != nil {
				tw.writef("TOKEN EXPIRES\t%s\n", sess.ExpiresAt.Format(time.RFC3339))
			}
			if !quota.Enabled {
				tw.writef("QUOTA\tunlimited\n")
				return tw.finish()
			}
			tw.writef("QUOTA\t%d / %d used\n", quota.DailyUsed, quota.DailyLimit)
			tw.writef("REMAINING\t%d\n", quota.Remaining)
			tw.writef("RESETS\t%s\n", quota.ResetAt.Format(time.RFC3339))
			return tw.finish()
		},
	}
}
