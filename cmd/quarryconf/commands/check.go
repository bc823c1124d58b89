package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quarrydb/quarry/internal/conf"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check key=value [key=value ...]",
		Short: "Validate configuration overrides",
		Long: `Apply key=value pairs to a scratch session store, exactly as a running
session would. Registered keys are validated against their entry's type,
transform, and allowed values; unregistered keys are accepted verbatim.

Validation stops at the first invalid pair.`,
		Example: `  quarryconf check quarry.exec.shuffle.partitions=64 quarry.exec.compression.codec=ZSTD`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]string, len(args))
			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("argument %q is not of the form key=value", arg)
				}
				overrides[key] = value
			}

			s := conf.NewSettings(conf.WithLogger(log.Logger))
			if err := s.SetAll(overrides); err != nil {
				return err
			}

			for key, value := range s.All() {
				log.Debug().Str("key", key).Str("value", value).Msg("accepted")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d override(s) valid\n", len(overrides))
			return nil
		},
	}

	return cmd
}
