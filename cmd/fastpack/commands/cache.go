package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the project cache",
	}
	cmd.AddCommand(c.newCacheInfoCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	return cmd
}

func (c *CLI) newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache mode, location and entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, _ := cmd.Flags().GetString("project")

			info, err := c.app.Info(project)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode:     %s\n", info.Mode)
			if info.Path != "" {
				fmt.Fprintf(out, "snapshot: %s\n", info.Path)
			}
			if info.StartedEmpty {
				fmt.Fprintln(out, "state:    empty (no snapshot loaded)")
			} else {
				fmt.Fprintln(out, "state:    loaded")
			}
			fmt.Fprintf(out, "files:    %d\n", info.Files)
			fmt.Fprintf(out, "modules:  %d\n", info.Modules)
			return nil
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the cache snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project, _ := cmd.Flags().GetString("project")

			removed, err := c.app.Clear(project)
			if err != nil {
				return err
			}

			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "cache snapshot removed")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to clear")
			}
			return nil
		},
	}
}
