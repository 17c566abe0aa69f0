package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func wipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete every task, project and the id counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				return fmt.Errorf("refusing to wipe without --yes")
			}

			// Сначала проекты, затем задачи со счетчиком.
			if err := app.Projects.Wipe(); err != nil {
				return err
			}
			if err := app.Tasks.Wipe(); err != nil {
				return err
			}
			fmt.Println("All data wiped.")
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "Confirm the wipe")
	return cmd
}
