package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/model"
)

func projectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(projectAddCmd(app))
	cmd.AddCommand(projectRmCmd(app))
	cmd.AddCommand(projectListCmd(app))
	cmd.AddCommand(projectTasksCmd(app))
	cmd.AddCommand(projectAssignCmd(app))
	cmd.AddCommand(projectUnassignCmd(app))
	return cmd
}

func projectAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description, _ := cmd.Flags().GetString("description")
			p, err := app.Projects.Create(args[0], description)
			if err != nil {
				return mapError(err)
			}
			fmt.Printf("Created project %q\n", p.Name)
			return nil
		},
	}
	cmd.Flags().StringP("description", "d", "", "Project description")
	return cmd
}

func projectRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name]",
		Short: "Delete a project (member tasks are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.Delete(args[0]); err != nil {
				return mapError(err)
			}
			fmt.Printf("Deleted project %q\n", args[0])
			return nil
		},
	}
}

func projectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Projects.List()
			if len(projects) == 0 {
				fmt.Println("No projects.")
				return nil
			}
			for _, p := range projects {
				fmt.Printf("%-20s %2d tasks", p.Name, len(p.TaskIDs))
				if p.Description != "" {
					fmt.Printf("  %s", p.Description)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

func projectTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks [name]",
		Short: "List the tasks of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(args[0])
			if err != nil {
				return mapError(err)
			}

			tasks := make([]model.Task, 0, len(p.TaskIDs))
			for _, id := range p.TaskIDs {
				t, err := app.Tasks.Get(id)
				if err != nil {
					// Членство без задачи: чистка была пропущена вызывающим.
					app.Logger.Warn("dangling task reference",
						zap.String("project", p.Name), zap.String("task", id))
					continue
				}
				tasks = append(tasks, t)
			}
			printTasks(app.Tasks.SortByDueDate(tasks))
			return nil
		},
	}
}

func projectAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign [task id] [project]",
		Short: "Add a task to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Ссылочную целостность обеспечивает вызывающий: проверяем,
			// что задача существует, прежде чем записывать членство.
			if _, err := app.Tasks.Get(args[0]); err != nil {
				return mapError(err)
			}
			if err := app.Projects.AddTask(args[1], args[0]); err != nil {
				return mapError(err)
			}
			fmt.Printf("Added %s to %q\n", args[0], args[1])
			return nil
		},
	}
}

func projectUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign [task id] [project]",
		Short: "Remove a task from a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Projects.RemoveTask(args[1], args[0]); err != nil {
				return mapError(err)
			}
			fmt.Printf("Removed %s from %q\n", args[0], args[1])
			return nil
		},
	}
}
