package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdeenko/todokeep/internal/model"
)

func addCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			impFlag, _ := cmd.Flags().GetString("importance")
			dueFlag, _ := cmd.Flags().GetString("due")
			notes, _ := cmd.Flags().GetString("notes")
			projects, _ := cmd.Flags().GetStringSlice("project")

			importance, err := parseImportance(impFlag)
			if err != nil {
				return err
			}
			due, err := parseDue(dueFlag)
			if err != nil {
				return err
			}

			task, err := app.Tasks.Create(args[0], importance, due, notes, false)
			if err != nil {
				return mapError(err)
			}
			if len(projects) > 0 {
				if err := app.Projects.SetTaskProjects(task.ID, projects); err != nil {
					return mapError(err)
				}
			}

			fmt.Printf("Created %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().StringP("importance", "i", "medium", "Importance (low, medium, high)")
	cmd.Flags().StringP("due", "d", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringP("notes", "n", "", "Free-form notes")
	cmd.Flags().StringSliceP("project", "p", nil, "Projects to file the task under")
	cmd.MarkFlagRequired("due")
	return cmd
}

func listCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			sortBy, _ := cmd.Flags().GetString("sort")
			today, _ := cmd.Flags().GetBool("today")
			week, _ := cmd.Flags().GetBool("week")
			group, _ := cmd.Flags().GetBool("group")
			project, _ := cmd.Flags().GetString("project")
			all, _ := cmd.Flags().GetBool("all")

			tasks := app.Tasks.List()
			if project != "" {
				p, err := app.Projects.Get(project)
				if err != nil {
					return mapError(err)
				}
				tasks = filterTasks(tasks, func(t model.Task) bool { return p.Contains(t.ID) })
			}
			if !all {
				tasks = filterTasks(tasks, func(t model.Task) bool { return !t.Completed })
			}

			now := app.Now()
			switch {
			case today:
				tasks = app.Tasks.DueToday(tasks, now)
			case week:
				tasks = app.Tasks.DueThisWeek(tasks, now)
			}

			switch sortBy {
			case "due":
				tasks = app.Tasks.SortByDueDate(tasks)
			case "importance":
				tasks = app.Tasks.SortByImportance(tasks)
			case "":
			default:
				return fmt.Errorf("invalid sort %q (want due or importance)", sortBy)
			}

			if group {
				printGrouped(app, tasks)
				return nil
			}
			printTasks(tasks)
			return nil
		},
	}

	cmd.Flags().StringP("sort", "s", "", "Sort order (due, importance)")
	cmd.Flags().Bool("today", false, "Only tasks due today")
	cmd.Flags().Bool("week", false, "Only tasks due this week (today or later)")
	cmd.Flags().BoolP("group", "g", false, "Group by time frame")
	cmd.Flags().StringP("project", "p", "", "Only tasks in the given project")
	cmd.Flags().BoolP("all", "a", false, "Include completed tasks")
	return cmd
}

func showCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [task id]",
		Short: "Show one task in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.Get(args[0])
			if err != nil {
				return mapError(err)
			}

			fmt.Printf("%s  %s\n", task.ID, task.Description)
			fmt.Printf("  importance: %s\n", task.Importance)
			fmt.Printf("  due:        %s\n", task.DueDate.Format("2006-01-02 15:04:05"))
			fmt.Printf("  completed:  %v\n", task.Completed)
			if task.Notes != "" {
				fmt.Printf("  notes:      %s\n", task.Notes)
			}
			if names := app.Projects.ProjectsContaining(task.ID); len(names) > 0 {
				fmt.Printf("  projects:   %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func editCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [task id]",
		Short: "Edit task fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.TaskPatch

			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				patch.Description = &v
			}
			if cmd.Flags().Changed("importance") {
				v, _ := cmd.Flags().GetString("importance")
				imp, err := parseImportance(v)
				if err != nil {
					return err
				}
				patch.Importance = &imp
			}
			if cmd.Flags().Changed("due") {
				v, _ := cmd.Flags().GetString("due")
				due, err := parseDue(v)
				if err != nil {
					return err
				}
				patch.DueDate = &due
			}
			if cmd.Flags().Changed("notes") {
				v, _ := cmd.Flags().GetString("notes")
				patch.Notes = &v
			}

			task, err := app.Tasks.Update(args[0], patch)
			if err != nil {
				return mapError(err)
			}

			// Переназначение проектов: снять отовсюду, добавить в выбранные.
			if cmd.Flags().Changed("project") {
				names, _ := cmd.Flags().GetStringSlice("project")
				if err := app.Projects.SetTaskProjects(task.ID, names); err != nil {
					return mapError(err)
				}
			}

			fmt.Printf("Updated %s\n", task.ID)
			return nil
		},
	}

	cmd.Flags().String("description", "", "New description")
	cmd.Flags().StringP("importance", "i", "", "New importance (low, medium, high)")
	cmd.Flags().StringP("due", "d", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().StringP("notes", "n", "", "New notes")
	cmd.Flags().StringSliceP("project", "p", nil, "Replace project assignment")
	return cmd
}

func doneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done [task id]",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := app.Tasks.ToggleCompleted(args[0])
			if err != nil {
				return mapError(err)
			}
			if task.Completed {
				fmt.Printf("%s completed\n", task.ID)
			} else {
				fmt.Printf("%s reopened\n", task.ID)
			}
			return nil
		},
	}
}

func rmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [task id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(args[0]); err != nil {
				return mapError(err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

func filterTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
