package cli

import (
	"fmt"

	"github.com/avdeenko/todokeep/internal/model"
	"github.com/avdeenko/todokeep/internal/timeframe"
)

func printTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return
	}
	for _, t := range tasks {
		printTaskLine(t)
	}
}

func printTaskLine(t model.Task) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	fmt.Printf("[%s] %-9s %s  %-6s  %s\n",
		mark, t.ID, t.DueDate.Format("2006-01-02"), t.Importance, t.Description)
}

func printGrouped(app *App, tasks []model.Task) {
	groups := app.Tasks.GroupByTimeFrame(tasks, app.Now())
	for _, frame := range timeframe.Frames {
		bucket, ok := groups[frame]
		if !ok {
			continue
		}
		fmt.Printf("%s\n", frame)
		for _, t := range app.Tasks.SortByDueDate(bucket) {
			fmt.Print("  ")
			printTaskLine(t)
		}
	}
}
