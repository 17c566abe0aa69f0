package model

// Project группирует задачи по ссылке: TaskIDs хранит только идентификаторы,
// сами задачи живут в TaskService.
type Project struct {
	Name        string
	Description string
	TaskIDs     []string
}

func (p Project) Contains(taskID string) bool {
	for _, id := range p.TaskIDs {
		if id == taskID {
			return true
		}
	}
	return false
}

// Clone возвращает копию, которую вызывающий может менять свободно.
func (p Project) Clone() Project {
	out := p
	out.TaskIDs = make([]string, len(p.TaskIDs))
	copy(out.TaskIDs, p.TaskIDs)
	return out
}
