package todo

// AverageProgress returns the mean progress of todos, truncated. An empty
// slice yields 0.
func AverageProgress(todos []*Todo) int {
	if len(todos) == 0 {
		return 0
	}
	var total int
	for _, t := range todos {
		total += t.progress
	}
	return total / len(todos)
}
