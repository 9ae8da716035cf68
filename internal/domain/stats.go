package domain

import "time"

// Stats summarizes a task list.
type Stats struct {
	Total          int
	Active         int
	Completed      int
	Overdue        int
	ByPriority     map[Priority]int
	CompletionRate float64 // Percentage, 0-100
}

// Collect computes statistics over the task list. Overdue counts active
// tasks whose due date is before today.
func Collect(tasks []Task, now time.Time) Stats {
	s := Stats{
		ByPriority: map[Priority]int{
			PriorityHigh:   0,
			PriorityMedium: 0,
			PriorityLow:    0,
		},
	}

	for _, t := range tasks {
		s.Total++
		if t.Status == StatusCompleted {
			s.Completed++
		} else {
			s.Active++
			if BucketOf(t, now) == BucketOverdue {
				s.Overdue++
			}
		}
		if _, ok := s.ByPriority[t.Priority]; ok {
			s.ByPriority[t.Priority]++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
