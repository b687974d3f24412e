// Package recurrence schedules recurring household tasks: it computes next
// due dates, classifies tasks against a reference day and rotates cleaning
// assignees between members.
//
// Every function is pure. Callers pass the full task and the reference
// "today"; nothing is read from the clock here.
package recurrence

import (
	"fmt"
	"sort"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
)

// DefaultWindowDays is the look-ahead used for the upcoming bucket.
const DefaultWindowDays = 7

// Status is the classification of a task relative to a reference day.
type Status string

const (
	StatusOverdue   Status = "overdue"
	StatusDueToday  Status = "due_today"
	StatusUpcoming  Status = "upcoming"
	StatusNotYetDue Status = "not_yet_due"
)

// NextDueDate returns LastCompleted plus FrequencyDays calendar days.
func NextDueDate(task models.RecurringTask) models.Date {
	return task.LastCompleted.AddDays(task.FrequencyDays)
}

// IsOverdueOrDueToday reports whether the task is due on or before today.
func IsOverdueOrDueToday(task models.RecurringTask, today models.Date) bool {
	return !NextDueDate(task).After(today)
}

// IsUpcoming reports whether the task falls due after today but within
// windowDays. A task due today is never upcoming.
func IsUpcoming(task models.RecurringTask, today models.Date, windowDays int) bool {
	next := NextDueDate(task)
	return next.After(today) && !next.After(today.AddDays(windowDays))
}

// DaysUntilDue is negative when overdue, zero when due today and positive
// when the task falls due later.
func DaysUntilDue(task models.RecurringTask, today models.Date) int {
	return today.DaysUntil(NextDueDate(task))
}

// Classify places the task in exactly one status.
func Classify(task models.RecurringTask, today models.Date, windowDays int) Status {
	switch days := DaysUntilDue(task, today); {
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusDueToday
	case days <= windowDays:
		return StatusUpcoming
	default:
		return StatusNotYetDue
	}
}

// DueLabel renders a signed day count the way the task lists show it.
func DueLabel(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "due today"
	default:
		return fmt.Sprintf("in %dd", days)
	}
}

// MarkCompleted returns a copy of task completed on completionDate. Cleaning
// tasks are handed to the next member in the rotation; the argument is not
// modified.
func MarkCompleted(task models.RecurringTask, completionDate models.Date, members []string) models.RecurringTask {
	done := task
	done.LastCompleted = completionDate
	if task.Rotates() {
		done.Assignee = Rotate(members, task.Assignee)
	}
	return done
}

// Rotate returns the member after current in the ordered member list,
// wrapping around. With two members it flips between them. An assignee that
// is not a member hands the task to the first member; with no members the
// assignee is kept.
func Rotate(members []string, current string) string {
	if len(members) == 0 {
		return current
	}
	for i, m := range members {
		if models.SameMember(m, current) {
			return members[(i+1)%len(members)]
		}
	}
	return members[0]
}

// Entry is a task together with its derived schedule.
type Entry struct {
	Task     models.RecurringTask
	NextDue  models.Date
	DaysLeft int
	Status   Status
	Label    string
}

// Buckets partitions tasks for display. Due holds overdue tasks and tasks due
// today; each bucket is ordered by next due date.
type Buckets struct {
	Due      []Entry
	Upcoming []Entry
	Later    []Entry
}

// Describe derives the schedule entry of a single task.
func Describe(task models.RecurringTask, today models.Date, windowDays int) Entry {
	days := DaysUntilDue(task, today)
	return Entry{
		Task:     task,
		NextDue:  NextDueDate(task),
		DaysLeft: days,
		Status:   Classify(task, today, windowDays),
		Label:    DueLabel(days),
	}
}

// Schedule classifies every task into exactly one bucket.
func Schedule(tasks []models.RecurringTask, today models.Date, windowDays int) Buckets {
	var b Buckets
	for _, task := range tasks {
		e := Describe(task, today, windowDays)
		switch e.Status {
		case StatusOverdue, StatusDueToday:
			b.Due = append(b.Due, e)
		case StatusUpcoming:
			b.Upcoming = append(b.Upcoming, e)
		default:
			b.Later = append(b.Later, e)
		}
	}
	byNextDue(b.Due)
	byNextDue(b.Upcoming)
	byNextDue(b.Later)
	return b
}

func byNextDue(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].NextDue.Before(entries[j].NextDue)
	})
}
