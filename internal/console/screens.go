package console

import (
	"io"
	"log/slog"
	"strconv"

	"lms-admin/internal/domain/entity"
	"lms-admin/internal/notify"
	"lms-admin/internal/resource"
)

// Build creates a screen per entity collection, keyed by the collection
// name used on the CLI.
func Build(reg *resource.Registry, notifier notify.Notifier, logger *slog.Logger, out io.Writer) map[string]Lister {
	return map[string]Lister{
		"courses": NewScreen(reg.Courses, notifier, logger, Columns[entity.Course]{
			Headers: []string{"ID", "TITLE", "PRICE", "PUBLISHED", "DELETED"},
			Row: func(c entity.Course) []string {
				return []string{id(c.ID), c.Title, id(c.Price), boolMark(c.Published), boolMark(c.IsDeleted)}
			},
		}, out),
		"lessons": NewScreen(reg.Lessons, notifier, logger, Columns[entity.Lesson]{
			Headers: []string{"ID", "COURSE", "TITLE", "DURATION", "DELETED"},
			Row: func(l entity.Lesson) []string {
				return []string{id(l.ID), id(l.CourseID), l.Title, strconv.Itoa(l.Duration) + "m", boolMark(l.IsDeleted)}
			},
		}, out),
		"quizzes": NewScreen(reg.Quizzes, notifier, logger, Columns[entity.Quiz]{
			Headers: []string{"ID", "LESSON", "TITLE", "QUESTIONS", "DELETED"},
			Row: func(q entity.Quiz) []string {
				return []string{id(q.ID), id(q.LessonID), q.Title, strconv.Itoa(q.Questions), boolMark(q.IsDeleted)}
			},
		}, out),
		"categories": NewScreen(reg.Categories, notifier, logger, Columns[entity.Category]{
			Headers: []string{"ID", "NAME", "SLUG", "DELETED"},
			Row: func(c entity.Category) []string {
				return []string{id(c.ID), c.Name, c.Slug, boolMark(c.IsDeleted)}
			},
		}, out),
		"users": NewScreen(reg.Users, notifier, logger, Columns[entity.User]{
			Headers: []string{"ID", "NAME", "EMAIL", "ROLE", "STATUS", "DELETED"},
			Row: func(u entity.User) []string {
				return []string{id(u.ID), u.Name, u.Email, string(u.Role), string(u.Status), boolMark(u.IsDeleted)}
			},
		}, out),
		"instructors": NewScreen(reg.Instructors, notifier, logger, Columns[entity.Instructor]{
			Headers: []string{"ID", "NAME", "DESIGNATION", "APPROVAL", "DELETED"},
			Row: func(i entity.Instructor) []string {
				return []string{id(i.ID), i.Name, i.Designation, i.ApprovalStatus, boolMark(i.IsDeleted)}
			},
		}, out),
		"enrollments": NewScreen(reg.Enrollments, notifier, logger, Columns[entity.Enrollment]{
			Headers: []string{"ID", "STUDENT", "COURSE", "TOTAL", "PAID", "DUE", "DELETED"},
			Row: func(e entity.Enrollment) []string {
				return []string{id(e.ID), id(e.StudentID), id(e.CourseID), id(e.TotalAmount), id(e.PaidAmount), id(e.DueAmount), boolMark(e.IsDeleted)}
			},
		}, out),
		"attendance": NewScreen(reg.Attendance, notifier, logger, Columns[entity.Attendance]{
			Headers: []string{"ID", "STUDENT", "COURSE", "DATE", "STATUS"},
			Row: func(a entity.Attendance) []string {
				return []string{id(a.ID), id(a.StudentID), id(a.CourseID), a.Date.Format("2006-01-02"), string(a.Status)}
			},
		}, out),
		"leads": NewScreen(reg.Leads, notifier, logger, Columns[entity.Lead]{
			Headers: []string{"ID", "NAME", "PHONE", "STATUS", "DELETED"},
			Row: func(l entity.Lead) []string {
				return []string{id(l.ID), l.Name, l.Phone, l.Status, boolMark(l.IsDeleted)}
			},
		}, out),
		"reviews": NewScreen(reg.Reviews, notifier, logger, Columns[entity.Review]{
			Headers: []string{"ID", "COURSE", "RATING", "DELETED"},
			Row: func(r entity.Review) []string {
				return []string{id(r.ID), id(r.CourseID), strconv.Itoa(r.Rating), boolMark(r.IsDeleted)}
			},
		}, out),
	}
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

func boolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
