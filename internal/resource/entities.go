package resource

import (
	"lms-admin/internal/apiclient"
	"lms-admin/internal/domain/entity"
)

// Registry bundles the typed resources the admin console works with.
// All resources share one API client, so rate limiting, retries, and the
// circuit breaker apply across the whole console.
type Registry struct {
	Courses     *Resource[entity.Course]
	Lessons     *Resource[entity.Lesson]
	Quizzes     *Resource[entity.Quiz]
	Categories  *Resource[entity.Category]
	Users       *Resource[entity.User]
	Instructors *Resource[entity.Instructor]
	Enrollments *Resource[entity.Enrollment]
	Attendance  *Resource[entity.Attendance]
	Leads       *Resource[entity.Lead]
	Reviews     *Resource[entity.Review]
}

// NewRegistry creates a resource for every entity collection.
func NewRegistry(client *apiclient.Client) *Registry {
	return &Registry{
		Courses:     NewResource[entity.Course](client, "courses"),
		Lessons:     NewResource[entity.Lesson](client, "lessons"),
		Quizzes:     NewResource[entity.Quiz](client, "quizzes"),
		Categories:  NewResource[entity.Category](client, "categories"),
		Users:       NewResource[entity.User](client, "users"),
		Instructors: NewResource[entity.Instructor](client, "instructors"),
		Enrollments: NewResource[entity.Enrollment](client, "enrollments"),
		Attendance:  NewResource[entity.Attendance](client, "attendance"),
		Leads:       NewResource[entity.Lead](client, "leads"),
		Reviews:     NewResource[entity.Review](client, "reviews"),
	}
}
