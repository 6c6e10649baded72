package console

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lms-admin/internal/domain/entity"
	"lms-admin/internal/resource"
)

// referencePageSize bounds the option lists loaded for form dropdowns.
const referencePageSize = 100

// References holds the lookup data course forms need before they can render:
// the category and instructor option lists.
type References struct {
	Categories  []entity.Category
	Instructors []entity.Instructor
}

// LoadReferences fetches categories and instructors concurrently. Either
// fetch failing fails the load; a form cannot render with half its options.
func LoadReferences(ctx context.Context, reg *resource.Registry) (References, error) {
	var refs References

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result := reg.Categories.List(gctx, resource.ActiveView(1, referencePageSize).Values())
		if !result.Success {
			return &resource.ListError{Entity: reg.Categories.Entity(), Message: result.Message}
		}
		refs.Categories = result.Data.Data
		return nil
	})
	g.Go(func() error {
		result := reg.Instructors.List(gctx, resource.ActiveView(1, referencePageSize).Values())
		if !result.Success {
			return &resource.ListError{Entity: reg.Instructors.Entity(), Message: result.Message}
		}
		refs.Instructors = result.Data.Data
		return nil
	})
	if err := g.Wait(); err != nil {
		return References{}, err
	}
	return refs, nil
}

// HasCategory reports whether id is among the loaded category options.
func (r References) HasCategory(id int64) bool {
	for _, c := range r.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// HasInstructor reports whether id is among the loaded instructor options.
func (r References) HasInstructor(id int64) bool {
	for _, ins := range r.Instructors {
		if ins.ID == id {
			return true
		}
	}
	return false
}
