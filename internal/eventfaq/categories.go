package eventfaq

import (
	"context"
	"fmt"
	"strings"

	"github.com/partyplan/faq/internal/db"
	"github.com/partyplan/faq/internal/faq"
)

// Categories lists the categories of an event in display order.
func (m *Manager) Categories(ctx context.Context, v Viewer, eventID int) ([]Category, error) {
	if _, err := m.readAccess(ctx, v, eventID); err != nil {
		return nil, err
	}

	list, err := m.repo.Categories(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CreateCategory appends a category after the existing ones.
func (m *Manager) CreateCategory(ctx context.Context, v Viewer, eventID int, name string) (*Category, error) {
	if err := m.requireHost(ctx, v, eventID, "manage categories"); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newError(ErrInvalidInput, "Category name is required")
	}

	category := &db.QuestionCategory{
		EventID: eventID,
		Name:    name,
	}

	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		last, err := tx.MaxDisplayOrder(ctx, eventID)
		if err != nil {
			return fmt.Errorf("db get max display order: %w", err)
		}
		category.DisplayOrder = last + 1

		if err := tx.CreateCategory(ctx, category); err != nil {
			return fmt.Errorf("db create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	created := NewCategory(category)
	return &created, nil
}

// UpdateCategory renames a category. A nil name leaves it unchanged.
func (m *Manager) UpdateCategory(ctx context.Context, v Viewer, eventID, categoryID int, name *string) (*Category, error) {
	if err := m.requireHost(ctx, v, eventID, "manage categories"); err != nil {
		return nil, err
	}

	category, err := m.repo.CategoryByID(ctx, eventID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	} else if category == nil {
		return nil, newError(ErrCategoryNotFound, "Category not found")
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, newError(ErrInvalidInput, "Category name is required")
		}

		category.Name = trimmed
		if err := m.repo.UpdateCategory(ctx, category, db.Columns.QuestionCategory.Name); err != nil {
			return nil, fmt.Errorf("db update category: %w", err)
		}
	}

	updated := NewCategory(category)
	return &updated, nil
}

// UpdateCategoryOrder applies a category order in one transaction.
func (m *Manager) UpdateCategoryOrder(ctx context.Context, v Viewer, eventID int, order faq.CategoryOrder) error {
	if err := m.requireHost(ctx, v, eventID, "reorder categories"); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(order.Items))
	for _, it := range order.Items {
		if _, ok := seen[it.CategoryID]; ok {
			return newError(ErrInvalidInput, "Category %d is listed more than once", it.CategoryID)
		}
		seen[it.CategoryID] = struct{}{}

		if it.DisplayOrder < 1 {
			return newError(ErrInvalidInput, "Category %d needs a positive display order", it.CategoryID)
		}
	}

	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		for _, it := range order.Items {
			category, err := tx.CategoryByID(ctx, eventID, it.CategoryID)
			if err != nil {
				return fmt.Errorf("db get category: %w", err)
			} else if category == nil {
				return newError(ErrCategoryNotFound, "Category not found")
			}

			category.DisplayOrder = it.DisplayOrder
			if err := tx.UpdateCategory(ctx, category, db.Columns.QuestionCategory.DisplayOrder); err != nil {
				return fmt.Errorf("db update category order: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.invalidate(ctx, eventID)
	return nil
}

// DeleteCategory removes a category. Its questions stay published and move to
// the end of the uncategorized pool; the remaining categories are renumbered.
func (m *Manager) DeleteCategory(ctx context.Context, v Viewer, eventID, categoryID int) error {
	if err := m.requireHost(ctx, v, eventID, "manage categories"); err != nil {
		return err
	}

	err := m.repo.RunInTransaction(ctx, func(tx Repository) error {
		category, err := tx.CategoryByID(ctx, eventID, categoryID)
		if err != nil {
			return fmt.Errorf("db get category: %w", err)
		} else if category == nil {
			return newError(ErrCategoryNotFound, "Category not found")
		}

		rows, err := tx.Questions(ctx, eventID, true)
		if err != nil {
			return fmt.Errorf("db get questions: %w", err)
		}

		var pool, orphans []*db.Question
		for i := range rows {
			switch {
			case rows[i].CategoryID == nil:
				pool = append(pool, &rows[i])
			case *rows[i].CategoryID == categoryID:
				orphans = append(orphans, &rows[i])
			}
		}

		if err := tx.DeleteCategory(ctx, category); err != nil {
			return fmt.Errorf("db delete category: %w", err)
		}

		members := append(pool, orphans...)
		list := make([]faq.Question, len(members))
		for i, q := range members {
			list[i] = NewQuestion(q).FAQ()
		}

		for i, placed := range faq.Renumber(list, faq.Uncategorized) {
			applyPlacement(members[i], placed)
			if err := tx.UpdateQuestion(ctx, members[i], placementColumns...); err != nil {
				return fmt.Errorf("db move question to uncategorized: %w", err)
			}
		}

		return m.compactCategories(ctx, tx, eventID)
	})
	if err != nil {
		return err
	}

	m.invalidate(ctx, eventID)
	return nil
}

func (m *Manager) compactCategories(ctx context.Context, tx Repository, eventID int) error {
	categories, err := tx.Categories(ctx, eventID)
	if err != nil {
		return fmt.Errorf("db get categories: %w", err)
	}

	for i := range categories {
		if categories[i].DisplayOrder == i+1 {
			continue
		}

		categories[i].DisplayOrder = i + 1
		if err := tx.UpdateCategory(ctx, &categories[i], db.Columns.QuestionCategory.DisplayOrder); err != nil {
			return fmt.Errorf("db update category order: %w", err)
		}
	}

	return nil
}
