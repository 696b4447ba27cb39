// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
//
// Reads run without isolation against concurrent writes; a write landing
// mid-scan may or may not be reflected in the result.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Insert persists a new expense.
func (r *expenseRepository) Insert(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	if err := r.db.WithContext(ctx).Create(expenseModel).Error; err != nil {
		return err
	}
	return nil
}

// Update replaces the stored expense with the given one.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense by ID.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindAll retrieves every expense in insertion order.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// FindByCategory retrieves expenses matching the category, case-insensitively.
func (r *expenseRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("LOWER(category) = LOWER(?)", category).
		Order("created_at ASC, id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// FindByDateRange retrieves expenses with from <= date <= to.
func (r *expenseRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("created_at ASC, id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// FindByRecurrenceNot retrieves expenses whose recurrence differs from the
// given value.
func (r *expenseRepository) FindByRecurrenceNot(ctx context.Context, recurrence entity.Recurrence) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("recurrence <> ?", string(recurrence)).
		Order("created_at ASC, id ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(expenseModels), nil
}

// GenerateOccurrence deactivates the source and inserts the generated
// occurrence inside a single transaction.
func (r *expenseRepository) GenerateOccurrence(ctx context.Context, source *entity.Expense, next *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ExpenseModel{}).
			Where("id = ?", source.ID).
			Updates(map[string]any{
				"active":     source.Active,
				"updated_at": source.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrExpenseNotFound
		}

		return tx.Create(model.ExpenseFromEntity(next)).Error
	})
}

func toEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i, m := range expenseModels {
		expenses[i] = m.ToEntity()
	}
	return expenses
}
