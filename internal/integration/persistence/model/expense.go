// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title             string          `gorm:"type:varchar(255)"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category          string          `gorm:"type:varchar(100);index"`
	Date              time.Time       `gorm:"not null;index"`
	Recurrence        string          `gorm:"type:varchar(10);not null;default:none;index"`
	Active            bool            `gorm:"not null;default:true"`
	RecurrenceEndDate *time.Time      `gorm:"type:date"`
	Note              string          `gorm:"type:text"`
	Tags              string          `gorm:"type:text"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                m.ID,
		Title:             m.Title,
		Amount:            m.Amount,
		Category:          m.Category,
		Date:              m.Date,
		Recurrence:        entity.Recurrence(m.Recurrence),
		Active:            m.Active,
		RecurrenceEndDate: m.RecurrenceEndDate,
		Note:              m.Note,
		Tags:              m.Tags,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                expense.ID,
		Title:             expense.Title,
		Amount:            expense.Amount,
		Category:          expense.Category,
		Date:              expense.Date,
		Recurrence:        string(expense.Recurrence),
		Active:            expense.Active,
		RecurrenceEndDate: expense.RecurrenceEndDate,
		Note:              expense.Note,
		Tags:              expense.Tags,
		CreatedAt:         expense.CreatedAt,
		UpdatedAt:         expense.UpdatedAt,
	}
}
