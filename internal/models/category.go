package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is used when a category is created without an
// explicit color.
const DefaultCategoryColor = "#3B82F6"

// Category is a user defined spending bucket.
//
// Deleting a category deletes its budgets and expenses, the foreign
// keys on those resources cascade.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`
	Name   string
	Color  string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	return nil
}

// defaultCategories are created for every new user so that an account
// is usable without any setup.
var defaultCategories = []Category{
	{Name: "Food & Dining", Color: "#FF6B6B"},
	{Name: "Transportation", Color: "#4ECDC4"},
	{Name: "Shopping", Color: "#45B7D1"},
	{Name: "Entertainment", Color: "#96CEB4"},
	{Name: "Bills & Utilities", Color: "#FFEAA7"},
	{Name: "Healthcare", Color: "#DDA0DD"},
	{Name: "Education", Color: "#98D8C8"},
	{Name: "Travel", Color: "#F7DC6F"},
}

// CreateDefaultCategories creates the default category set for a new
// user.
func CreateDefaultCategories(userID uuid.UUID) error {
	for _, category := range defaultCategories {
		category.UserID = userID

		err := DB.Create(&category).Error
		if err != nil {
			return err
		}
	}

	return nil
}
