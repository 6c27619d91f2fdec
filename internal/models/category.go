package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Category represents a spending category that expenses and budgets
// are recorded against.
type Category struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex" example:"Groceries"`         // Name of the category, the natural key
	Description string `json:"description" example:"Everything edible" default:""` // Description, optional
}

var (
	ErrCategoryNameRequired  = errors.New("the name of the category must be set")
	ErrCategoryNameNotUnique = errors.New("a category with this name already exists")
)

// BeforeSave trims whitespace from the strings.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

// ResolveCategory returns the category with the given name, creating it
// if it does not exist yet.
//
// The call is idempotent: description is only used on creation, an
// existing category is returned unchanged. Concurrent creation races
// are resolved by the unique index, see ResolvePerson.
func ResolveCategory(db *gorm.DB, name string, description string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrCategoryNameRequired
	}

	var category Category
	err := db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, ErrResourceNotFound) {
		return Category{}, err
	}

	category = Category{Name: name, Description: description}
	err = db.Create(&category).Error
	if errors.Is(err, ErrCategoryNameNotUnique) {
		// Lost the creation race, the row exists now
		err = db.Where("name = ?", name).First(&category).Error
	}
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// Categories returns all known categories ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
