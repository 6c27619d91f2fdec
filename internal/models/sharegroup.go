package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShareGroup is a persistent group of people who share expenses over
// time, independent of any single expense.
type ShareGroup struct {
	DefaultModel
	Name    string             `json:"name" example:"Flat 23"` // Name of the group
	OwnerID uuid.UUID          `json:"ownerId"`                // The person who created the group
	Members []ShareGroupMember `json:"members,omitempty" gorm:"foreignKey:GroupID"`
}

// ShareGroupMember is the membership of one person in one share group.
type ShareGroupMember struct {
	DefaultModel
	GroupID  uuid.UUID  `json:"groupId" gorm:"uniqueIndex:member_group_person"`
	Group    ShareGroup `json:"-"`
	PersonID uuid.UUID  `json:"personId" gorm:"uniqueIndex:member_group_person"`
	Person   Person     `json:"-"`
}

// SharedExpense is an expense paid by one group member on behalf of the
// whole group. Its amount is allocated across the members that exist at
// recording time.
type SharedExpense struct {
	DefaultModel
	GroupID uuid.UUID            `json:"groupId"`
	Group   ShareGroup           `json:"-"`
	PayerID uuid.UUID            `json:"payerId"`
	Payer   Person               `json:"-"`
	Amount  decimal.Decimal      `json:"amount" gorm:"type:DECIMAL(20,8)" example:"42"`
	Date    time.Time            `json:"date"`
	Note    string               `json:"note" default:""`
	Shares  []SharedExpenseShare `json:"shares,omitempty"`
}

// SharedExpenseShare is the part of a shared expense allocated to one
// group member.
type SharedExpenseShare struct {
	DefaultModel
	SharedExpenseID uuid.UUID       `json:"sharedExpenseId"`
	PersonID        uuid.UUID       `json:"personId"`
	ShareAmount     decimal.Decimal `json:"shareAmount" gorm:"type:DECIMAL(20,8)"`
}

var (
	ErrShareGroupNameRequired = errors.New("the name of the share group must be set")
	ErrAlreadyGroupMember     = errors.New("this person already is a member of the group")
	ErrGroupHasNoMembers      = errors.New("the share group does not have any members")
)

// BeforeSave trims whitespace from the strings.
func (g *ShareGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if g.Name == "" {
		return ErrShareGroupNameRequired
	}

	return nil
}

// BeforeSave validates the amount and normalizes the date to UTC.
func (e *SharedExpense) BeforeSave(_ *gorm.DB) error {
	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	e.Date = e.Date.In(time.UTC)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// GroupMembers returns the members of the group in the order they
// joined.
func GroupMembers(db *gorm.DB, groupID uuid.UUID) ([]ShareGroupMember, error) {
	var members []ShareGroupMember
	err := db.Where("group_id = ?", groupID).Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// GroupExpenses returns the shared expenses of the group, newest first.
func GroupExpenses(db *gorm.DB, groupID uuid.UUID) ([]SharedExpense, error) {
	var expenses []SharedExpense
	err := db.Where("group_id = ?", groupID).Order("date DESC").Preload("Shares").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
