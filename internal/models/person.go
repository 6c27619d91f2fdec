package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Person represents someone who records expenses or participates in
// shared expenses.
//
// People are created lazily the first time their email address is
// referenced and are never deleted.
type Person struct {
	DefaultModel
	Email string `json:"email" gorm:"uniqueIndex" example:"morre@example.com"` // Email address, the natural key of a person
	Name  string `json:"name" example:"Morre" default:""`                      // Display name, optional
}

var (
	ErrPersonEmailRequired  = errors.New("the email address of the person must be set")
	ErrPersonEmailNotUnique = errors.New("a person with this email address already exists")
)

// BeforeSave trims whitespace from the strings.
func (p *Person) BeforeSave(_ *gorm.DB) error {
	p.Email = strings.TrimSpace(p.Email)
	p.Name = strings.TrimSpace(p.Name)

	if p.Email == "" {
		return ErrPersonEmailRequired
	}

	return nil
}

// ResolvePerson returns the person with the given email address,
// creating them if they do not exist yet.
//
// The call is idempotent: name is only used on creation, an existing
// person is returned unchanged. Two concurrent calls for the same email
// can both pass the lookup, in that case the unique index rejects the
// second insert and the winner's row is returned.
func ResolvePerson(db *gorm.DB, email string, name string) (Person, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Person{}, ErrPersonEmailRequired
	}

	var person Person
	err := db.Where("email = ?", email).First(&person).Error
	if err == nil {
		return person, nil
	}
	if !errors.Is(err, ErrResourceNotFound) {
		return Person{}, err
	}

	person = Person{Email: email, Name: name}
	err = db.Create(&person).Error
	if errors.Is(err, ErrPersonEmailNotUnique) {
		// Lost the creation race, the row exists now
		err = db.Where("email = ?", email).First(&person).Error
	}
	if err != nil {
		return Person{}, err
	}

	return person, nil
}
