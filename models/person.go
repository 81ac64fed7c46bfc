package models

import (
	"errors"
	"strings"

	"github.com/Daskott/kontacts/index"
)

var ErrInvalidEmergencyContactIndex = errors.New("emergency contact index is out of range")

type Person struct {
	BaseModel
	Position          int                `json:"-"`
	Name              string             `json:"name" validate:"required,name"`
	Phone             string             `json:"phone" validate:"required,phone"`
	Email             string             `json:"email" validate:"required,email"`
	Address           string             `json:"address" validate:"required"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts" validate:"dive" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewPerson creates a person with a fresh ID
func NewPerson(name, phone, email, address string, contacts ...EmergencyContact) *Person {
	return &Person{
		BaseModel:         BaseModel{ID: newID()},
		Name:              name,
		Phone:             phone,
		Email:             email,
		Address:           address,
		EmergencyContacts: append([]EmergencyContact{}, contacts...),
	}
}

func (person *Person) HasOnlyOneEmergencyContact() bool {
	return len(person.EmergencyContacts) == 1
}

// GetAndRemoveEmergencyContact removes the contact at idx & returns it.
// The order of the remaining contacts is kept.
func (person *Person) GetAndRemoveEmergencyContact(idx index.Index) (EmergencyContact, error) {
	i := idx.ZeroBased()
	if i >= len(person.EmergencyContacts) {
		return EmergencyContact{}, ErrInvalidEmergencyContactIndex
	}

	removed := person.EmergencyContacts[i]

	contacts := make([]EmergencyContact, 0, len(person.EmergencyContacts)-1)
	contacts = append(contacts, person.EmergencyContacts[:i]...)
	contacts = append(contacts, person.EmergencyContacts[i+1:]...)
	person.EmergencyContacts = contacts

	return removed, nil
}

// Clone returns a deep copy of person, sharing nothing with the original
func (person *Person) Clone() *Person {
	clone := *person
	clone.EmergencyContacts = append([]EmergencyContact{}, person.EmergencyContacts...)
	return &clone
}

// IsSamePerson reports whether other has the same name, ignoring case & surrounding spaces.
// It is a weaker notion of equality used to keep the address book free of duplicates.
func (person *Person) IsSamePerson(other *Person) bool {
	if other == nil {
		return false
	}

	if person == other {
		return true
	}

	return strings.EqualFold(strings.TrimSpace(person.Name), strings.TrimSpace(other.Name))
}

func (person *Person) Validate() error {
	return validate.Struct(person)
}
