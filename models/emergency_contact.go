package models

// EmergencyContact is owned by exactly one Person & has no life of its own.
// Position keeps the order of a person's contacts when they are persisted.
type EmergencyContact struct {
	ID           uint   `json:"-" gorm:"primarykey"`
	PersonID     string `json:"-" gorm:"not null;index"`
	Position     int    `json:"-"`
	Name         string `json:"name" validate:"required,name"`
	Phone        string `json:"phone" validate:"required,phone"`
	Relationship string `json:"relationship" validate:"required"`
}

func NewEmergencyContact(name, phone, relationship string) EmergencyContact {
	return EmergencyContact{Name: name, Phone: phone, Relationship: relationship}
}

// IsSame compares the user visible fields of two contacts
func (contact EmergencyContact) IsSame(other EmergencyContact) bool {
	return contact.Name == other.Name &&
		contact.Phone == other.Phone &&
		contact.Relationship == other.Relationship
}
