package messages

import (
	"fmt"
	"strings"

	"github.com/Daskott/kontacts/models"
)

const (
	MessageUnknownCommand                        = "Unknown command"
	MessageInvalidCommandFormat                  = "Invalid command format! \n%s"
	MessageInvalidPersonDisplayedIndex           = "The person index provided is invalid"
	MessageInvalidEmergencyContactDisplayedIndex = "The emergency contact index provided is invalid"
	MessageLastEmergencyContactIndex             = "Cannot delete the last emergency contact of a person"
	MessagePersonsListedOverview                 = "%d persons listed!"
)

// Format renders every field of person, emergency contacts included
func Format(person *models.Person) string {
	contacts := make([]string, 0, len(person.EmergencyContacts))
	for _, contact := range person.EmergencyContacts {
		contacts = append(contacts, fmt.Sprintf("%s (%s) %s", contact.Name, contact.Relationship, contact.Phone))
	}

	return fmt.Sprintf("%s; Phone: %s; Email: %s; Address: %s; Emergency Contacts: [%s]",
		person.Name,
		person.Phone,
		person.Email,
		person.Address,
		strings.Join(contacts, ", "),
	)
}

func FormatEmergencyContact(contact models.EmergencyContact) string {
	return fmt.Sprintf("%s; Phone: %s; Relationship: %s", contact.Name, contact.Phone, contact.Relationship)
}
