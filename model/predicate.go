package model

import (
	"strings"

	"github.com/Daskott/kontacts/models"
)

// Predicate decides which persons are displayed
type Predicate func(person *models.Person) bool

func ShowAllPersons(*models.Person) bool {
	return true
}

// NameContainsKeywords matches persons with a name containing any of keywords as a whole word, ignoring case
func NameContainsKeywords(keywords ...string) Predicate {
	return func(person *models.Person) bool {
		for _, word := range strings.Fields(person.Name) {
			for _, keyword := range keywords {
				if strings.EqualFold(word, keyword) {
					return true
				}
			}
		}
		return false
	}
}
