package storage

import "github.com/Daskott/kontacts/models"

// Storage persists the persons of the address book, in display order
type Storage interface {
	Load() ([]*models.Person, error)
	Save(persons []*models.Person) error

	// Path is the file backing the storage, empty if there is none
	Path() string

	Close() error
}
