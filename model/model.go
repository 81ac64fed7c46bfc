package model

import (
	"errors"

	"github.com/Daskott/kontacts/models"
)

var (
	ErrPersonNotFound  = errors.New("person does not exist in the address book")
	ErrDuplicatePerson = errors.New("person already exists in the address book")
)

// Model is the API of the address book the commands run against.
// Persons are identified by their ID, never by the pointer held.
type Model interface {
	// FilteredPersonList returns the persons currently displayed, in display order
	FilteredPersonList() []*models.Person

	// UpdateFilteredPersonList changes what FilteredPersonList returns
	UpdateFilteredPersonList(predicate Predicate)

	// Persons returns every person in the address book
	Persons() []*models.Person

	// SetPersons replaces the content of the address book
	SetPersons(persons []*models.Person) error

	// HasPerson reports whether a person with the same identity as 'person' exists
	HasPerson(person *models.Person) bool

	AddPerson(person *models.Person) error

	// DeletePerson removes the person whose ID matches target's
	DeletePerson(target *models.Person) error

	// SetPerson replaces the person whose ID matches target's with edited
	SetPerson(target, edited *models.Person) error
}

// ModelManager is an in-memory Model. It is not safe for concurrent use,
// callers run one command at a time.
type ModelManager struct {
	persons   []*models.Person
	index     map[string]int
	predicate Predicate
}

var _ Model = (*ModelManager)(nil)

func NewModelManager(persons ...*models.Person) *ModelManager {
	manager := &ModelManager{predicate: ShowAllPersons}
	if err := manager.SetPersons(persons); err != nil {
		// Only possible with duplicate IDs in 'persons'
		panic(err)
	}

	return manager
}

func (m *ModelManager) FilteredPersonList() []*models.Person {
	filtered := []*models.Person{}
	for _, person := range m.persons {
		if m.predicate(person) {
			filtered = append(filtered, person)
		}
	}

	return filtered
}

func (m *ModelManager) UpdateFilteredPersonList(predicate Predicate) {
	if predicate == nil {
		predicate = ShowAllPersons
	}
	m.predicate = predicate
}

func (m *ModelManager) Persons() []*models.Person {
	return append([]*models.Person{}, m.persons...)
}

func (m *ModelManager) SetPersons(persons []*models.Person) error {
	index := make(map[string]int, len(persons))
	for i, person := range persons {
		if _, ok := index[person.ID]; ok {
			return ErrDuplicatePerson
		}
		index[person.ID] = i
	}

	m.persons = append([]*models.Person{}, persons...)
	m.index = index
	return nil
}

func (m *ModelManager) HasPerson(person *models.Person) bool {
	for _, p := range m.persons {
		if p.IsSamePerson(person) {
			return true
		}
	}

	return false
}

func (m *ModelManager) AddPerson(person *models.Person) error {
	if _, ok := m.index[person.ID]; ok {
		return ErrDuplicatePerson
	}

	m.index[person.ID] = len(m.persons)
	m.persons = append(m.persons, person)

	// Show the new person, even if it doesn't match the current filter
	m.predicate = ShowAllPersons
	return nil
}

func (m *ModelManager) DeletePerson(target *models.Person) error {
	i, ok := m.index[target.ID]
	if !ok {
		return ErrPersonNotFound
	}

	m.persons = append(m.persons[:i:i], m.persons[i+1:]...)

	delete(m.index, target.ID)
	for j := i; j < len(m.persons); j++ {
		m.index[m.persons[j].ID] = j
	}

	return nil
}

func (m *ModelManager) SetPerson(target, edited *models.Person) error {
	i, ok := m.index[target.ID]
	if !ok {
		return ErrPersonNotFound
	}

	if edited.ID != target.ID {
		if _, exists := m.index[edited.ID]; exists {
			return ErrDuplicatePerson
		}
		delete(m.index, target.ID)
		m.index[edited.ID] = i
	}

	m.persons[i] = edited
	return nil
}
