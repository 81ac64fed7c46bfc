package storage

import (
	"sync"

	"github.com/Daskott/kontacts/models"
)

// InmemStorage keeps a private copy of the last saved persons in memory
type InmemStorage struct {
	mu      sync.Mutex
	persons []*models.Person
}

var _ Storage = (*InmemStorage)(nil)

func NewInmemStorage(persons ...*models.Person) *InmemStorage {
	return &InmemStorage{persons: clonePersons(persons)}
}

func (s *InmemStorage) Load() ([]*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePersons(s.persons), nil
}

func (s *InmemStorage) Save(persons []*models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons = clonePersons(persons)
	return nil
}

func (s *InmemStorage) Path() string {
	return ""
}

// Close is a no-op, saved persons stay readable
func (s *InmemStorage) Close() error {
	return nil
}

func clonePersons(persons []*models.Person) []*models.Person {
	clones := make([]*models.Person, 0, len(persons))
	for _, person := range persons {
		clones = append(clones, person.Clone())
	}
	return clones
}
