package logic

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/Daskott/kontacts/storage"
	"github.com/Daskott/kontacts/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type failingStorage struct {
	storage.InmemStorage
}

func (s *failingStorage) Save([]*models.Person) error {
	return errDiskFull
}

func TestExecuteSavesResult(t *testing.T) {
	s := storage.NewInmemStorage(testutil.TypicalPersons()...)
	manager, err := NewManagerFromStorage(s)
	require.Nil(t, err)

	result, err := manager.Execute("delete 2")
	require.Nil(t, err)
	assert.Contains(t, result.Feedback, "Deleted Person: Benson Meier")

	saved, err := s.Load()
	require.Nil(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "Alice Pauline", saved[0].Name)
	assert.Equal(t, "Carl Kurz", saved[1].Name)
}

func TestExecuteUsesFilteredList(t *testing.T) {
	manager, err := NewManagerFromStorage(storage.NewInmemStorage(testutil.TypicalPersons()...))
	require.Nil(t, err)

	_, err = manager.Execute("find Carl")
	require.Nil(t, err)
	require.Len(t, manager.FilteredPersonList(), 1)

	result, err := manager.Execute("delete 1 3")
	require.Nil(t, err)
	assert.Equal(t, "Deleted Emergency Contact: George Best; Phone: 94824421; Relationship: Friend", result.Feedback)
	assert.Len(t, manager.FilteredPersonList()[0].EmergencyContacts, 2)
}

func TestExecuteUserErrors(t *testing.T) {
	manager := NewManager(model.NewModelManager(testutil.Benson()), storage.NewInmemStorage())

	cases := []struct {
		description string
		command     string
		expectedMsg string
	}{
		{"Should fail with an unknown command", "remove 1", messages.MessageUnknownCommand},
		{"Should fail with an out of range index", "delete 2", messages.MessageInvalidPersonDisplayedIndex},
		{"Should fail to delete the last emergency contact", "delete 1 1", messages.MessageLastEmergencyContactIndex},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			_, err := manager.Execute(c.command)
			assert.EqualError(t, err, c.expectedMsg)
			assert.True(t, IsUserError(err))
		})
	}
}

func TestExecuteStorageError(t *testing.T) {
	manager := NewManager(model.NewModelManager(testutil.TypicalPersons()...), &failingStorage{})

	_, err := manager.Execute("delete 1")
	assert.ErrorIs(t, err, errDiskFull)
	assert.False(t, IsUserError(err))
}

func TestExecuteSerializesCommands(t *testing.T) {
	persons := []*models.Person{}
	for i := 0; i < 20; i++ {
		persons = append(persons, models.NewPerson(
			fmt.Sprintf("Person %d", i), "12345678", "person@example.com", "Somewhere",
			models.NewEmergencyContact("Contact", "87654321", "Friend"),
		))
	}
	manager := NewManager(model.NewModelManager(persons...), storage.NewInmemStorage())

	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Execute("delete 1")
			assert.Nil(t, err)
		}()
	}
	wg.Wait()

	assert.Empty(t, manager.FilteredPersonList())
}
