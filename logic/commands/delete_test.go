package commands

import (
	"fmt"
	"testing"

	"github.com/Daskott/kontacts/index"
	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/Daskott/kontacts/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// modelSpy records the persons passed to SetPerson
type modelSpy struct {
	*model.ModelManager
	setPersonCalls [][2]*models.Person
}

func (spy *modelSpy) SetPerson(target, edited *models.Person) error {
	spy.setPersonCalls = append(spy.setPersonCalls, [2]*models.Person{target, edited})
	return spy.ModelManager.SetPerson(target, edited)
}

func oneBased(t *testing.T, n int) index.Index {
	idx, err := index.FromOneBased(n)
	require.Nil(t, err)
	return idx
}

func contactDescriptor(t *testing.T, n int) *DeleteCommandDescriptor {
	idx := oneBased(t, n)
	descriptor := NewDeleteCommandDescriptor()
	descriptor.SetEmergencyContactIndex(&idx)
	return descriptor
}

// snapshot deep copies the persons of m, so later mutations can't leak into it
func snapshot(m model.Model) []*models.Person {
	persons := []*models.Person{}
	for _, person := range m.Persons() {
		persons = append(persons, person.Clone())
	}
	return persons
}

func assertCommandError(t *testing.T, err error, expectedMsg string) {
	var commandErr *CommandError
	require.ErrorAs(t, err, &commandErr)
	assert.Equal(t, expectedMsg, commandErr.Message)
}

func TestDeletePerson(t *testing.T) {
	persons := testutil.TypicalPersons()
	m := model.NewModelManager(persons...)

	result, err := NewDeleteCommand(oneBased(t, 2), nil).Execute(m)
	require.Nil(t, err)

	assert.Equal(t, fmt.Sprintf(MessageDeletePersonSuccess, messages.Format(persons[1])), result.Feedback)
	assert.Equal(t, []*models.Person{persons[0], persons[2]}, m.Persons())
}

func TestDeletePersonFromFilteredList(t *testing.T) {
	persons := testutil.TypicalPersons()
	m := model.NewModelManager(persons...)
	m.UpdateFilteredPersonList(model.NameContainsKeywords("Carl"))

	result, err := NewDeleteCommand(oneBased(t, 1), NewDeleteCommandDescriptor()).Execute(m)
	require.Nil(t, err)

	assert.Contains(t, result.Feedback, "Carl Kurz")
	assert.Equal(t, []*models.Person{persons[0], persons[1]}, m.Persons())
	assert.Empty(t, m.FilteredPersonList())
}

func TestDeletePersonInvalidIndex(t *testing.T) {
	cases := []struct {
		description string
		filter      model.Predicate
		target      int
	}{
		{"Should fail when index is past the end of the list", nil, 5},
		{"Should fail when index equals the list size plus one", nil, 4},
		{"Should fail when index is outside the filtered list", model.NameContainsKeywords("Alice"), 2},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			m := model.NewModelManager(testutil.TypicalPersons()...)
			m.UpdateFilteredPersonList(c.filter)
			before := snapshot(m)

			_, err := NewDeleteCommand(oneBased(t, c.target), nil).Execute(m)
			assertCommandError(t, err, messages.MessageInvalidPersonDisplayedIndex)

			if diff := cmp.Diff(before, m.Persons()); diff != "" {
				t.Errorf("Expected model to be unchanged (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteLastEmergencyContact(t *testing.T) {
	benson := testutil.Benson()
	m := &modelSpy{ModelManager: model.NewModelManager(benson)}
	before := snapshot(m)

	// repeating the failing command fails the same way & changes nothing
	for i := 0; i < 2; i++ {
		_, err := NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 1)).Execute(m)
		assertCommandError(t, err, messages.MessageLastEmergencyContactIndex)
	}

	assert.Empty(t, m.setPersonCalls)
	if diff := cmp.Diff(before, m.Persons()); diff != "" {
		t.Errorf("Expected model to be unchanged (-want +got):\n%s", diff)
	}
}

func TestDeleteLastEmergencyContactIsCheckedBeforeContactIndex(t *testing.T) {
	m := model.NewModelManager(testutil.Benson())

	_, err := NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 9)).Execute(m)
	assertCommandError(t, err, messages.MessageLastEmergencyContactIndex)
}

func TestDeleteEmergencyContact(t *testing.T) {
	alice := testutil.Alice()
	m := &modelSpy{ModelManager: model.NewModelManager(alice)}
	bob, carol := alice.EmergencyContacts[0], alice.EmergencyContacts[1]

	result, err := NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 2)).Execute(m)
	require.Nil(t, err)

	assert.Equal(t, fmt.Sprintf(MessageDeleteEmergencyContactSuccess, messages.FormatEmergencyContact(carol)), result.Feedback)
	assert.Equal(t, "Deleted Emergency Contact: Carol Pauline; Phone: 95352563; Relationship: Mother", result.Feedback)

	updated := m.Persons()[0]
	assert.Equal(t, alice.ID, updated.ID)
	assert.Equal(t, []models.EmergencyContact{bob}, updated.EmergencyContacts)

	require.Len(t, m.setPersonCalls, 1)
	assert.Same(t, alice, m.setPersonCalls[0][0])
	assert.Same(t, updated, m.setPersonCalls[0][1])
	assert.NotSame(t, alice, updated, "Expected the model to receive a new person value")
}

func TestDeleteEmergencyContactKeepsOrder(t *testing.T) {
	carl := testutil.Carl()
	m := model.NewModelManager(testutil.Alice(), carl)
	elle, george := carl.EmergencyContacts[0], carl.EmergencyContacts[2]

	_, err := NewDeleteCommand(oneBased(t, 2), contactDescriptor(t, 2)).Execute(m)
	require.Nil(t, err)

	assert.Equal(t, []models.EmergencyContact{elle, george}, m.Persons()[1].EmergencyContacts)
	assert.Len(t, m.Persons()[0].EmergencyContacts, 2, "Expected other persons to be untouched")
}

func TestDeleteEmergencyContactInvalidIndex(t *testing.T) {
	m := &modelSpy{ModelManager: model.NewModelManager(testutil.TypicalPersons()...)}
	before := snapshot(m)

	_, err := NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 3)).Execute(m)
	assertCommandError(t, err, messages.MessageInvalidEmergencyContactDisplayedIndex)
	assert.ErrorIs(t, err, models.ErrInvalidEmergencyContactIndex)

	assert.Empty(t, m.setPersonCalls)
	if diff := cmp.Diff(before, m.Persons()); diff != "" {
		t.Errorf("Expected model to be unchanged (-want +got):\n%s", diff)
	}
}

func TestDeleteWithNilModelPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDeleteCommand(oneBased(t, 1), nil).Execute(nil)
	})
}

func TestDeleteCommandCopiesDescriptor(t *testing.T) {
	descriptor := contactDescriptor(t, 1)
	command := NewDeleteCommand(oneBased(t, 1), descriptor)

	descriptor.SetEmergencyContactIndex(nil)

	idx, ok := command.descriptor.EmergencyContactIndex()
	assert.True(t, ok)
	assert.Equal(t, 0, idx.ZeroBased())
}

func TestDeleteCommandEqual(t *testing.T) {
	first := NewDeleteCommand(oneBased(t, 1), nil)
	firstWithContact := NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 2))

	assert.True(t, first.Equal(first))
	assert.True(t, first.Equal(NewDeleteCommand(oneBased(t, 1), NewDeleteCommandDescriptor())))
	assert.True(t, firstWithContact.Equal(NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 2))))

	assert.False(t, first.Equal(NewDeleteCommand(oneBased(t, 2), nil)))
	assert.False(t, first.Equal(firstWithContact))
	assert.False(t, first.Equal(nil))
}

func TestDeleteCommandString(t *testing.T) {
	assert.Equal(t,
		"DeleteCommand{targetIndex: 1, descriptor: {emergencyContactIndex: 2}}",
		NewDeleteCommand(oneBased(t, 1), contactDescriptor(t, 2)).String(),
	)
	assert.Equal(t,
		"DeleteCommand{targetIndex: 3, descriptor: {emergencyContactIndex: none}}",
		NewDeleteCommand(oneBased(t, 3), nil).String(),
	)
}

func TestDeleteCommandDescriptor(t *testing.T) {
	descriptor := NewDeleteCommandDescriptor()
	_, ok := descriptor.EmergencyContactIndex()
	assert.False(t, ok, "Expected a new descriptor to have no emergency contact index")

	idx := oneBased(t, 3)
	descriptor.SetEmergencyContactIndex(&idx)
	idx = oneBased(t, 5)

	got, ok := descriptor.EmergencyContactIndex()
	assert.True(t, ok)
	assert.Equal(t, 3, got.OneBased(), "Expected descriptor to keep its own copy of the index")

	copied := descriptor.Copy()
	assert.True(t, copied.Equal(descriptor))

	copied.SetEmergencyContactIndex(nil)
	assert.False(t, copied.Equal(descriptor))
	assert.True(t, copied.Equal(NewDeleteCommandDescriptor()))

	_, ok = copied.EmergencyContactIndex()
	assert.False(t, ok)
}
