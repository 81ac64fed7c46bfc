package commands

import (
	"fmt"
	"testing"

	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/Daskott/kontacts/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	m := model.NewModelManager(testutil.Alice())
	benson := testutil.Benson()

	result, err := NewAddCommand(benson).Execute(m)
	require.Nil(t, err)
	assert.Equal(t, fmt.Sprintf(MessageAddSuccess, messages.Format(benson)), result.Feedback)
	assert.Len(t, m.Persons(), 2)
	assert.NotSame(t, benson, m.Persons()[1])

	_, err = NewAddCommand(testutil.Benson()).Execute(m)
	assertCommandError(t, err, MessageDuplicatePerson)
	assert.Len(t, m.Persons(), 2)
}

func TestListCommand(t *testing.T) {
	m := model.NewModelManager(testutil.TypicalPersons()...)
	m.UpdateFilteredPersonList(model.NameContainsKeywords("Alice"))

	result, err := ListCommand{}.Execute(m)
	require.Nil(t, err)
	assert.Equal(t, MessageListSuccess, result.Feedback)
	assert.Len(t, m.FilteredPersonList(), 3)
}

func TestFindCommand(t *testing.T) {
	m := model.NewModelManager(testutil.TypicalPersons()...)

	result, err := NewFindCommand("kurz", "Meier").Execute(m)
	require.Nil(t, err)
	assert.Equal(t, "2 persons listed!", result.Feedback)
	assert.Equal(t, "Benson Meier", m.FilteredPersonList()[0].Name)

	result, err = NewFindCommand("nobody").Execute(m)
	require.Nil(t, err)
	assert.Equal(t, "0 persons listed!", result.Feedback)
}

func TestClearCommand(t *testing.T) {
	m := model.NewModelManager(testutil.TypicalPersons()...)

	result, err := ClearCommand{}.Execute(m)
	require.Nil(t, err)
	assert.Equal(t, MessageClearSuccess, result.Feedback)
	assert.Equal(t, []*models.Person{}, m.Persons())
}

func TestCommandErrorUnwrap(t *testing.T) {
	err := &CommandError{Message: "oops", Err: models.ErrInvalidEmergencyContactIndex}

	assert.Equal(t, "oops", err.Error())
	assert.ErrorIs(t, err, models.ErrInvalidEmergencyContactIndex)
	assert.Nil(t, NewCommandError("oops").Unwrap())
}
