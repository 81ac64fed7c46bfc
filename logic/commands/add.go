package commands

import (
	"fmt"

	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/pkg/errors"
)

const (
	AddCommandWord = "add"

	AddUsage = AddCommandWord + ": Adds a person to the address book.\n" +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS ec/NAME;PHONE;RELATIONSHIP [ec/NAME;PHONE;RELATIONSHIP]...\n" +
		"Example: " + AddCommandWord + " n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2 " +
		"ec/Jane Doe;91234567;Wife"

	MessageAddSuccess      = "New person added: %s"
	MessageDuplicatePerson = "This person already exists in the address book"
)

type AddCommand struct {
	toAdd *models.Person
}

var _ Command = (*AddCommand)(nil)

func NewAddCommand(person *models.Person) *AddCommand {
	return &AddCommand{toAdd: person}
}

func (c *AddCommand) Execute(m model.Model) (*CommandResult, error) {
	requireModel(m)

	if m.HasPerson(c.toAdd) {
		return nil, NewCommandError(MessageDuplicatePerson)
	}

	// Every execution adds its own copy, so the command can be replayed safely
	if err := m.AddPerson(c.toAdd.Clone()); err != nil {
		return nil, errors.Wrap(err, "add person")
	}

	return NewCommandResult(fmt.Sprintf(MessageAddSuccess, messages.Format(c.toAdd))), nil
}
