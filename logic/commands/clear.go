package commands

import (
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
)

const (
	ClearCommandWord = "clear"

	MessageClearSuccess = "Address book has been cleared!"
)

type ClearCommand struct{}

var _ Command = ClearCommand{}

func (ClearCommand) Execute(m model.Model) (*CommandResult, error) {
	requireModel(m)
	if err := m.SetPersons([]*models.Person{}); err != nil {
		return nil, err
	}
	return NewCommandResult(MessageClearSuccess), nil
}
