package commands

import "github.com/Daskott/kontacts/model"

const (
	ListCommandWord = "list"

	MessageListSuccess = "Listed all persons"
)

type ListCommand struct{}

var _ Command = ListCommand{}

func (ListCommand) Execute(m model.Model) (*CommandResult, error) {
	requireModel(m)
	m.UpdateFilteredPersonList(model.ShowAllPersons)
	return NewCommandResult(MessageListSuccess), nil
}
