package commands

import (
	"fmt"
	"strings"

	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
)

const (
	FindCommandWord = "find"

	FindUsage = FindCommandWord + ": Finds all persons whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + FindCommandWord + " alice bob charlie"
)

type FindCommand struct {
	keywords []string
}

var _ Command = (*FindCommand)(nil)

func NewFindCommand(keywords ...string) *FindCommand {
	return &FindCommand{keywords: append([]string{}, keywords...)}
}

func (c *FindCommand) Execute(m model.Model) (*CommandResult, error) {
	requireModel(m)
	m.UpdateFilteredPersonList(model.NameContainsKeywords(c.keywords...))
	return NewCommandResult(fmt.Sprintf(messages.MessagePersonsListedOverview, len(m.FilteredPersonList()))), nil
}

func (c *FindCommand) String() string {
	return fmt.Sprintf("FindCommand{keywords: [%s]}", strings.Join(c.keywords, ", "))
}
