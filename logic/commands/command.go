package commands

import "github.com/Daskott/kontacts/model"

// Command is a single user request, run once against a model & then discarded
type Command interface {
	Execute(m model.Model) (*CommandResult, error)
}

// CommandResult holds the feedback shown to the user after a command succeeds
type CommandResult struct {
	Feedback string `json:"feedback"`
}

func NewCommandResult(feedback string) *CommandResult {
	return &CommandResult{Feedback: feedback}
}

// CommandError is returned when a command can't run because of the user's input.
// The model is left untouched & the user may retry with corrected input.
type CommandError struct {
	Message string
	Err     error
}

func NewCommandError(message string) *CommandError {
	return &CommandError{Message: message}
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func requireModel(m model.Model) {
	if m == nil {
		panic("commands: nil model")
	}
}
