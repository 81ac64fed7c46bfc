package parser

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Daskott/kontacts/logic/commands"
	"github.com/Daskott/kontacts/messages"
)

// ParseError is returned when user input does not follow the expected format
type ParseError struct {
	Message string
	Err     error
}

func newParseError(message string, err error) *ParseError {
	return &ParseError{Message: message, Err: err}
}

func invalidFormat(usage string, err error) *ParseError {
	return newParseError(fmt.Sprintf(messages.MessageInvalidCommandFormat, usage), err)
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AddressBookParser turns raw user input into a command
type AddressBookParser struct{}

func NewAddressBookParser() *AddressBookParser {
	return &AddressBookParser{}
}

func (p *AddressBookParser) ParseCommand(input string) (commands.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, newParseError(messages.MessageUnknownCommand, nil)
	}

	commandWord, args := splitCommandWord(input)

	switch commandWord {
	case commands.DeleteCommandWord:
		return parseDelete(args)
	case commands.AddCommandWord:
		return parseAdd(args)
	case commands.FindCommandWord:
		return parseFind(args)
	case commands.ListCommandWord:
		return commands.ListCommand{}, nil
	case commands.ClearCommandWord:
		return commands.ClearCommand{}, nil
	}

	return nil, newParseError(messages.MessageUnknownCommand, nil)
}

// splitCommandWord splits input on its first run of whitespace, whatever the kind
func splitCommandWord(input string) (string, string) {
	end := strings.IndexFunc(input, unicode.IsSpace)
	if end < 0 {
		return input, ""
	}
	return input[:end], strings.TrimSpace(input[end:])
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.FindUsage, nil)
	}

	return commands.NewFindCommand(keywords...), nil
}
