package logic

import (
	"sync"

	"github.com/Daskott/kontacts/logger"
	"github.com/Daskott/kontacts/logic/commands"
	"github.com/Daskott/kontacts/logic/parser"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/Daskott/kontacts/storage"
	"github.com/pkg/errors"
)

var logg = logger.NewLogger()

// Manager runs user commands against the model & persists the result.
// Commands run one at a time, whoever the caller is.
type Manager struct {
	mu      sync.Mutex
	model   model.Model
	storage storage.Storage
	parser  *parser.AddressBookParser
}

func NewManager(m model.Model, s storage.Storage) *Manager {
	return &Manager{model: m, storage: s, parser: parser.NewAddressBookParser()}
}

// NewManagerFromStorage builds a model out of what is saved in 's'
func NewManagerFromStorage(s storage.Storage) (*Manager, error) {
	persons, err := s.Load()
	if err != nil {
		return nil, err
	}

	m := model.NewModelManager()
	if err := m.SetPersons(persons); err != nil {
		return nil, errors.Wrap(err, "invalid data in storage")
	}

	return NewManager(m, s), nil
}

// Execute parses & runs commandText. User errors are returned as
// *commands.CommandError or *parser.ParseError.
func (l *Manager) Execute(commandText string) (*commands.CommandResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	logg.Debugf("Executing command: %q", commandText)

	command, err := l.parser.ParseCommand(commandText)
	if err != nil {
		return nil, err
	}

	return l.execute(command)
}

// ExecuteCommand runs an already built command
func (l *Manager) ExecuteCommand(command commands.Command) (*commands.CommandResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	logg.Debugf("Executing command: %v", command)
	return l.execute(command)
}

func (l *Manager) execute(command commands.Command) (*commands.CommandResult, error) {
	result, err := command.Execute(l.model)
	if err != nil {
		return nil, err
	}

	if err := l.storage.Save(l.model.Persons()); err != nil {
		return nil, errors.Wrap(err, "could not save address book")
	}

	return result, nil
}

// FilteredPersonList returns the persons displayed after the last command
func (l *Manager) FilteredPersonList() []*models.Person {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.FilteredPersonList()
}

// IsUserError reports whether err was caused by the user's input rather than the application
func IsUserError(err error) bool {
	var commandErr *commands.CommandError
	var parseErr *parser.ParseError
	return errors.As(err, &commandErr) || errors.As(err, &parseErr)
}
