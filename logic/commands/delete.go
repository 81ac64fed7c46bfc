package commands

import (
	"fmt"

	"github.com/Daskott/kontacts/index"
	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/model"
	"github.com/Daskott/kontacts/models"
	"github.com/pkg/errors"
)

const (
	DeleteCommandWord = "delete"

	DeleteUsage = DeleteCommandWord +
		": Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[EMERGENCY CONTACT INDEX (must be a positive integer)]\n" +
		"Example: " + DeleteCommandWord + " 1 1"

	MessageDeletePersonSuccess           = "Deleted Person: %s"
	MessageDeleteEmergencyContactSuccess = "Deleted Emergency Contact: %s"
)

// DeleteCommandDescriptor holds the optional arguments of a delete command.
// Without an emergency contact index the whole person is deleted.
type DeleteCommandDescriptor struct {
	emergencyContactIndex *index.Index
}

func NewDeleteCommandDescriptor() *DeleteCommandDescriptor {
	return &DeleteCommandDescriptor{}
}

func (d *DeleteCommandDescriptor) Copy() *DeleteCommandDescriptor {
	descriptor := NewDeleteCommandDescriptor()
	descriptor.SetEmergencyContactIndex(d.emergencyContactIndex)
	return descriptor
}

func (d *DeleteCommandDescriptor) EmergencyContactIndex() (index.Index, bool) {
	if d.emergencyContactIndex == nil {
		return index.Index{}, false
	}
	return *d.emergencyContactIndex, true
}

// SetEmergencyContactIndex stores a copy of idx, a nil idx clears it
func (d *DeleteCommandDescriptor) SetEmergencyContactIndex(idx *index.Index) {
	if idx == nil {
		d.emergencyContactIndex = nil
		return
	}

	value := *idx
	d.emergencyContactIndex = &value
}

func (d *DeleteCommandDescriptor) Equal(other *DeleteCommandDescriptor) bool {
	if d == other {
		return true
	}

	if d == nil || other == nil {
		return false
	}

	idx, ok := d.EmergencyContactIndex()
	otherIdx, otherOk := other.EmergencyContactIndex()
	return ok == otherOk && idx == otherIdx
}

func (d *DeleteCommandDescriptor) String() string {
	idx, ok := d.EmergencyContactIndex()
	if !ok {
		return "{emergencyContactIndex: none}"
	}
	return fmt.Sprintf("{emergencyContactIndex: %v}", idx)
}

// DeleteCommand deletes a person, or one of their emergency contacts, using
// the indexes shown in the displayed person list.
type DeleteCommand struct {
	targetIndex index.Index
	descriptor  *DeleteCommandDescriptor
}

var _ Command = (*DeleteCommand)(nil)

func NewDeleteCommand(targetIndex index.Index, descriptor *DeleteCommandDescriptor) *DeleteCommand {
	if descriptor == nil {
		descriptor = NewDeleteCommandDescriptor()
	}

	return &DeleteCommand{targetIndex: targetIndex, descriptor: descriptor.Copy()}
}

func (c *DeleteCommand) Execute(m model.Model) (*CommandResult, error) {
	requireModel(m)
	lastShownList := m.FilteredPersonList()

	if c.targetIndex.ZeroBased() >= len(lastShownList) {
		return nil, NewCommandError(messages.MessageInvalidPersonDisplayedIndex)
	}

	personToDelete := lastShownList[c.targetIndex.ZeroBased()]

	if contactIndex, ok := c.descriptor.EmergencyContactIndex(); ok {
		return c.deleteEmergencyContact(m, personToDelete, contactIndex)
	}

	if err := m.DeletePerson(personToDelete); err != nil {
		return nil, errors.Wrap(err, "delete person")
	}

	return NewCommandResult(fmt.Sprintf(MessageDeletePersonSuccess, messages.Format(personToDelete))), nil
}

// deleteEmergencyContact removes a contact from a copy of person & swaps the copy into
// the model. Every check runs before the model is touched.
func (c *DeleteCommand) deleteEmergencyContact(
	m model.Model,
	person *models.Person,
	contactIndex index.Index) (*CommandResult, error) {

	if person.HasOnlyOneEmergencyContact() {
		return nil, NewCommandError(messages.MessageLastEmergencyContactIndex)
	}

	edited := person.Clone()
	deletedContact, err := edited.GetAndRemoveEmergencyContact(contactIndex)
	if errors.Is(err, models.ErrInvalidEmergencyContactIndex) {
		return nil, &CommandError{Message: messages.MessageInvalidEmergencyContactDisplayedIndex, Err: err}
	}
	if err != nil {
		return nil, err
	}

	// 'person' came from the model's own list, so it can only be missing if the model is broken
	if err := m.SetPerson(person, edited); err != nil {
		return nil, errors.Wrap(err, "update person")
	}

	return NewCommandResult(
		fmt.Sprintf(MessageDeleteEmergencyContactSuccess, messages.FormatEmergencyContact(deletedContact))), nil
}

func (c *DeleteCommand) Equal(other *DeleteCommand) bool {
	if c == other {
		return true
	}

	if c == nil || other == nil {
		return false
	}

	return c.targetIndex == other.targetIndex && c.descriptor.Equal(other.descriptor)
}

func (c *DeleteCommand) String() string {
	return fmt.Sprintf("DeleteCommand{targetIndex: %v, descriptor: %v}", c.targetIndex, c.descriptor)
}
