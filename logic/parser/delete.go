package parser

import (
	"strings"

	"github.com/Daskott/kontacts/index"
	"github.com/Daskott/kontacts/logic/commands"
)

// parseDelete parses the arguments of 'delete INDEX [EMERGENCY_CONTACT_INDEX]'
func parseDelete(args string) (commands.Command, error) {
	fields := strings.Fields(args)
	if len(fields) < 1 || len(fields) > 2 {
		return nil, invalidFormat(commands.DeleteUsage, nil)
	}

	targetIndex, err := index.Parse(fields[0])
	if err != nil {
		return nil, invalidFormat(commands.DeleteUsage, err)
	}

	descriptor := commands.NewDeleteCommandDescriptor()
	if len(fields) == 2 {
		contactIndex, err := index.Parse(fields[1])
		if err != nil {
			return nil, invalidFormat(commands.DeleteUsage, err)
		}
		descriptor.SetEmergencyContactIndex(&contactIndex)
	}

	return commands.NewDeleteCommand(targetIndex, descriptor), nil
}
