package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Daskott/kontacts/logic/commands"
	"github.com/Daskott/kontacts/models"
)

const (
	prefixName             = "n/"
	prefixPhone            = "p/"
	prefixEmail            = "e/"
	prefixAddress          = "a/"
	prefixEmergencyContact = "ec/"
)

// 'ec' comes first so "ec/" is never read as "e/"
var prefixPattern = regexp.MustCompile(`(?:^|\s)(ec/|n/|p/|e/|a/)`)

// tokenize maps each prefix to the values that follow it, in order. The text
// before the first prefix is returned as the preamble.
func tokenize(args string) (string, map[string][]string) {
	values := map[string][]string{}
	matches := prefixPattern.FindAllStringSubmatchIndex(args, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(args), values
	}

	preamble := strings.TrimSpace(args[:matches[0][0]])
	for i, match := range matches {
		prefix := args[match[2]:match[3]]

		end := len(args)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		values[prefix] = append(values[prefix], strings.TrimSpace(args[match[3]:end]))
	}

	return preamble, values
}

func parseAdd(args string) (commands.Command, error) {
	preamble, values := tokenize(args)
	if preamble != "" {
		return nil, invalidFormat(commands.AddUsage, nil)
	}

	for _, prefix := range []string{prefixName, prefixPhone, prefixEmail, prefixAddress} {
		if len(values[prefix]) != 1 {
			return nil, invalidFormat(commands.AddUsage, nil)
		}
	}

	if len(values[prefixEmergencyContact]) == 0 {
		return nil, invalidFormat(commands.AddUsage, nil)
	}

	contacts := []models.EmergencyContact{}
	for _, value := range values[prefixEmergencyContact] {
		contact, err := parseEmergencyContact(value)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	person := models.NewPerson(
		values[prefixName][0],
		values[prefixPhone][0],
		values[prefixEmail][0],
		values[prefixAddress][0],
		contacts...,
	)

	if err := person.Validate(); err != nil {
		return nil, newParseError(strings.Join(models.ValidationMessages(err), "\n"), err)
	}

	return commands.NewAddCommand(person), nil
}

// parseEmergencyContact parses "NAME;PHONE;RELATIONSHIP"
func parseEmergencyContact(value string) (models.EmergencyContact, error) {
	parts := strings.Split(value, ";")
	if len(parts) != 3 {
		return models.EmergencyContact{}, newParseError(
			fmt.Sprintf("Emergency contact \"%s\" should look like NAME;PHONE;RELATIONSHIP", value), nil)
	}

	return models.NewEmergencyContact(
		strings.TrimSpace(parts[0]),
		strings.TrimSpace(parts[1]),
		strings.TrimSpace(parts[2]),
	), nil
}
