/*
Copyright © 2021 Edmond Cotterell

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"strings"

	"github.com/Daskott/kontacts/colors"
	"github.com/Daskott/kontacts/logic"
	"github.com/Daskott/kontacts/logic/commands"
	"github.com/Daskott/kontacts/messages"
	"github.com/Daskott/kontacts/models"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		createAddCmd(),
		createListCmd(),
		createFindCmd(),
		createDeleteCmd(),
		createClearCmd(),
	)
}

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add n/NAME p/PHONE e/EMAIL a/ADDRESS ec/NAME;PHONE;RELATIONSHIP...",
		Short: "Adds a person to your contacts",
		Long:  commands.AddUsage,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, commands.AddCommandWord, args, false)
		},
	}
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists all persons with their emergency contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, commands.ListCommandWord, args, true)
		},
	}
}

func createFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find KEYWORD [MORE_KEYWORDS]...",
		Short: "Lists persons whose name contains any of the keywords",
		Long:  commands.FindUsage,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, commands.FindCommandWord, args, true)
		},
	}
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX [EMERGENCY_CONTACT_INDEX]",
		Short: "Deletes a person, or one of their emergency contacts",
		Long: commands.DeleteUsage + `

INDEX refers to the person list shown by 'kontacts list'. A person's last
emergency contact can't be deleted.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, commands.DeleteCommandWord, args, false)
		},
	}
}

func createClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Deletes every person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, commands.ClearCommandWord, args, false)
		},
	}
}

// runCommand executes '<commandWord> <args>' & prints the feedback, followed
// by the displayed persons when showList is set
func runCommand(cmd *cobra.Command, commandWord string, args []string, showList bool) error {
	cmd.SilenceUsage = true

	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.close()

	return executeAndPrint(cmd, application.manager, strings.Join(append([]string{commandWord}, args...), " "), showList)
}

func executeAndPrint(cmd *cobra.Command, manager *logic.Manager, commandText string, showList bool) error {
	result, err := manager.Execute(commandText)
	if logic.IsUserError(err) {
		return formattedError("%s", err.Error())
	}
	if err != nil {
		return err
	}

	cmd.Println(colors.Success(result.Feedback))

	if showList {
		printPersons(cmd, manager.FilteredPersonList())
	}

	return nil
}

func printPersons(cmd *cobra.Command, persons []*models.Person) {
	for i, person := range persons {
		cmd.Printf("\n%s %s\n", colors.Index(i+1), colors.Title(person.Name))
		cmd.Printf("   Phone: %s  Email: %s\n", person.Phone, person.Email)
		cmd.Printf("   Address: %s\n", person.Address)

		cmd.Println("   Emergency contacts:")
		for j, contact := range person.EmergencyContacts {
			cmd.Printf("     %s %s\n", colors.SubIndex(j+1), messages.FormatEmergencyContact(contact))
		}
	}
}
