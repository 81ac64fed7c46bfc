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
	"bufio"
	"strings"

	"github.com/Daskott/kontacts/logic/commands"
	"github.com/spf13/cobra"
)

const exitCommandWord = "exit"

func init() {
	rootCmd.AddCommand(createShellCmd())
}

func createShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Starts an interactive session",
		Long: `Starts an interactive session where commands are typed without the 'kontacts' prefix
e.g. "find alice" followed by "delete 1 2". Unlike one-off commands, the list shown by
'find' is kept between commands, so indexes refer to the last list displayed.

Type 'exit' to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.close()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			cmd.Print("> ")

			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())

				switch {
				case line == exitCommandWord:
					return nil
				case line != "":
					commandWord := strings.Fields(line)[0]
					showList := commandWord == commands.ListCommandWord || commandWord == commands.FindCommandWord

					// Errors are shown & the session goes on
					if err := executeAndPrint(cmd, application.manager, line, showList); err != nil {
						cmd.PrintErrln(err)
					}
				}

				cmd.Print("> ")
			}

			return scanner.Err()
		},
	}
}
