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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daskott/kontacts/backup"
	"github.com/Daskott/kontacts/server"
	"github.com/Daskott/kontacts/server/auth"
	"github.com/spf13/cobra"
)

const defaultTokenTTL = 30 * 24 * time.Hour

func init() {
	rootCmd.AddCommand(createServerCmd(), createBackupCmd(), createTokenCmd())
}

func createServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start a kontacts server",
		Long: `Serves your contacts over http, & periodically backs up the contacts
database to google cloud storage when 'google.storage.enableBackup' is set`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			application, err := newApp()
			if err != nil {
				return err
			}

			if application.config.Server.AuthSecret == "" {
				application.close()
				return formattedError("must set 'server.authSecret' in config to start the server")
			}

			var scheduler *backup.Scheduler
			if application.config.Google.Storage.EnableBackup {
				scheduler, err = newBackupScheduler(application)
				if err != nil {
					application.close()
					return err
				}
			}

			// the server closes the storage on shutdown
			server.Start(application.config, application.manager, application.storage, scheduler)
			return nil
		},
	}
}

func createBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Uploads the contacts database to google cloud storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.close()

			if application.config.Google.Storage.Bucket == "" {
				return formattedError("must set 'google.storage.bucket' in config to back up contacts")
			}

			scheduler, err := newBackupScheduler(application)
			if err != nil {
				return err
			}

			err = scheduler.BackupNow(context.Background())
			if err != nil {
				return err
			}

			cmd.Printf("Contacts backed up to %s\n", application.config.Google.Storage.Bucket)
			return nil
		},
	}
}

func createTokenCmd() *cobra.Command {
	var expiresIn time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Prints an access token for the kontacts server",
		Long: `Prints a token signed with 'server.authSecret'. Send it with every request to the server
as an 'Authorization: Bearer <token>' header`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			application, err := newApp()
			if err != nil {
				return err
			}
			defer application.close()

			token, err := auth.EncodeJWT(auth.NewTokenClaims("kontacts-cli", expiresIn), application.config.Server.AuthSecret)
			if errors.Is(err, auth.ErrNoSecret) {
				return formattedError("must set 'server.authSecret' in config to create a token")
			}
			if err != nil {
				return err
			}

			cmd.Println(token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&expiresIn, "expires-in", defaultTokenTTL, "how long the token stays valid")

	return cmd
}

func newBackupScheduler(application *app) (*backup.Scheduler, error) {
	if application.storage.Path() == "" {
		return nil, fmt.Errorf("backups need 'storage.type' to be sqlite")
	}

	uploader, err := backup.NewGStorage(context.Background(), application.config.Google.ApplicationCredentials)
	if err != nil {
		return nil, err
	}

	return backup.NewScheduler(
		uploader,
		application.config.Google.Storage,
		application.storage.Path(),
		application.config.Server.TimeZone,
	), nil
}
