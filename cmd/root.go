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
	"fmt"
	"os"
	"path/filepath"

	"github.com/Daskott/kontacts/colors"
	devConfig "github.com/Daskott/kontacts/dev/config"
	"github.com/Daskott/kontacts/logger"
	"github.com/Daskott/kontacts/logic"
	"github.com/Daskott/kontacts/shared"
	"github.com/Daskott/kontacts/storage"
	"github.com/Daskott/kontacts/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

var (
	cfgFile  string
	isDevEnv bool

	warningLabel = colors.Warning("Warning:")

	// newApp is swapped out in tests
	newApp = loadApp
)

// app is everything a command needs to run
type app struct {
	config  *shared.Config
	storage storage.Storage
	manager *logic.Manager
}

// rootCmd represents the base command when called without any subcommands.
// It is built before any init() runs, so subcommands can be added from any file.
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.Version = fmt.Sprintf("v%s", version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "kontacts",
		Short: `kontacts is a CLI to manage your contacts and their emergency contacts.

Every person is shown with an index, e.g. "kontacts delete 2" deletes the second person listed
and "kontacts delete 2 1" deletes the first emergency contact of that person.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kontacts.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")

	return cmd
}

// close releases the storage, warning when that fails
func (a *app) close() {
	if err := a.storage.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "%s unable to close storage: %v\n", warningLabel, err)
	}
}

// loadApp reads config & opens the storage it points to
func loadApp() (*app, error) {
	config, err := shared.LoadConfig(readConfig())
	if err != nil {
		return nil, err
	}

	if err := logger.SetLevel(config.Log.Level); err != nil {
		return nil, err
	}

	store, err := openStorage(config.Storage)
	if err != nil {
		return nil, err
	}

	manager, err := logic.NewManagerFromStorage(store)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{config: config, storage: store, manager: manager}, nil
}

func openStorage(config shared.StorageConfig) (storage.Storage, error) {
	if config.Type == shared.MEMORY_STORAGE {
		fmt.Fprintf(os.Stderr, "%s contacts are kept in memory and will be lost on exit\n", warningLabel)
		return storage.NewInmemStorage(), nil
	}

	dir := config.Dir
	if dir == "" {
		var err error
		dir, err = defaultStorageDir()
		if err != nil {
			return nil, err
		}
	}

	return storage.NewSqliteStorage(config.PassPhrase, dir)
}

// readConfig reads in config file and ENV variables & returns a single
// '*viper.Viper' config object
func readConfig() *viper.Viper {
	config := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		cobra.CheckErr(err)

		// If config file is not found, create one using the default config
		configFilePath := filepath.Join(configDir, configName)
		_, err = utils.WriteFileIfNotExist(configFilePath, []byte(defaultConfigValue()), 0600)
		cobra.CheckErr(err)

		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	// BIND google.applicationCredentials to GOOGLE_APPLICATION_CREDENTIALS env, so the value doesn't need to be
	// stored in the config, but can be read from the system ENV var.
	// FYI: The env var overrides whatever is in the config file
	config.BindEnv("google.applicationCredentials", "GOOGLE_APPLICATION_CREDENTIALS")
	config.BindEnv("storage.passPhrase", "KONTACTS_PASSPHRASE")
	config.BindEnv("server.authSecret", "KONTACTS_AUTH_SECRET")

	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "%s unable to read config file: %v\n", warningLabel, err)
	}

	return config
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".kontacts.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv {
		configName = "kontacts.dev.yml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
		configDir = filepath.Join(configDir, "dev", "config")
	}

	return configName, configDir, err
}

// defaultStorageDir is 'kontacts' in the home directory, or 'dev' in the current directory in dev mode
func defaultStorageDir() (string, error) {
	folderName := "kontacts"
	rootDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if isDevEnv {
		folderName = "dev"
		rootDir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(rootDir, folderName), nil
}

// defaultConfigValue returns the default content for .kontacts.yaml with a freshly generated
// pass phrase & auth secret
func defaultConfigValue() string {
	return fmt.Sprintf(devConfig.DEFAULT_CONFIG_YML, uuid.NewString(), uuid.NewString())
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Failure(format), a...)
}
