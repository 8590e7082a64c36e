package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	endpoint    string
	serviceName string
	apiKey      string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wmsreport",
	Short: "Report on batch workflow runs submitted to a WMS",
	Long:  `wmsreport summarizes the execution status of workflow runs submitted to a workload-management service, as a one-line-per-run table or a detailed per-stage breakdown.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wmsreport/config)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "WMS API URL (default from config)")
	rootCmd.PersistentFlags().StringVar(&serviceName, "service", "", "WMS backend to query (default from config or \"rest\")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".wmsreport/config" (without extension)
		configDir := filepath.Join(home, ".wmsreport")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Bind specific environment variables
	viper.BindEnv("api_key", "WMS_API_KEY")
	viper.BindEnv("endpoint", "WMS_SERVICE_URL")
	viper.BindEnv("service", "WMS_SERVICE")

	if err := viper.ReadInConfig(); err == nil {
		log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	}

	// Flags win over config and environment
	if endpoint == "" {
		endpoint = viper.GetString("endpoint")
	}
	if serviceName == "" {
		serviceName = viper.GetString("service")
	}
	if apiKey == "" {
		apiKey = viper.GetString("api_key")
	}

	// Set default if still empty
	if serviceName == "" {
		serviceName = "rest"
	}
}

// GetEndpoint returns the configured WMS API URL with trailing slashes removed
func GetEndpoint() string {
	return strings.TrimRight(endpoint, "/")
}

// GetServiceName returns the configured WMS backend name
func GetServiceName() string {
	return serviceName
}

// GetAPIKey returns the configured API key
func GetAPIKey() string {
	return apiKey
}
