package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "colman",
		Short: "colman - maintain the CareStack API Postman collection",
		Long: `colman keeps the CareStack hospital API Postman collection up to date.
Run it with no arguments to append the built-in endpoint folders (Billing,
Appointments, Lab Reports, Medical History, Telemedicine) to the collection
file in the current directory, exactly like the legacy add-folders script.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if it exists (optional, warn if malformed)
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load .env file: %v\n", err)
			}

			// Legacy surface: augment the configured collection in place,
			// no prompt, same as the original script.
			return runAugment(viper.GetString("collection"), augmentParams{
				assumeYes: true,
				indent:    viper.GetInt("indent"),
			})
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .colman/config.json)")
	rootCmd.SilenceUsage = true
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".colman")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
	}

	viper.SetDefault("collection", "postman-collection.json")
	viper.SetDefault("indent", 2)

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
