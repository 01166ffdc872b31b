package main

import (
	"fmt"
	"os"

	"github.com/carestack/colman/pkg/ui"
	"github.com/carestack/colman/pkg/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a collection file against the Postman v2.1 schema subset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("collection")
		if len(args) == 1 {
			path = args[0]
		}

		issues, err := validate.File(path)
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			ui.Successf(os.Stdout, "✅ %s is a valid collection", path)
			return nil
		}

		ui.Headerf(os.Stderr, "Schema issues in %s:", path)
		for _, issue := range issues {
			ui.Errorf(os.Stderr, "  %s", issue)
		}
		return fmt.Errorf("%s: %d schema issue(s)", path, len(issues))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
