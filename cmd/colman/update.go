package main

import (
	"fmt"
	"os"

	"github.com/blang/semver"
	"github.com/carestack/colman/pkg/ui"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update colman to the latest version",
	Run: func(cmd *cobra.Command, args []string) {
		if version == "dev" {
			ui.Dimf(os.Stdout, "You are running a development version of colman. Update is not supported.")
			return
		}

		latest, found, err := selfupdate.DetectLatest("carestack/colman")
		if err != nil {
			ui.Errorf(os.Stderr, "Error occurred while detecting version: %v", err)
			return
		}

		v, err := semver.Parse(version)
		if err != nil {
			ui.Errorf(os.Stderr, "Error parsing current version '%s': %v", version, err)
			return
		}

		if !found || latest.Version.LTE(v) {
			ui.Dimf(os.Stdout, "Current version is the latest")
			return
		}

		fmt.Print("Do you want to update to ", latest.Version, "? (y/n): ")
		var input string
		fmt.Scanln(&input)
		if input != "y" {
			return
		}

		exe, err := os.Executable()
		if err != nil {
			ui.Errorf(os.Stderr, "Could not locate executable path")
			return
		}
		if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
			ui.Errorf(os.Stderr, "Error occurred while updating binary: %v", err)
			return
		}
		ui.Successf(os.Stdout, "Successfully updated to version %s", latest.Version)
	},
}
