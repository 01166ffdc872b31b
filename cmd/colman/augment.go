package main

import (
	"fmt"
	"os"

	"github.com/carestack/colman/pkg/augment"
	"github.com/carestack/colman/pkg/postman"
	"github.com/carestack/colman/pkg/seed"
	"github.com/carestack/colman/pkg/storage"
	"github.com/carestack/colman/pkg/ui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	augmentDryRun bool
	augmentYes    bool
	augmentFrom   string
	augmentIndent int
)

var augmentCmd = &cobra.Command{
	Use:   "augment [file]",
	Short: "Append the built-in endpoint folders to a collection file",
	Long: `Augment rewrites a Postman collection file in place, appending the
built-in folder set (or a custom one given with --from). The file is read
fully and the replacement encoded in memory before anything is written, so
a failure never leaves a half-written collection behind.

Appending is unconditional: running augment twice appends the folders twice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("collection")
		if len(args) == 1 {
			path = args[0]
		}
		indent := augmentIndent
		if !cmd.Flags().Changed("indent") {
			indent = viper.GetInt("indent")
		}
		return runAugment(path, augmentParams{
			dryRun:    augmentDryRun,
			assumeYes: augmentYes,
			fromFile:  augmentFrom,
			indent:    indent,
		})
	},
}

func init() {
	rootCmd.AddCommand(augmentCmd)
	augmentCmd.Flags().BoolVar(&augmentDryRun, "dry-run", false, "Show a diff of the change without writing the file")
	augmentCmd.Flags().BoolVarP(&augmentYes, "yes", "y", false, "Skip the confirmation prompt")
	augmentCmd.Flags().StringVar(&augmentFrom, "from", "", "Append folders from a YAML folder set instead of the built-in one")
	augmentCmd.Flags().IntVar(&augmentIndent, "indent", postman.DefaultIndent, "Indent width for the rewritten file")
}

type augmentParams struct {
	dryRun    bool
	assumeYes bool
	fromFile  string
	indent    int
}

func runAugment(path string, p augmentParams) error {
	folders := seed.Folders()
	if p.fromFile != "" {
		set, err := storage.LoadFolderSet(p.fromFile)
		if err != nil {
			return fmt.Errorf("load folder set: %w", err)
		}
		folders = set.Items()
	}

	if !p.dryRun && !p.assumeYes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite %s in place?", path)).
				Description(fmt.Sprintf("%d folder(s) will be appended.", len(folders))).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			ui.Dimf(os.Stdout, "Aborted, %s not modified.", path)
			return nil
		}
	}

	res, err := augment.Run(path, augment.Options{
		Folders: folders,
		Indent:  p.indent,
		DryRun:  p.dryRun,
		Out:     os.Stdout,
	})
	if err != nil {
		return err
	}

	if p.dryRun {
		fmt.Print(res.Diff)
	}
	return nil
}
