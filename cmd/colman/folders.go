package main

import (
	"os"

	"github.com/carestack/colman/pkg/seed"
	"github.com/carestack/colman/pkg/storage"
	"github.com/carestack/colman/pkg/ui"
	"github.com/spf13/cobra"
)

var foldersOut string

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Work with folder sets",
}

var foldersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the built-in folder set as an editable YAML file",
	Long: `Export writes the built-in folders in the YAML folder-set format.
Edit the file and feed it back with 'colman augment --from <file>' to append
a customized set instead of the built-in one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		set := storage.FromItems("carestack built-in folders", seed.Folders())
		if err := storage.SaveFolderSet(set, foldersOut); err != nil {
			return err
		}
		ui.Successf(os.Stdout, "✅ Folder set written to %s", foldersOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(foldersCmd)
	foldersCmd.AddCommand(foldersExportCmd)
	foldersExportCmd.Flags().StringVarP(&foldersOut, "out", "o", "colman-folders.yaml", "Output file")
}
