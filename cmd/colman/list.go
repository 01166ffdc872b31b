package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/carestack/colman/pkg/postman"
	"github.com/carestack/colman/pkg/ui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var listCopy bool

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "Summarize the folders and requests in a collection file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("collection")
		if len(args) == 1 {
			path = args[0]
		}

		c, err := postman.Load(path)
		if err != nil {
			return err
		}

		md := summaryMarkdown(path, c)

		if listCopy {
			if err := clipboard.WriteAll(md); err != nil {
				ui.Errorf(os.Stderr, "Could not copy to clipboard: %v", err)
			} else {
				ui.Dimf(os.Stdout, "Summary copied to clipboard.")
			}
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Println(md) // Fallback to raw output
			return nil
		}
		out, err := renderer.Render(md)
		if err != nil {
			fmt.Println(md) // Fallback
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listCopy, "copy", false, "Copy the raw markdown summary to the clipboard")
}

// summaryMarkdown renders the collection as a markdown report.
func summaryMarkdown(path string, c *postman.Collection) string {
	var sb strings.Builder

	title := path
	if c.Info != nil && c.Info.Name != "" {
		title = c.Info.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "%d top-level item(s), %d request(s) total.\n\n", len(c.Items), c.RequestCount())

	folders := c.Folders()
	if len(folders) > 0 {
		sb.WriteString("| Folder | Requests | Methods |\n")
		sb.WriteString("|---|---|---|\n")
		for _, f := range folders {
			fmt.Fprintf(&sb, "| %s | %d | %s |\n", f.Name, f.RequestCount(), strings.Join(folderMethods(f), ", "))
		}
		sb.WriteString("\n")
	}

	if vars := c.TemplateVars(); len(vars) > 0 {
		sb.WriteString("**Template variables:** ")
		for i, v := range vars {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "`{{%s}}`", v)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// folderMethods returns the distinct HTTP methods used in a folder, sorted.
func folderMethods(folder *postman.Item) []string {
	seen := make(map[string]bool)
	var walk func(items []*postman.Item)
	walk = func(items []*postman.Item) {
		for _, it := range items {
			if it.Request != nil {
				seen[it.Request.Method] = true
			}
			walk(it.Items)
		}
	}
	walk(folder.Items)

	methods := make([]string, 0, len(seen))
	for m := range seen {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}
