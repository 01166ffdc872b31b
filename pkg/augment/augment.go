// Package augment appends folder sets to a Postman collection file.
package augment

import (
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/carestack/colman/pkg/postman"
	"github.com/carestack/colman/pkg/seed"
)

// Options controls a single augmentation run.
type Options struct {
	// Folders to append. Defaults to the built-in seed set.
	Folders []*postman.Item
	// Indent width for the rewritten file. Defaults to postman.DefaultIndent.
	Indent int
	// DryRun computes the result and a unified diff without writing.
	DryRun bool
	// Out receives progress notices. Nil silences them.
	Out io.Writer
}

// Result reports what a run did (or, for a dry run, would do).
type Result struct {
	Path   string
	Before int      // top-level items before the run
	After  int      // top-level items after the run
	Added  []string // names of the appended folders, in order
	Diff   string   // unified diff, only set on dry runs
}

// Apply appends the folders to the collection in order. It never inspects
// the existing items: a folder with the same name as an existing one is
// appended anyway, so running twice doubles the appended set.
func Apply(c *postman.Collection, folders []*postman.Item) []string {
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		c.AddFolder(f)
		names = append(names, f.Name)
	}
	return names
}

// Run loads the collection at path, appends the folders, and rewrites the
// file in place. The whole document is read and the replacement fully
// encoded before anything is written, so any failure leaves the original
// file byte-for-byte untouched.
func Run(path string, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	folders := opts.Folders
	if folders == nil {
		folders = seed.Folders()
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	c, err := postman.Parse(original)
	if err != nil {
		return nil, err
	}

	res := &Result{Path: path, Before: len(c.Items)}
	fmt.Fprintf(out, "Current folders: %d\n", res.Before)

	res.Added = Apply(c, folders)
	for _, f := range folders {
		fmt.Fprintf(out, "✅ Added %s folder (%d requests)\n", f.Name, f.RequestCount())
	}
	res.After = len(c.Items)

	updated, err := postman.Encode(c, opts.Indent)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		edits := udiff.Strings(string(original), string(updated))
		unified, err := udiff.ToUnified("a/"+path, "b/"+path, string(original), edits, 3)
		if err != nil {
			return nil, fmt.Errorf("generate diff: %w", err)
		}
		res.Diff = unified
		fmt.Fprintf(out, "🔍 Dry run: %s not modified\n", path)
		return res, nil
	}

	if err := os.WriteFile(path, updated, 0644); err != nil {
		return nil, fmt.Errorf("write collection: %w", err)
	}

	fmt.Fprintf(out, "\n✨ COMPLETE! Total folders: %d\n", res.After)
	fmt.Fprintln(out, "✅ Postman collection updated successfully!")
	return res, nil
}
