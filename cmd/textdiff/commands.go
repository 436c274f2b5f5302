// cmd/textdiff/commands.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/editscript/internal/buffer"
	"github.com/bethropolis/editscript/internal/commands"
	"github.com/bethropolis/editscript/internal/config"
	"github.com/bethropolis/editscript/internal/diff"
	"github.com/bethropolis/editscript/internal/document"
	"github.com/bethropolis/editscript/internal/event"
	"github.com/bethropolis/editscript/internal/logger"
	"github.com/bethropolis/editscript/internal/syntax"
)

func (c *cli) registry() *commands.Registry {
	r := commands.NewRegistry()
	for _, cmd := range []commands.Command{
		{Name: "diff", Usage: "[-o out] OLD NEW", Summary: "Write the diff that turns OLD into NEW.", Run: c.runDiff},
		{Name: "apply", Usage: "[-o out] FILE DIFF", Summary: "Apply DIFF to FILE and write the result.", Run: c.runApply},
		{Name: "invert", Usage: "[-o out] FILE DIFF", Summary: "Write the diff that undoes DIFF on FILE.", Run: c.runInvert},
		{Name: "compose", Usage: "[-base FILE] [-o out] DIFF...", Summary: "Combine diffs applied in sequence into one.", Run: c.runCompose},
		{Name: "show", Usage: "DIFF", Summary: "Print DIFF's operations and lengths.", Run: c.runShow},
		{Name: "version", Usage: "", Summary: "Print the version.", Run: c.runVersion},
	} {
		if err := r.Register(cmd); err != nil {
			logger.Warnf("Failed to register command: %v", err)
		}
	}
	return r
}

// newFlagSet creates a subcommand flag set writing its errors to stderr.
func (c *cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// parseArgs parses subcommand flags. The flag package has already reported
// any failure, so only the exit status is returned.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errJustExit(0)
		}
		return errJustExit(2)
	}
	return nil
}

// formatFor picks the diff encoding from a file extension, falling back to
// the configured format.
func (c *cli) formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return diff.FormatJSON
	case ".yaml", ".yml":
		return diff.FormatYAML
	}
	return c.cfg.Diff.Format
}

func (c *cli) readDiff(path string) (diff.Diff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diff.Diff{}, fmt.Errorf("failed to read diff: %w", err)
	}
	d, err := diff.Unmarshal(data, c.formatFor(path))
	if err != nil {
		return diff.Diff{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.DebugTagf("diff", "Read %s: %d operation(s)", path, d.Len())
	return d, nil
}

// writeDiff encodes d to out, or to stdout when out is empty.
func (c *cli) writeDiff(d diff.Diff, out string) error {
	data, err := diff.Marshal(d, c.formatFor(out))
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if out == "" {
		_, err = c.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write diff: %w", err)
	}
	return nil
}

func (c *cli) runDiff(args []string) error {
	fs := c.newFlagSet("diff")
	out := fs.String("o", "", "write the diff to this file")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return commands.UsageError("diff", "want OLD and NEW, got %d argument(s)", fs.NArg())
	}

	oldText, err := buffer.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	newText, err := buffer.Load(fs.Arg(1))
	if err != nil {
		return err
	}
	d := diff.FromStrings(oldText.String(), newText.String(), c.cfg.DiffOptions())
	return c.writeDiff(d, *out)
}

func (c *cli) runApply(args []string) error {
	fs := c.newFlagSet("apply")
	out := fs.String("o", "", "write the result to this file instead of stdout")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return commands.UsageError("apply", "want FILE and DIFF, got %d argument(s)", fs.NArg())
	}
	file := fs.Arg(0)

	d, err := c.readDiff(fs.Arg(1))
	if err != nil {
		return err
	}

	events := event.NewManager()
	doc, err := document.Load(file, events)
	if err != nil {
		return err
	}

	var tracker *syntax.Tracker
	if c.cfg.Diff.Syntax {
		tracker, err = c.trackSyntax(file, doc, events)
		if err != nil {
			return err
		}
		if tracker != nil {
			defer tracker.Close()
		}
	}

	if _, err := doc.Apply(d); err != nil {
		return err
	}

	if tracker != nil && tracker.HasErrors() {
		if p, ok := tracker.FirstError(); ok {
			fmt.Fprintf(c.stderr, "%s: warning: %s syntax errors after applying the diff, first at %s\n",
				config.AppName, tracker.Language().Name, doc.Text().Location(p))
		}
	}

	if *out != "" {
		return doc.Save(*out)
	}
	_, err = fmt.Fprint(c.stdout, doc.Text().String())
	return err
}

// trackSyntax parses doc and keeps the tree current as diffs are applied.
// It returns nil when no grammar is registered for file.
func (c *cli) trackSyntax(file string, doc *document.Document, events *event.Manager) (*syntax.Tracker, error) {
	lang := syntax.ForFile(file)
	if lang == nil {
		logger.Infof("No grammar for %s, skipping syntax check", file)
		return nil, nil
	}
	tracker, err := syntax.NewTracker(lang)
	if err != nil {
		return nil, err
	}
	if err := tracker.Parse(context.Background(), doc.Text()); err != nil {
		tracker.Close()
		return nil, err
	}
	tracker.Attach(events)
	return tracker, nil
}

func (c *cli) runInvert(args []string) error {
	fs := c.newFlagSet("invert")
	out := fs.String("o", "", "write the inverse to this file")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return commands.UsageError("invert", "want FILE and DIFF, got %d argument(s)", fs.NArg())
	}

	src, err := buffer.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	d, err := c.readDiff(fs.Arg(1))
	if err != nil {
		return err
	}
	if err := diff.Validate(d, src); err != nil {
		return err
	}
	return c.writeDiff(d.Invert(src), *out)
}

func (c *cli) runCompose(args []string) error {
	fs := c.newFlagSet("compose")
	base := fs.String("base", "", "check that the diffs apply in sequence to this file")
	out := fs.String("o", "", "write the composed diff to this file")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return commands.UsageError("compose", "want at least one DIFF")
	}

	diffs := make([]diff.Diff, 0, fs.NArg())
	for _, path := range fs.Args() {
		d, err := c.readDiff(path)
		if err != nil {
			return err
		}
		diffs = append(diffs, d)
	}

	if *base != "" {
		src, err := buffer.Load(*base)
		if err != nil {
			return err
		}
		if _, err := diff.ValidateChain(src, diffs...); err != nil {
			return err
		}
	}

	composed := diffs[0]
	for _, d := range diffs[1:] {
		composed = composed.Compose(d)
	}
	return c.writeDiff(composed, *out)
}

func (c *cli) runShow(args []string) error {
	if len(args) != 1 {
		return commands.UsageError("show", "want one DIFF, got %d argument(s)", len(args))
	}
	d, err := c.readDiff(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.stdout, "%v\nbase %v, target %v\n", d, d.BaseLength(), d.TargetLength())
	return err
}

func (c *cli) runVersion(args []string) error {
	_, err := fmt.Fprintf(c.stdout, "%s %s\n", config.AppName, config.Version)
	return err
}
