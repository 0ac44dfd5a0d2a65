package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/dori/weezy/internal/assistant"
	"github.com/dori/weezy/internal/model"
)

// Output formats accepted by -o
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// render writes v in the requested format, using text for the human table
func render[T any](w io.Writer, format string, v T, text func(io.Writer, T) error) error {
	switch strings.ToLower(format) {
	case "", outputText:
		return text(w, v)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("invalid output format %q (want text, json or yaml)", format)
}

func printFiles(w io.Writer, files []model.File) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(w, "No files found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSIZE\tSOURCE\tMODIFIED\tACCESSES")
	for _, f := range files {
		accesses := "-"
		if f.AccessCount > 0 {
			accesses = humanize.Comma(int64(f.AccessCount))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Name, f.Kind, orDash(f.Size), f.Source, f.LastModified, accesses)
	}
	return tw.Flush()
}

func printTasks(w io.Writer, tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tSTATUS\tPRIORITY\tPROGRESS\tASSIGNEE\tDUE\tLABELS")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
			t.Title, t.Status, t.Priority, t.Progress, orDash(t.AssignedTo.Name),
			orDash(t.DueDate), orDash(t.Labels.String()))
	}
	return tw.Flush()
}

func printReply(w io.Writer, r assistant.Reply) error {
	if _, err := fmt.Fprintln(w, r.Text); err != nil {
		return err
	}
	for _, f := range r.Attachments {
		if _, err := fmt.Fprintf(w, "  📎 %s (%s, %s)\n", f.Name, f.Source, f.Size); err != nil {
			return err
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
