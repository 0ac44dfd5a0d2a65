package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dori/weezy/internal/db"
	"github.com/dori/weezy/internal/model"
	"github.com/dori/weezy/internal/query"
)

// collections selectable with --collection
var collections = []string{"workspace", "local", "cloud", "knowledge", "popular", query.All}

func selectFiles(c db.Catalog, collection string) ([]model.File, error) {
	switch strings.ToLower(collection) {
	case "", "workspace":
		return c.WorkspaceFiles(), nil
	case string(model.CollectionLocal):
		return c.Local, nil
	case string(model.CollectionCloud):
		return c.Cloud, nil
	case string(model.CollectionKnowledge):
		return c.Knowledge, nil
	case string(model.CollectionPopular):
		return c.Popular, nil
	case query.All:
		out := c.WorkspaceFiles()
		out = append(out, c.Knowledge...)
		return append(out, c.Popular...), nil
	}
	return nil, fmt.Errorf("invalid collection %q (want one of %s)", collection, strings.Join(collections, ", "))
}

func sortFiles(files []model.File, by string) ([]model.File, error) {
	switch strings.ToLower(by) {
	case "", "recency":
		return query.SortByRecency(files), nil
	case "name":
		return query.SortByName(files, query.Ascending), nil
	case "access":
		return query.SortByField(files, "accessCount", query.Descending)
	}
	return nil, fmt.Errorf("invalid sort %q (want recency, name or access)", by)
}

// NewFilesCmd lists and searches files
func NewFilesCmd(c *cli) *cobra.Command {
	var source, collection, sortBy, output string

	cmd := &cobra.Command{
		Use:   "files [query]",
		Short: "Search files across the workspace and knowledge base",
		Long: `Search files by name or platform.

Examples:
  weezy files                           # workspace files, most recent first
  weezy files report --collection all   # every file mentioning "report"
  weezy files --collection popular --sort access -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.open()
			if err != nil {
				return err
			}
			defer a.Close()

			files, err := selectFiles(a.Catalog, collection)
			if err != nil {
				return err
			}
			opts := query.Options{Source: source}
			if len(args) > 0 {
				opts.Query = args[0]
			}
			files, err = sortFiles(query.Filter(files, opts), sortBy)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), output, files, printFiles)
		},
	}

	cmd.Flags().StringVar(&source, "source", query.All, "only files from this platform")
	cmd.Flags().StringVar(&collection, "collection", "workspace", "file list: "+strings.Join(collections, ", "))
	cmd.Flags().StringVar(&sortBy, "sort", "recency", "order: recency, name or access")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

// NewTasksCmd lists and searches tasks
func NewTasksCmd(c *cli) *cobra.Command {
	var status, sortBy, dir, output string

	cmd := &cobra.Command{
		Use:   "tasks [query]",
		Short: "Search tasks by title, description or label",
		Long: `Search tasks.

Examples:
  weezy tasks marketing
  weezy tasks --status in-progress
  weezy tasks --sort progress --dir asc -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != query.All && !model.Status(status).Valid() {
				return fmt.Errorf("%w: unknown status %q", model.ErrInvalidTask, status)
			}
			direction, err := query.ParseDirection(dir)
			if err != nil {
				return err
			}

			a, err := c.open()
			if err != nil {
				return err
			}
			defer a.Close()

			opts := query.Options{Status: status}
			if len(args) > 0 {
				opts.Query = args[0]
			}
			tasks := query.Filter(a.Catalog.Tasks, opts)
			if sortBy != "" {
				if tasks, err = query.SortByField(tasks, sortBy, direction); err != nil {
					return err
				}
			}
			return render(cmd.OutOrStdout(), output, tasks, printTasks)
		},
	}

	cmd.Flags().StringVar(&status, "status", query.All, "only tasks with this status")
	cmd.Flags().StringVar(&sortBy, "sort", "", "numeric field to sort by: progress or priority")
	cmd.Flags().StringVar(&dir, "dir", "desc", "sort direction: asc or desc")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}
