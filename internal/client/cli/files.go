package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"
)

// Upload sends a local file to a project, drawing a progress bar.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("upload <project-id> <path>")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	bar := newProgressBar(a.out, progressBarWidth)
	raw, err := a.files.UploadPath(ctx, args[0], args[1], bar.Update)
	bar.Finish()
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "file uploaded", "project", args[0], "path", args[1])
	fmt.Fprintln(a.out, "Upload complete")
	if len(raw) > 0 && string(raw) != "null" {
		var buf bytes.Buffer
		if json.Indent(&buf, raw, "", "  ") == nil {
			fmt.Fprintln(a.out, buf.String())
		}
	}
	return nil
}

// Files lists the files of a project with their processing state.
func (a *App) Files(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("files <project-id>")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	list, err := a.files.ProjectFiles(ctx, args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No files in this project.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFILENAME\tSTATUS\tPROGRESS\tCREATED")
	for _, f := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n", f.ID, f.Filename, f.Status, f.Progress, f.CreatedAt)
	}
	return tw.Flush()
}

// Status shows the processing state of one file.
func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("status <file-id>")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	f, err := a.files.Status(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "File:     %s\n", f.Filename)
	fmt.Fprintf(a.out, "Status:   %s\n", f.Status)
	fmt.Fprintf(a.out, "Progress: %d%%\n", f.Progress)
	if f.Error != "" {
		fmt.Fprintf(a.out, "Error:    %s\n", f.Error)
	}
	return nil
}
