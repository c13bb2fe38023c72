package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
)

var errUsage = errors.New("wrong arguments")

func usage(s string) error {
	return fmt.Errorf("%w, usage: %s", errUsage, s)
}

// Projects lists the user's projects.
func (a *App) Projects(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	list, err := a.projects.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No projects yet. Create one with 'newproject'.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tFILES\tCREATED\tDESCRIPTION")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, p.FileCount, p.CreatedAt, p.Description)
	}
	return tw.Flush()
}

// Project shows one project.
func (a *App) Project(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("project <id>")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	p, err := a.projects.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:          %s\n", p.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", p.Name)
	fmt.Fprintf(a.out, "Description: %s\n", p.Description)
	if p.CreatedAt != "" {
		fmt.Fprintf(a.out, "Created:     %s\n", p.CreatedAt)
	}
	fmt.Fprintf(a.out, "Files:       %d\n", p.FileCount)
	return nil
}

// NewProject prompts for a name and description and creates the project.
func (a *App) NewProject(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter project name", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description (optional)", a.out)
	if err != nil {
		return err
	}

	p, err := a.projects.Create(ctx, name, description)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Project %q created with id %s\n", p.Name, p.ID)
	return nil
}

// RemoveProject deletes a project after confirmation.
func (a *App) RemoveProject(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("rmproject <id>")
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete project %s and all its files? (y/N)", args[0]), a.out)
	if err != nil {
		return err
	}
	if !isYes(answer) {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.projects.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}
