package cli

import (
	"context"
	"fmt"
)

// Stats prints the dashboard summary.
func (a *App) Stats(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}

	st, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}

	limit := uploadsLabel(st.UploadsLimit)
	fmt.Fprintf(a.out, "Projects:  %d\n", st.TotalProjects)
	fmt.Fprintf(a.out, "Files:     %d (%d processed)\n", st.TotalFiles, st.ProcessedFiles)
	fmt.Fprintf(a.out, "Uploads:   %d of %s\n", st.UploadsUsed, limit)
	if st.Plan != "" {
		fmt.Fprintf(a.out, "Plan:      %s\n", st.Plan)
	}
	return nil
}

// Health checks the backend. It works without a session.
func (a *App) Health(ctx context.Context) error {
	h, err := a.dashboard.Health(ctx)
	if err != nil {
		return err
	}
	if h.Version != "" {
		fmt.Fprintf(a.out, "API %s (version %s) at %s\n", h.Status, h.Version, a.config.BaseURL())
	} else {
		fmt.Fprintf(a.out, "API %s at %s\n", h.Status, a.config.BaseURL())
	}
	return nil
}
