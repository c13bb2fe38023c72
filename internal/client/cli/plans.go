package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/vltrn/datav/internal/client/plans"
)

func planIDs() string {
	all := plans.All()
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return "(" + strings.Join(ids, ", ") + ")"
}

func uploadsLabel(n int) string {
	if n < 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

// Plans prints the pricing table.
func (a *App) Plans(ctx context.Context) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tUPLOADS\tFEATURES")
	for _, p := range plans.All() {
		fmt.Fprintf(tw, "%s\t%s\t$%d\t%s\t%s\n", p.ID, p.Name, p.Price, uploadsLabel(p.Uploads), strings.Join(p.Features, ", "))
	}
	return tw.Flush()
}
