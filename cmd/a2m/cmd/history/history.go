package history

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"memomaker/internal/app"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent processing runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.OpenRunDAO()
		if err != nil {
			return err
		}
		defer db.Close()

		records, err := db.GetRecent(limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CREATED\tFILE\tMETHOD\tSTATE\tTOKENS\tELAPSED")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%dms\n",
				rec.CreatedAt.Format(time.DateTime),
				rec.FileName,
				rec.Method,
				rec.State,
				rec.TotalTokens,
				rec.ElapsedMs,
			)
		}
		return w.Flush()
	},
}
