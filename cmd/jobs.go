package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VOLLPilates/assetforge/internal/output"
)

func newJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List the manifest's jobs without fetching anything",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			m, err := loadManifest()
			if err != nil {
				output.PrintError(fmt.Sprintf("Failed to load manifest: %v", err))
				os.Exit(1)
			}
			rows := make([][]string, 0, len(m.Jobs))
			for i, job := range m.Jobs {
				widths := make([]string, 0, len(job.Widths))
				for _, w := range job.Widths {
					widths = append(widths, fmt.Sprint(w))
				}
				rows = append(rows, []string{
					fmt.Sprint(i + 1),
					job.Name,
					job.Root,
					job.Format,
					strings.Join(widths, ", "),
					fmt.Sprint(job.Quality),
					job.URL,
				})
			}
			fmt.Println(output.RenderTable(
				[]string{"#", "Name", "Root", "Format", "Widths", "Quality", "URL"}, rows))
		},
	}
}
