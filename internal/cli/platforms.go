package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// platformEntry is one row of `platforms` output.
type platformEntry struct {
	Platform string `json:"platform"`
	GOOS     string `json:"goos"`
	GOARCH   string `json:"goarch"`
	Output   string `json:"output"`
}

func newPlatformsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms and where their binaries go",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.registry()
			if err != nil {
				return err
			}

			var entries []platformEntry
			for _, e := range reg.Entries() {
				entries = append(entries, platformEntry{
					Platform: e.Platform.String(),
					GOOS:     e.Target.GOOS,
					GOARCH:   e.Target.GOARCH,
					Output:   e.Path(),
				})
			}

			if asJSON {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "PLATFORM\tTARGET\tOUTPUT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s/%s\t%s\n", e.Platform, e.GOOS, e.GOARCH, e.Output)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
