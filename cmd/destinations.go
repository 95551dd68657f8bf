package cmd

import (
	"io"
	"os"

	"github.com/eatu-cf/odata-query-services/internal/appconfig"
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List the configured OData destinations",
	Run: func(cmd *cobra.Command, args []string) {
		commonSetUp()
		printDestinations(os.Stdout, appCfg)
	},
}

func init() {
	rootCmd.AddCommand(destinationsCmd)
}

// printDestinations writes one row per destination. Credentials are never
// printed, only where they come from.
func printDestinations(w io.Writer, cfg *appconfig.Config) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Name", "URL", "SAP Client", "Credentials")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)

	for _, d := range cfg.Destinations {
		tbl.AddRow(d.Name, d.URL, d.SAPClient, credentialSource(d))
	}

	tbl.Print()
}

func credentialSource(d appconfig.DestinationConfig) string {
	switch {
	case d.SecretName != "":
		return "secret:" + d.SecretName
	case d.User != "":
		return "inline"
	default:
		return "none"
	}
}
