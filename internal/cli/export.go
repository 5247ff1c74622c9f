package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metroroute/pkg/netdata"
)

// exportCommand creates the network export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded network as TOML, YAML or JSON",
		Long: `Write the loaded network as a data file.

The output can be edited and loaded again with --network. With -o the
format follows the file extension unless --format is given.`,
		Example: `  metroroute export -o delhi.yaml
  metroroute export --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPlanner(cmd.Context())
			if err != nil {
				return err
			}
			doc := netdata.FromNetwork(p.Network())

			if output == "" {
				f := netdata.FormatTOML
				if format != "" {
					if f, err = netdata.ParseFormat(format); err != nil {
						return err
					}
				}
				return netdata.Write(c.out, doc, f)
			}

			if format == "" {
				err = netdata.WriteFile(doc, output)
			} else {
				err = writeDocument(doc, output, format)
			}
			if err != nil {
				return err
			}
			printSuccess(c.out, "Exported %s", p.Name())
			printFile(c.out, output)
			printNextStep(c.out, "Load it with", "metroroute plan --network "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "format: toml, yaml, json")

	return cmd
}

func writeDocument(doc *netdata.Document, path, format string) error {
	f, err := netdata.ParseFormat(format)
	if err != nil {
		return err
	}
	data, err := netdata.Marshal(doc, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
