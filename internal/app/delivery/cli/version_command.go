package cli

import (
	"fmt"

	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/utils"
	"homeo-service/internal/pkg/version"

	"github.com/spf13/cobra"
)

func attachVersionCommand(root *cobra.Command, app *App) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch app.output {
			case "", constvars.OutputFormatTable:
				_, err := fmt.Fprintln(app.out, info.Text())
				return err
			case constvars.OutputFormatJSON:
				payload, err := info.ToJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(app.out, payload)
				return err
			default:
				return utils.WriteOutput(app.out, app.output, info)
			}
		},
	})
}
