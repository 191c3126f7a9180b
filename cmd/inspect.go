package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/output"
	"github.com/mj1618/dashpanel/internal/panel"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [layout]",
	Short: "Report how a layout assembles",
	Long: `Assemble a layout without rendering it and print the window settings,
every placed element with its bounds, skipped elements with the reason,
duplicate ids and the number of style rules.

Examples:
  dashpanel inspect panel.yaml
  dashpanel inspect panel.json --type shape --format json --pretty
  dashpanel inspect panel.json --bbox 0,0,400,300`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addLayoutFlags(inspectCmd)
	inspectCmd.Flags().String("type", "", "Comma-separated element types to list (meta types: shape, control)")
	inspectCmd.Flags().String("bbox", "", "Only list elements intersecting x,y,w,h")
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := loadLayoutArg(cmd, args)
	if err != nil {
		return err
	}
	typeFlag, _ := cmd.Flags().GetString("type")
	bboxFlag, _ := cmd.Flags().GetString("bbox")
	bbox, err := parseBBoxFlag(bboxFlag)
	if err != nil {
		return err
	}

	rep, err := panel.Build(doc, headless.New(headless.Options{}), panel.Options{})
	if err != nil {
		return err
	}
	source := ""
	if len(args) > 0 {
		source = args[0]
	}
	res := output.NewInspectResult(source, rep, rep.Filter(parseKindsFlag(typeFlag), bbox))
	return output.Fprint(cmd.OutOrStdout(), res, output.OutputFormat, output.PrettyOutput)
}
