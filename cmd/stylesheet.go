package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/panel"
)

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet [layout]",
	Short: "Print the stylesheet generated for a layout",
	Long: `Print the stylesheet text built from the window background and each
element's style block, exactly as it is handed to the toolkit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStylesheet,
}

func init() {
	rootCmd.AddCommand(stylesheetCmd)
	addLayoutFlags(stylesheetCmd)
	stylesheetCmd.Flags().Bool("check", false, "Fail when the toolkit cannot parse the stylesheet")
}

func runStylesheet(cmd *cobra.Command, args []string) error {
	doc, err := loadLayoutArg(cmd, args)
	if err != nil {
		return err
	}
	tk := headless.New(headless.Options{})
	rep, err := panel.Build(doc, tk, panel.Options{})
	if err != nil {
		return err
	}
	if check, _ := cmd.Flags().GetBool("check"); check {
		if _, err := headless.ParseStylesheet(rep.Stylesheet); err != nil {
			return fmt.Errorf("stylesheet does not parse: %w", err)
		}
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rep.Stylesheet)
	return err
}
