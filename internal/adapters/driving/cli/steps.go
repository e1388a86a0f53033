package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List registered transform steps",
	Args:  cobra.NoArgs,
	RunE:  runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(cmd *cobra.Command, _ []string) error {
	if stepRegistry == nil {
		return errors.New("step registry not configured")
	}
	for _, name := range stepRegistry.Names() {
		cmd.Println(name)
	}
	return nil
}
