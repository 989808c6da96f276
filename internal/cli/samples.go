package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/ppiankov/fakenews/internal/classify"
	"github.com/spf13/cobra"
)

// samplesCmd represents the samples command
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Classify the built-in sample inputs",
	Long: `Samples runs every built-in demo input through the classifier and
prints the selected template, score and risk level for each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		urlCfg := cfg.URL
		c := classify.New(classify.WithURLConfig(&urlCfg))

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SAMPLE\tMODE\tTEMPLATE\tSCORE\tRISK")
		for _, s := range classify.Samples() {
			result := c.Classify(s.Input, s.Mode)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.Name, s.Mode, result.Archetype, result.ReliabilityScore, result.RiskLevel)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}
