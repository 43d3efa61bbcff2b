package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formdex",
	Short: "Measure-level phrasal structure analysis for MIDI corpora",
	Long:  `Analyzes MIDI files measure by measure to find repeating rhythmic and melodic patterns, and catalogs rhythm patterns across a whole corpus.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
