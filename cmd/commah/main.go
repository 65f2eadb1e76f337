// Command commah computes halo mass accretion histories and NFW
// concentration-mass relations from the command line, mirroring the library
// entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"commah/version"
)

var rootCmd = &cobra.Command{
	Use:   "commah",
	Short: "Halo mass accretion histories and NFW concentrations",
	Long: `commah computes dark matter halo mass accretion histories and NFW
concentration-mass relations for a chosen cosmology, following the analytic
model of Correa et al. (2015a,b,c).`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the commah version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("commah version %s\n", version.SourceVersion)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
