// fna_cli runs the needs-analysis computation offline from a YAML input
// file, without a database or server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fna_cli",
	Short: "Financial needs analysis toolkit",
	Long:  "Runs the same analysis pass as the FNA backend from a local YAML file.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
