package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "petfeed",
	Short: "feed de mascotas en adopción",
	Long: `
petfeed consulta el listing de mascotas, geocodifica sus direcciones y
las imprime como JSON, opcionalmente ordenadas por cercanía.
`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
