package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hardwarehouse",
	Short: "HardwareHouse system inventory",
	Long:  `HardwareHouse - local hardware/software inventory, benchmarks, and report export.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("HardwareHouse %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available inventory categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		for _, name := range a.registry.Catalog() {
			fmt.Println(name)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <category>",
	Short: "Collect and display one category",
	Long: `Collect a category and print it as indented text. Benchmark categories
run the corresponding probe tier. The collected record can be exported with
the --json and --csv flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.show(args[0]); err != nil {
			return err
		}
		return a.exportFlags(cmd)
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench <baseline|extended>",
	Short: "Run a benchmark tier",
	Long: `Run the CPU, memory, and disk probes of a tier and display the merged
result. Probes run strictly in order; the disk probe writes a scratch file
that is removed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		var category string
		switch args[0] {
		case "baseline":
			category = string(benchBaseline)
		case "extended":
			category = string(benchExtended)
		default:
			return fmt.Errorf("unknown tier %q (want baseline or extended)", args[0])
		}

		if err := a.show(category); err != nil {
			return err
		}
		return a.exportFlags(cmd)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Collect every category into one report and export it",
	Long: `Collect all inventory categories (benchmarks excluded) into a single
record and export it. JSON export is on by default; add --csv for the flat
form as well.`,
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle: exportFlags refers back to reportCmd.
	reportCmd.RunE = func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.fullReport(); err != nil {
			return err
		}
		return a.exportFlags(cmd)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(reportCmd)

	for _, cmd := range []*cobra.Command{showCmd, benchCmd, reportCmd} {
		cmd.Flags().String("json", "", "Export the record as JSON to the given path (empty uses the configured default)")
		cmd.Flags().String("csv", "", "Export the record as CSV to the given path (empty uses the configured default)")
		cmd.Flags().Lookup("json").NoOptDefVal = "default"
		cmd.Flags().Lookup("csv").NoOptDefVal = "default"
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
