package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gridley/gridley-cli/pkg/files"
	"github.com/gridley/gridley-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gridley",
	Short: "Terminal spreadsheet editor",
	Long:  `Gridley is a terminal spreadsheet editor: a virtualized cell grid with formatting, merges, multiple sheets, fill-drag, clipboard and undo/redo. State lives in memory for the session; an optional .gridley directory holds settings.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings := files.LoadSettingsWithDefault()

		app := tui.NewApp(settings)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Gridley settings directory",
	Long:  `Creates the .gridley folder with a default settings.yaml in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Gridley settings in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize settings: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .gridley/settings.yaml")
		fmt.Println("\nRun 'gridley' to start the editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Gridley",
	Long:  `Display the current version of the Gridley CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Gridley version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
