// cmd/simulacion/list_commands.go
package simulacion

import (
	"fmt"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandInfo struct {
	path        string
	description string
}

// listAllCommands walks the command tree and prints each command path
// with its short description in a padded, two-column layout.
func listAllCommands(root *cobra.Command) {
	rows := collectCommandData(root, "", "")

	width := 0
	for _, row := range rows {
		if len(row.path) > width {
			width = len(row.path)
		}
	}

	fmt.Println("Commands and Subcommands:")
	for _, row := range rows {
		fmt.Printf("  %-*s  %s\n", width, row.path, row.description)
	}
}

// collectCommandData flattens the tree under cmd into path/description
// rows, indenting two spaces per nesting level.
func collectCommandData(cmd *cobra.Command, parentPath, indent string) []commandInfo {
	path := cmd.Name()
	if parentPath != "" {
		path = parentPath + " " + cmd.Name()
	}

	rows := []commandInfo{{path: indent + path, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		rows = append(rows, collectCommandData(sub, path, indent+"  ")...)
	}
	return rows
}
