package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikifetch/internal/wiki"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the enumerated documents without fetching anything",
	Long: `List prints the document set from the enumerated input file in a table.
It never contacts the network, with or without a token.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("input", defaultInput, "enumerated document list (JSON array)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")

	docs, err := wiki.LoadDocuments(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file not found: %s (run the wiki enumeration step first to generate it)", input)
		}
		return err
	}

	if len(docs) == 0 {
		fmt.Println("No documents pending.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-5s  %-40s  %-28s  %s\n",
		"No.", "Level", "Title", "Document Token", "Node Token")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, doc := range docs {
		title := doc.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-5d  %-40s  %-28s  %s\n",
			doc.Number, doc.Level, title, doc.DocumentToken, doc.NodeToken)
	}
	fmt.Fprintf(os.Stdout, "\n%d document(s) pending retrieval.\n", len(docs))
	return nil
}
