package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikifetch/internal/archive"
	"github.com/pdiddy/wikifetch/pkg/types"
)

const defaultArchiveDB = "temp/wiki_archive.db"

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the content archive (list, show, export)",
	Long: `Archive reads the SQLite archive written by fetch --archive-db. Use
subcommands to list archived documents, print one document's content, or
export every record as YAML or JSON.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived documents",
	RunE:  runArchiveList,
}

var archiveShowCmd = &cobra.Command{
	Use:   "show [document-token]",
	Short: "Print the archived content of one document",
	RunE:  runArchiveShow,
}

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all archived documents as YAML or JSON",
	RunE:  runArchiveExport,
}

func init() {
	archiveCmd.PersistentFlags().String("db", defaultArchiveDB, "SQLite archive path")
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	rootCmd.AddCommand(archiveCmd)
}

func openArchive(cmd *cobra.Command) (*archive.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("archive not found: %s (run fetch --archive-db first)", dbPath)
	}
	return archive.Open(types.ArchiveConfig{DBPath: dbPath})
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("Archive is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-28s  %-10s  %s\n",
		"No.", "Title", "Document Token", "Chars", "Fetched At")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, r := range records {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		chars := 0
		if r.Content != nil {
			chars = len(*r.Content)
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-28s  %-10d  %s\n",
			r.Number, title, r.DocumentToken, chars, r.FetchedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one document token")
	}

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	record, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(*record.Content)
	return nil
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openArchive(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Export(cmd.Context(), os.Stdout, archive.ExportFormat(format))
}
