package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wikifetch/internal/archive"
	"github.com/pdiddy/wikifetch/internal/report"
	"github.com/pdiddy/wikifetch/internal/secrets"
	"github.com/pdiddy/wikifetch/internal/wiki"
	"github.com/pdiddy/wikifetch/pkg/types"
)

const (
	defaultInput     = "temp/wiki_documents.json"
	defaultOutput    = "temp/wiki_documents_with_content.txt"
	defaultBaseURL   = "https://open.feishu.cn"
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "wikifetch/0.1"

	// tokenEnvVar is the conventional environment variable for the Lark user
	// access token; the --token flag overrides it.
	tokenEnvVar = "LARK_USER_ACCESS_TOKEN"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch document content and write the aggregate report",
	Long: `Fetch reads the enumerated document list, retrieves each document's raw
content through the docx API in order, and writes a single plain-text report.
Retrieval failures are recorded as "[Content not available]" in the report
and never abort the run.

Without a user access token (--token, ` + tokenEnvVar + `, or
.secrets/lark-user-access-token) no network requests are made; the pending
documents are listed with manual-retrieval instructions instead.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("input", defaultInput, "enumerated document list (JSON array)")
	fetchCmd.Flags().String("output", defaultOutput, "report file path")
	fetchCmd.Flags().String("base-url", defaultBaseURL, "Lark open-platform host")
	fetchCmd.Flags().String("token", "", "user access token (overrides "+tokenEnvVar+")")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	fetchCmd.Flags().Duration("delay", 0, "pause between consecutive document requests")
	fetchCmd.Flags().String("archive-db", "", "SQLite archive for fetched content (empty disables archiving)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	archiveDB, _ := cmd.Flags().GetString("archive-db")

	docs, err := wiki.LoadDocuments(input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file not found: %s (run the wiki enumeration step first to generate it)", input)
		}
		return err
	}

	fmt.Printf("Found %d documents\n", len(docs))
	fmt.Printf("Input:  %s\n", input)
	fmt.Printf("Output: %s\n\n", output)

	token := resolveToken(cmd)
	if token == "" {
		wiki.ListPending(os.Stdout, docs)
		return nil
	}

	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL: baseURL,
		Delay:   delay,
	}

	client := &wiki.Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   cfg.BaseURL,
		Token:     token,
		UserAgent: cfg.UserAgent,
	}

	result := wiki.FetchBatch(cmd.Context(), client, docs, cfg, os.Stdout)

	reportCfg := types.ReportConfig{OutputPath: output}
	if err := report.Write(reportCfg, result.Documents); err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", output)

	if archiveDB != "" {
		if err := archiveFetched(cmd, archiveDB, result); err != nil {
			return err
		}
	}
	return nil
}

// resolveToken returns the user access token from the --token flag, the
// LARK_USER_ACCESS_TOKEN environment variable, the token config key
// (wikifetch.yaml or WIKIFETCH_TOKEN), or the secrets directory, in that
// order. Empty means dry mode.
func resolveToken(cmd *cobra.Command) string {
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		return token
	}
	if token := os.Getenv(tokenEnvVar); token != "" {
		return token
	}
	if token := viper.GetString("token"); token != "" {
		return token
	}
	return secretDefault(secrets.LarkUserAccessToken, "")
}

// archiveFetched upserts every successfully fetched document into the
// SQLite archive at dbPath.
func archiveFetched(cmd *cobra.Command, dbPath string, result wiki.BatchResult) error {
	store, err := archive.Open(types.ArchiveConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	archived := 0
	for _, doc := range result.Documents {
		if !doc.HasContent() {
			continue
		}
		if err := store.Save(cmd.Context(), doc); err != nil {
			return err
		}
		archived++
	}
	fmt.Printf("Archived %d document(s) to %s\n", archived, dbPath)
	return nil
}
