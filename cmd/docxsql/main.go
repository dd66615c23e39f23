// Package main provides the CLI entry point for docxsql.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docxkit/docxsql/docx"
	"github.com/docxkit/docxsql/merge"
	"github.com/docxkit/docxsql/store"
	"github.com/docxkit/docxsql/swagger"
)

var (
	swaggerPath string
	modelPath   string
	jsonPath    string
	outputPath  string
	tableName   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docxsql",
		Short: "Query Word tables as SQL rows and generate documents from templates",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a DOCX template with Swagger or JSON data",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&swaggerPath, "swagger", "", "Swagger 2.0 document (file path or URL)")
	generateCmd.Flags().StringVar(&modelPath, "model", "", "DOCX template path")
	generateCmd.Flags().StringVar(&jsonPath, "json", "", "JSON data file for the template")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "output.docx", "Output file name")

	showCmd := &cobra.Command{
		Use:   "show [input.docx]",
		Short: "Dump the parsed document tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	tablesCmd := &cobra.Command{
		Use:   "tables [input.docx]",
		Short: "Scan the virtual tables of a document and print the rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runTables,
	}
	tablesCmd.Flags().StringVar(&tableName, "table", store.TablesName, "Virtual table to scan: tables or cell")

	rootCmd.AddCommand(generateCmd, showCmd, tablesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if modelPath == "" {
		return fmt.Errorf("--model is required")
	}
	tmpl, err := fetchBytes(modelPath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	var data any
	switch {
	case swaggerPath != "":
		raw, err := fetchBytes(swaggerPath)
		if err != nil {
			return fmt.Errorf("loading swagger document: %w", err)
		}
		doc, err := swagger.Parse(raw)
		if err != nil {
			return err
		}
		// Round-trip through JSON so the template addresses fields by
		// their placeholder names, not Go field names.
		encoded, err := json.Marshal(swagger.Project(doc))
		if err != nil {
			return fmt.Errorf("encoding template data: %w", err)
		}
		if err := json.Unmarshal(encoded, &data); err != nil {
			return fmt.Errorf("decoding template data: %w", err)
		}
	case jsonPath != "":
		raw, err := fetchBytes(jsonPath)
		if err != nil {
			return fmt.Errorf("loading template data: %w", err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parsing template data: %w", err)
		}
		merge.PrepareData(data, fetchBytes)
	default:
		return fmt.Errorf("either --swagger or --json is required")
	}

	out, err := merge.Render(tmpl, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	r, err := docx.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	out, err := json.MarshalIndent(r.Document(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runTables(cmd *cobra.Command, args []string) error {
	r, err := docx.Open(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	it, err := store.NewDocStore(r.Document()).Scan(tableName)
	if err != nil {
		return err
	}
	for {
		_, row, ok := it.Next()
		if !ok {
			return nil
		}
		out, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encoding row: %w", err)
		}
		fmt.Println(string(out))
	}
}

// fetchBytes loads a local file, or an http(s) URL when the path starts with
// http.
func fetchBytes(path string) ([]byte, error) {
	if strings.HasPrefix(path, "http") {
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: %s", path, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(path)
}
