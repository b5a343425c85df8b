package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/basile/kvitto/internal/document"
	"github.com/basile/kvitto/internal/export"
	"github.com/basile/kvitto/internal/parsing"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("kvitto")
	var (
		spreadsheetID   = fs.StringLong("spreadsheet-id", "", "Google Sheets spreadsheet ID (required unless --create-new or a file flag)")
		sheetName       = fs.StringLong("sheet-name", export.DefaultSheetName, "Name of the sheet tab to update")
		createNew       = fs.BoolLong("create-new", "Create a new spreadsheet instead of updating an existing one")
		credentialsFile = fs.StringLong("credentials", "credentials.json", "Path to Google API credentials file")
		tokenFile       = fs.StringLong("token", "token.json", "Path to token cache file")
		toCSV           = fs.StringLong("to-csv", "", "Save extracted items to a CSV file instead of Google Sheets")
		toXLSX          = fs.StringLong("to-xlsx", "", "Save extracted items to a local XLSX workbook instead of Google Sheets")
		engine          = fs.StringLong("engine", "fitz", "PDF engine: 'fitz' or 'text'")
		showVersion     = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("KVITTO"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	args := fs.GetArgs()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: exactly one receipt PDF path is required\n")
		os.Exit(1)
	}
	pdfPath := args[0]

	if *toCSV == "" && *toXLSX == "" && !*createNew && *spreadsheetID == "" {
		slog.Error("Either --to-csv, --to-xlsx, --spreadsheet-id, or --create-new must be provided")
		os.Exit(1)
	}

	slog.Info("Processing receipt", "path", pdfPath)

	var (
		doc document.Document
		err error
	)
	switch *engine {
	case "fitz":
		doc, err = document.NewFitz(pdfPath)
	case "text":
		doc, err = document.NewTextPDF(pdfPath)
	default:
		slog.Error("Invalid engine", "engine", *engine, "valid", "fitz or text")
		os.Exit(1)
	}
	if err != nil {
		slog.Error("Failed to open PDF", "error", err)
		os.Exit(1)
	}
	defer doc.Close()

	slog.Info("Extracting items from PDF...")
	pairs, err := parsing.ExtractItems(doc)
	if err != nil {
		slog.Error("Failed to extract items", "error", err)
		os.Exit(1)
	}
	if len(pairs) == 0 {
		slog.Info("No items found in the receipt")
		return
	}

	slog.Info("Found items", "count", len(pairs))
	for _, pair := range pairs {
		slog.Info("Item", "name", pair.Item, "price", pair.Price)
	}

	fields := parsing.ScanFields(doc)

	var sink export.Sink
	switch {
	case *toCSV != "":
		sink = export.NewCSV(*toCSV)
	case *toXLSX != "":
		sink = export.NewXLSX(*toXLSX, sheetNameFor(*sheetName, fields))
	default:
		ctx := context.Background()

		slog.Info("Authenticating with Google Sheets...")
		creds, err := export.LoadCredentials(*credentialsFile, *tokenFile)
		if err != nil {
			slog.Error("Failed to load credentials", "error", err)
			os.Exit(1)
		}
		client, err := creds.Client(ctx)
		if err != nil {
			slog.Error("Failed to authenticate", "error", err)
			os.Exit(1)
		}
		service, err := export.NewSheetsService(ctx, client)
		if err != nil {
			slog.Error("Failed to create Sheets client", "error", err)
			os.Exit(1)
		}

		if *createNew {
			title := fmt.Sprintf("Receipt - %s", receiptName(pdfPath))
			sink = export.NewSheetsCreate(service, title)
		} else {
			sink = export.NewSheetsUpdate(service, *spreadsheetID, sheetNameFor(*sheetName, fields))
		}
	}

	if err := sink.Export(pairs, fields); err != nil {
		slog.Error("Export failed", "error", err)
		os.Exit(1)
	}
}

// sheetNameFor replaces the default tab name with the receipt date when one
// was found. An explicitly chosen name always wins.
func sheetNameFor(name string, fields parsing.ScalarFields) string {
	if name == export.DefaultSheetName && fields.Date != "" {
		slog.Info("Using receipt date as sheet name", "date", fields.Date)
		return fields.Date
	}
	return name
}

// receiptName is the PDF filename without its extension
func receiptName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
