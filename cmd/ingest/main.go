package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tirasundara/ingestion-service/internal/domain"
	"github.com/tirasundara/ingestion-service/internal/report"
	"github.com/tirasundara/ingestion-service/internal/repository"
	"github.com/tirasundara/ingestion-service/internal/schema"
	"github.com/tirasundara/ingestion-service/internal/service"
	"github.com/tirasundara/ingestion-service/internal/workbook"
	"github.com/tirasundara/ingestion-service/pkg/fileutil"
)

const defaultDateFormat = "2006-01-02"

func main() {
	// Command-line flags
	var (
		files        string
		required     string
		headerRow    int
		validateOnly bool
		concurrent   bool
		dateFormat   string
		outputFormat string
		outputFile   string
		prettyPrint  bool
	)

	flag.StringVar(&files, "files", "", "Comma-separated paths to xlsx or CSV files")
	flag.StringVar(&required, "required", "", "Comma-separated required header names (validate-only mode; defaults to the transaction columns)")
	flag.IntVar(&headerRow, "header-row", 1, "1-based row number holding the column headers")
	flag.BoolVar(&validateOnly, "validate-only", false, "Only validate headers, do not import rows")
	flag.BoolVar(&concurrent, "concurrent", false, "Parse rows concurrently")
	flag.StringVar(&dateFormat, "date-format", defaultDateFormat, "Go layout for parsing the date column")
	flag.StringVar(&outputFormat, "format", "json", "Output format: json only for now")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")

	flag.Parse()

	// Validate required flags
	if files == "" {
		exitWithError("At least one input file path is required")
	}

	requiredHeaders := schema.Transactions.Required
	if required != "" {
		requiredHeaders = splitList(required)
	}

	var result domain.IngestResult
	var err error

	if validateOnly {
		result, err = validateFiles(splitList(files), requiredHeaders, headerRow)
	} else {
		result, err = ingestFiles(splitList(files), dateFormat, headerRow, concurrent)
	}
	if err != nil {
		exitWithError(err.Error())
	}

	// Format the output
	var formatter report.OutputFormatter
	switch outputFormat {
	case "json":
		formatter = report.NewJSONFormatter(prettyPrint)

	// Can add other formatters later: csv, txt, etc
	default:
		exitWithError(fmt.Sprintf("Unsupported output format: %s", outputFormat))
		return
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}

		err := os.WriteFile(outputFile, output, 0644)
		if err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}

	} else {

		// Write output to stdout
		fmt.Println(string(output))
	}
}

// validateFiles checks that every file's first sheet carries the required
// headers and reports the position of each
func validateFiles(paths []string, requiredHeaders []string, headerRow int) (domain.IngestResult, error) {
	var result domain.IngestResult

	for _, path := range paths {
		wb, err := decodeFile(path)
		if err != nil {
			return domain.IngestResult{}, err
		}

		positions, err := workbook.ValidateFirstSheet(wb, requiredHeaders, headerRow)
		if err != nil {
			return domain.IngestResult{}, fmt.Errorf("%s: %w", path, err)
		}

		result.Sources = append(result.Sources, domain.SourceReport{
			SourceID: sourceID(path),
			Columns:  positions,
		})
	}

	return result, nil
}

// ingestFiles imports transaction rows from every file's first sheet
func ingestFiles(paths []string, dateFormat string, headerRow int, concurrent bool) (domain.IngestResult, error) {
	repos := make(map[string]domain.TransactionRepository)

	for _, path := range paths {
		wb, err := decodeFile(path)
		if err != nil {
			return domain.IngestResult{}, err
		}
		if wb.SheetCount() == 0 {
			return domain.IngestResult{}, fmt.Errorf("%s: workbook contains no sheets", path)
		}

		id := sourceID(path)
		repos[id] = repository.NewSheetTransactionRepository(wb.Sheet(1), id, dateFormat, headerRow)
	}

	if len(repos) == 0 {
		return domain.IngestResult{}, fmt.Errorf("no valid input files provided")
	}

	ingestionService := service.NewIngestionService(repos, concurrent)
	return ingestionService.Ingest()
}

func decodeFile(path string) (domain.Workbook, error) {
	buf, err := fileutil.ReadBuffer(path)
	if err != nil {
		return nil, err
	}

	wb, err := workbook.Decode(buf, fileutil.DetectFormat(path, buf))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return wb, nil
}

// sourceID derives a source identifier from the file name
func sourceID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
