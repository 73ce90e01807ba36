package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/auth"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/csvimport"
	"github.com/MOHANRANGASRINIVAS/team-ATS/internal/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const previewLimit = 20

func main() {
	file := flag.String("file", "", "Path to the jobs CSV file")
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the recruitment API")
	token := flag.String("token", "", "Bearer token for the API")
	hrID := flag.String("hr", "", "HR user id to pre-assign to every imported job")
	dryRun := flag.Bool("dry-run", false, "Preview the parsed rows without uploading")
	flag.Parse()

	if *file == "" {
		color.Red("Missing -file argument")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *file, err)
	}

	preview := csvimport.Parse(string(data))
	if err := preview.Validate(); err != nil {
		var missing *csvimport.MissingColumnsError
		if errors.As(err, &missing) {
			color.Red("CSV is missing required columns: %s", strings.Join(missing.Missing, ", "))
			color.Yellow("Required columns: %s", strings.Join(csvimport.RequiredJobHeaders, ", "))
			os.Exit(1)
		}
		log.Fatalf("Error validating CSV: %v", err)
	}

	if *hrID != "" {
		for i := range preview.Rows {
			preview.Rows[i].AssignedHR = *hrID
		}
	}

	renderPreview(preview)

	if *dryRun {
		color.Yellow("Dry run, nothing uploaded")
		return
	}
	if *token == "" {
		color.Red("Missing -token argument")
		os.Exit(1)
	}

	client := store.New(*apiURL, &auth.Session{Token: *token})
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := client.BulkCreateJobs(ctx, csvimport.ToBulkPayload(preview.Rows))
	if err != nil {
		color.Red("Upload failed: %v", err)
		os.Exit(1)
	}
	color.Green("%s", result.Message)
}

func renderPreview(preview csvimport.Preview) {
	color.Cyan("\nParsed %d job rows", len(preview.Rows))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{"Row"}, preview.Headers...))

	for _, row := range preview.Rows {
		if row.ID >= previewLimit {
			color.Yellow("... and %d more rows", len(preview.Rows)-previewLimit)
			break
		}
		cells := []string{fmt.Sprintf("%d", row.ID)}
		for _, header := range preview.Headers {
			cells = append(cells, row.Get(header))
		}
		table.Append(cells)
	}

	table.Render()
}
