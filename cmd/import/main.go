package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/JORO-NIMO/rms/app/config"
	"github.com/JORO-NIMO/rms/app/database"
	"github.com/JORO-NIMO/rms/app/imports"
	"github.com/JORO-NIMO/rms/app/spreadsheet"
)

var (
	filePath = flag.String("file", "", "Spreadsheet to import (.xlsx)")
	mode     = flag.String("mode", "students", "Import mode: students or marks")
)

func main() {
	flag.Parse()
	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	importMode := imports.Mode(*mode)
	if importMode != imports.ModeStudents && importMode != imports.ModeMarks {
		color.Red("Invalid mode %q: use students or marks", *mode)
		os.Exit(2)
	}

	config.Init()
	db := config.GetDB()

	rows, err := spreadsheet.Decode(*filePath)
	if err != nil {
		color.Red("Could not read %s: %v", *filePath, err)
		os.Exit(1)
	}

	color.Cyan("Importing %d rows from %s (%s mode)", len(rows), *filePath, importMode)

	// The operator owns the source file, so there is no artifact to release.
	report := imports.NewIngester(database.NewStore(db)).Ingest(context.Background(), rows, importMode, nil)

	color.Green("Imported %d of %d rows", report.Successes, len(rows))

	if len(report.Errors) > 0 {
		color.Yellow("\nFailed rows")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Row", "Error"})
		for _, failure := range report.Errors {
			table.Append([]string{strconv.Itoa(failure.Row), failure.Error})
		}
		table.Render()
		os.Exit(1)
	}
}
