// Command sheetbind imports spreadsheet rows as records and prints them.
//
//	sheetbind import people.xlsx --field ID --field "FirstName=First Name" --format html
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "sheetbind",
		Short:         "Bind spreadsheet rows to records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newImportCmd())

	if err := root.Execute(); err != nil {
		log.Printf("sheetbind: %v", err)
		os.Exit(1)
	}
}
