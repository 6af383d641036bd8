package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/schemas"
)

var validateInput string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document JSON file",
	Long:  "Checks a resume document file against the document schema and reports every violation.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume document JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	if err := schemas.ValidateDocument(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Printf("Document is invalid (%d violations):\n", len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
			}
			return fmt.Errorf("validation failed")
		}
		return err
	}

	fmt.Println("Document is valid")
	return nil
}
