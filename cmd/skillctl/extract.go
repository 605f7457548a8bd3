package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"skillmatch-backend/internal/skill"
	"skillmatch-backend/pkg/pdftext"
	"skillmatch-backend/pkg/security"

	"github.com/spf13/cobra"
)

type extractResult struct {
	File      string   `json:"file"`
	Skills    []string `json:"skills"`
	TextChars int      `json:"textChars"`
}

func newExtractCmd(_ *rootOptions) *cobra.Command {
	var vocabulary []string

	cmd := &cobra.Command{
		Use:   "extract <resume.pdf>",
		Short: "Print the skills found in a PDF resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readResumeText(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), extractResult{
				File:      args[0],
				Skills:    skill.NewExtractor(vocabulary).Extract(text),
				TextChars: len([]rune(text)),
			})
		},
	}

	cmd.Flags().StringSliceVar(&vocabulary, "vocabulary", nil, "skills to look for (default is the built-in vocabulary)")
	return cmd
}

// readResumeText applies the same checks as the upload endpoint.
func readResumeText(path string) (string, error) {
	if err := security.ValidateFileExtension(path); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if int64(len(data)) > security.MaxResumeBytes {
		return "", fmt.Errorf("%s: file too large", path)
	}
	if res := security.ValidateResume(path, data, http.DetectContentType(data)); !res.Valid {
		return "", fmt.Errorf("%s: %s", path, res.Error)
	}
	text, err := pdftext.NewExtractor().ExtractText(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return strings.TrimSpace(text), nil
}
