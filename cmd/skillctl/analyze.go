package main

import (
	"fmt"

	"skillmatch-backend/config"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/usecase"
	"skillmatch-backend/pkg/gemini"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	var postingType, postingID string
	profile := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Ask the model for an eligibility analysis of one posting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.GeminiAPIKey == "" {
				return gemini.ErrNotConfigured
			}
			ctx := cmd.Context()
			log := opts.logger(cmd.ErrOrStderr())

			store, err := opts.openStore(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer store.close()

			view := newProfileOverlay(store)
			if err := profile.seed(ctx, view.profiles, cfg.SkillVocabulary); err != nil {
				return err
			}

			client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return err
			}

			analysisUC := usecase.NewAnalysisUsecase(view, client, cfg.AnalysisResumeMaxChars, log)
			result := analysisUC.Evaluate(ctx, domain.AnalysisRequest{
				UserID:    cliUserID,
				PostingID: postingID,
				Type:      postingType,
			})

			fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			if !result.OK() {
				return fmt.Errorf("analysis not produced: %s", result.Kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&postingType, "type", "t", string(domain.PostingInternship), "internship or hackathon")
	cmd.Flags().StringVar(&postingID, "id", "", "posting id")
	_ = cmd.MarkFlagRequired("id")
	profile.register(cmd)
	return cmd
}
