package main

import (
	"context"
	"fmt"

	"skillmatch-backend/config"
	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/skill"
	"skillmatch-backend/internal/usecase"

	"github.com/spf13/cobra"
)

// profileFlags build the local user profile used by rank and analyze.
type profileFlags struct {
	skills []string
	resume string
}

func (p *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&p.skills, "skills", nil, "verified skills of the user")
	cmd.Flags().StringVar(&p.resume, "resume", "", "PDF resume; its skills are added to --skills")
}

// seed stores the profile under cliUserID in the in-memory profile store.
func (p *profileFlags) seed(ctx context.Context, store documentWriter, vocabulary []string) error {
	doc := domain.Document{}
	skills := append([]string(nil), p.skills...)
	if p.resume != "" {
		text, err := readResumeText(p.resume)
		if err != nil {
			return err
		}
		doc[domain.FieldResumeText] = text
		skills = append(skills, skill.NewExtractor(vocabulary).Extract(text)...)
	}
	doc[domain.FieldSkills] = domain.Patch{
		Union:    map[string][]string{domain.FieldSkills: skills},
		UnionKey: skill.Normalize,
	}.Apply(domain.Document{})[domain.FieldSkills]
	return store.Put(ctx, domain.CollectionUsers, cliUserID, doc)
}

func newRankCmd(opts *rootOptions) *cobra.Command {
	var postingType string
	profile := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank postings of one type against a set of skills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, ok := domain.ParsePostingType(postingType)
			if !ok {
				return fmt.Errorf("unknown posting type %q", postingType)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
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

			matchUC := usecase.NewMatchUsecase(view, usecase.NewPostingUsecase(view))
			results, err := matchUC.Recommend(ctx, cliUserID, t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&postingType, "type", "t", string(domain.PostingInternship), "internship or hackathon")
	profile.register(cmd)
	return cmd
}
