package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/midway/internal/assets"
	"github.com/vovakirdan/midway/internal/config"
	"github.com/vovakirdan/midway/internal/games/midway"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and sprites",
	Long: `Load the configuration the games would use, apply every edition and the
difficulty preset, and report problems without starting a game.

Examples:
  midway check
  midway check --config ./my-midway.yaml --assets ./sprites.yaml
  midway check --difficulty hard`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom midway.yaml")
	checkCmd.Flags().StringVar(&flagAssets, "assets", "", "Path to custom sprite catalog YAML")
	checkCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runCheck(_ *cobra.Command, _ []string) error {
	applyGameFlags()

	var provider assets.Provider = assets.Default()
	if flagAssets != "" {
		cat, err := assets.Load(flagAssets)
		if err != nil {
			return err
		}
		provider = cat
	}

	var problems []error
	for _, ed := range midway.Editions {
		cfg, err := midway.LoadConfig(ed.Variant)
		if err == nil {
			err = cfg.Validate()
		}
		if err == nil {
			_, err = assets.Resolve(provider, cfg.AssetIDs())
		}
		if err != nil {
			fmt.Printf("  FAIL  %s\n", ed.ID)
			problems = append(problems, fmt.Errorf("%s: %w", ed.ID, err))
			continue
		}
		fmt.Printf("  ok    %s\n", ed.ID)
	}

	if len(problems) > 0 {
		return errors.Join(problems...)
	}
	source := "first " + config.ConfigFileName + " on the search path"
	if flagConfig != "" {
		source = flagConfig
	}
	fmt.Printf("\nConfiguration valid (%s).\n", source)
	return nil
}
