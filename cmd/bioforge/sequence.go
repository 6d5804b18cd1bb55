package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/bioforge/pkg/util"
)

// sequenceInput reads the sequence from -i (a plain sequence file) or the first argument
func sequenceInput(cmd *cobra.Command, args []string) (string, error) {
	path, _ := cmd.Flags().GetString("input")
	switch {
	case path != "":
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("sequence input: %w", err)
		}
		return util.LoadInputSeq(path), nil
	case len(args) > 0:
		return strings.TrimSpace(args[0]), nil
	default:
		return "", errors.New("a sequence argument or -i file is required")
	}
}

func sequenceCmd(use, short string, run func(cmd *cobra.Command, seq string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [sequence]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := sequenceInput(cmd, args)
			if err != nil {
				return err
			}
			return run(cmd, seq)
		},
	}
	cmd.Flags().StringP("input", "i", "", "read the sequence from a file")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	return sequenceCmd("validate", "Check a DNA sequence for invalid bases, homopolymers, GC and codons",
		func(cmd *cobra.Command, seq string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.Validate(seq))
		})
}

func (a *app) predictCmd() *cobra.Command {
	var embedding []float32
	cmd := sequenceCmd("predict", "Predict the function of a DNA sequence",
		func(cmd *cobra.Command, seq string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.PredictFunction(seq, embedding))
		})
	cmd.Flags().Float32SliceVar(&embedding, "embedding", nil, "protein embedding, comma separated")
	return cmd
}

func (a *app) screenCmd() *cobra.Command {
	return sequenceCmd("screen", "Screen a bare DNA sequence for safety concerns",
		func(cmd *cobra.Command, seq string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.ScreenSequence(seq))
		})
}

func (a *app) toxicityCmd() *cobra.Command {
	return sequenceCmd("toxicity", "Score the toxicity of a protein sequence",
		func(cmd *cobra.Command, protein string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.PredictToxicity(protein))
		})
}

func (a *app) foldCmd() *cobra.Command {
	return sequenceCmd("fold", "Estimate folding properties of a protein sequence",
		func(cmd *cobra.Command, protein string) error {
			return writeJSON(cmd.OutOrStdout(), a.engine.FoldProtein(protein))
		})
}
