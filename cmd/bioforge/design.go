package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liserjrqlxue/bioforge/pkg/chart"
	"github.com/liserjrqlxue/bioforge/pkg/design"
	"github.com/liserjrqlxue/bioforge/pkg/simulate"
)

func loadDesigns(paths []string) ([]design.Design, error) {
	var designs []design.Design
	for _, path := range paths {
		ds, err := design.LoadFile(path)
		if err != nil {
			return nil, err
		}
		designs = append(designs, ds...)
	}
	return designs, nil
}

// plotPath inserts the design index before the extension when a file holds several designs
func plotPath(path string, i, n int) string {
	if n == 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s.%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func simulationFlags(cmd *cobra.Command, plot *string) {
	flags := cmd.Flags()
	flags.Int("time-points", simulate.DefaultTimePoints, "number of time points")
	flags.String("environment", string(simulate.Standard), "standard, nutrient-rich, minimal or stress")
	flags.String("host", string(simulate.EColi), "ecoli, yeast, mammalian or plant")
	flags.Float64("temperature", simulate.DefaultTemperature, "temperature in Celsius")
	flags.StringVar(plot, "plot", "", "write the time series chart to this file (png, svg, pdf)")
}

func (a *app) safetyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "safety design.yaml...",
		Short: "Assess the biosafety of designs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			designs, err := loadDesigns(args)
			if err != nil {
				return err
			}
			for i := range designs {
				if err := writeJSON(cmd.OutOrStdout(), a.engine.AssessSafety(&designs[i])); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) simulateCmd() *cobra.Command {
	var plot string
	cmd := &cobra.Command{
		Use:   "simulate design.yaml",
		Short: "Simulate expression dynamics of each design in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			designs, err := loadDesigns(args)
			if err != nil {
				return err
			}
			params, err := a.cfg.Parameters()
			if err != nil {
				return err
			}
			for i := range designs {
				r := a.engine.Simulate(&designs[i], params)
				if plot != "" {
					p, err := chart.Simulation(designs[i].Name, &r.TimeSeries)
					if err != nil {
						return err
					}
					if err := chart.Save(plotPath(plot, i, len(designs)), p); err != nil {
						return err
					}
				}
				if err := writeJSON(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	simulationFlags(cmd, &plot)
	return cmd
}

func (a *app) pathwayCmd() *cobra.Command {
	var plot string
	cmd := &cobra.Command{
		Use:   "pathway design.yaml...",
		Short: "Simulate designs chained into a metabolic pathway, in argument order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			designs, err := loadDesigns(args)
			if err != nil {
				return err
			}
			params, err := a.cfg.Parameters()
			if err != nil {
				return err
			}
			r := a.engine.SimulatePathway(designs, params)
			if plot != "" {
				p, err := chart.Pathway(fmt.Sprintf("pathway of %d designs", len(designs)), &r.TimeSeries)
				if err != nil {
					return err
				}
				if err := chart.Save(plot, p); err != nil {
					return err
				}
			}
			return writeJSON(cmd.OutOrStdout(), r)
		},
	}
	simulationFlags(cmd, &plot)
	return cmd
}
