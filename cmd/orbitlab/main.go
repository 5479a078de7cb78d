package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/orbitlab/internal/engine"
	"github.com/san-kum/orbitlab/internal/export"
	"github.com/san-kum/orbitlab/internal/gui"
	"github.com/san-kum/orbitlab/internal/metrics"
	"github.com/san-kum/orbitlab/internal/scenario"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	scenarioFile string
	presetName   string
	dt           float64
	duration     float64
	svgPath      string
	canvasW      float64
	canvasH      float64
)

// main registers commands and flags; with no subcommand the interactive
// GUI opens. Exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "interactive 2D n-body gravity sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPreset()
			if err != nil {
				return err
			}
			gui.Run(p)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory for run records")
	rootCmd.PersistentFlags().StringVar(&scenarioFile, "scenario", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "solar-system", "built-in preset name")
	rootCmd.PersistentFlags().Float64Var(&canvasW, "width", 1200, "canvas width used for preset layout")
	rootCmd.PersistentFlags().Float64Var(&canvasH, "height", 700, "canvas height used for preset layout")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario headlessly and record diagnostics",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 1.0, "timestep in simulated time units")
	runCmd.Flags().Float64Var(&duration, "time", 600, "duration in simulated time units")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG snapshot of the final state to this path")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a scenario evolve in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPreset()
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scenario.List() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadPreset() (*scenario.Preset, error) {
	if scenarioFile != "" {
		return scenario.Load(scenarioFile)
	}
	p := scenario.ByName(presetName, canvasW, canvasH)
	if p == nil {
		return nil, fmt.Errorf("unknown preset %q (try: orbitlab presets)", presetName)
	}
	return p, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	p, err := loadPreset()
	if err != nil {
		return err
	}

	world := engine.NewWorld()
	world.Bodies = p.Bodies
	world.SetTimeSpeed(p.TimeSpeed)

	ms := []metrics.Metric{
		metrics.NewEnergyDrift(),
		metrics.NewMomentumDrift(),
		metrics.NewMassDrift(),
		metrics.NewMergers(),
	}
	obs := make([]engine.Observer, len(ms))
	for i, m := range ms {
		obs[i] = m
	}

	result, err := world.Run(context.Background(), duration, dt, obs...)
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	vals := make(map[string]float64, len(ms))
	for _, m := range ms {
		vals[m.Name()] = m.Value()
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(p.Name, dt, duration, result, vals)
	if err != nil {
		return err
	}

	if svgPath != "" {
		svg := export.WorldSVG(world.Bodies, int(canvasW), int(canvasH))
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "bodies\t%d\n", world.Count())
	fmt.Fprintf(w, "energy drift\t%.3e\n", result.EnergyDrift)
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.6g\n", m.Name(), m.Value())
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tSTEPS\tBODIES\tENERGY DRIFT\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3e\t%s\n",
			r.ID, r.Scenario, r.Steps, r.FinalBodies, r.EnergyDrift,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
