// Command percwalk runs percolation + CTRW diffusion simulations from
// the command line and indexes their artifacts.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percwalk/sim"
	"github.com/katalvlaran/percwalk/store"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "percwalk",
		Short: "Anomalous diffusion on percolated 2-D lattices",
		Long: `percwalk grows a site-percolation cluster on a square or honeycomb
lattice, simulates CTRW-subordinated random walks on the occupied sites
and computes MSD / ergodicity-breaking statistics.

Artifacts are raw little-endian float64 dumps (.cluster, .walks, .data);
an optional SQLite index keeps run configurations and summaries.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newShowCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("percwalk version %s\n", version)
		},
	}
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		outPrefix  string
		indexPath  string
	)

	cfg := sim.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and write its artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				buf, err := os.ReadFile(configPath)
				if err != nil {
					return err
				}
				// Flags changed on the command line override the file.
				fileCfg := cfg
				if err := yaml.Unmarshal(buf, &fileCfg); err != nil {
					return fmt.Errorf("parse %s: %w", configPath, err)
				}
				applyUnchanged(cmd, &fileCfg, cfg)
				cfg = fileCfg
			}

			res, err := sim.Run(cfg)
			if err != nil {
				return err
			}

			arts, err := store.SaveResult(outPrefix, res)
			if err != nil {
				return err
			}

			fmt.Printf("occupied sites:  %d\n", res.Occupancy.OccupiedCount())
			fmt.Printf("largest cluster: %d\n", res.Occupancy.LargestClusterSize())
			fmt.Printf("seed:            %d\n", res.Config.Seed)
			fmt.Printf("cluster saved to %s\n", arts.Cluster)
			if arts.Walks != "" {
				fmt.Printf("walks saved to   %s\n", arts.Walks)
			}
			if arts.Data != "" {
				fmt.Printf("analysis saved to %s\n", arts.Data)
			}

			if indexPath == "" {
				return nil
			}
			rs := store.NewRunStore(indexPath)
			if err := rs.Init(cmd.Context()); err != nil {
				return err
			}
			defer rs.Close()
			run, err := rs.SaveRun(cmd.Context(), store.Run{
				Config:         res.Config,
				OccupiedSites:  res.Occupancy.OccupiedCount(),
				LargestCluster: res.Occupancy.LargestClusterSize(),
				Artifacts:      arts,
			})
			if err != nil {
				return err
			}
			fmt.Printf("indexed as run   %s\n", run.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVarP(&outPrefix, "out", "o", "percwalk", "Output path prefix for artifacts")
	cmd.Flags().StringVar(&indexPath, "index", "", "SQLite run index path (optional)")

	cmd.Flags().IntVar(&cfg.GridSize, "grid-size", cfg.GridSize, "Linear lattice size L")
	cmd.Flags().StringVar(&cfg.Topology, "topology", cfg.Topology, "Lattice topology: square|honeycomb")
	cmd.Flags().Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "Occupation fraction in (0,1]")
	cmd.Flags().IntVar(&cfg.Walks, "walks", cfg.Walks, "Number of independent walks")
	cmd.Flags().IntVar(&cfg.WalkLength, "walk-length", cfg.WalkLength, "Physical steps per walk")
	cmd.Flags().Float64Var(&cfg.Beta, "beta", cfg.Beta, "CTRW waiting-time rate (0 disables)")
	cmd.Flags().Float64Var(&cfg.Tau0, "tau0", cfg.Tau0, "Base waiting-time scale")
	cmd.Flags().Float64Var(&cfg.Noise, "noise", cfg.Noise, "Gaussian localization noise std")
	cmd.Flags().StringVar(&cfg.WalkMode, "walk-mode", cfg.WalkMode, "Start-site pool: any|largest")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker count (0 = NumCPU)")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (negative = nondeterministic)")

	return cmd
}

// applyUnchanged copies flag-set values over the file configuration for
// every flag the user passed explicitly.
func applyUnchanged(cmd *cobra.Command, fileCfg *sim.Config, flagCfg sim.Config) {
	set := map[string]func(){
		"grid-size":   func() { fileCfg.GridSize = flagCfg.GridSize },
		"topology":    func() { fileCfg.Topology = flagCfg.Topology },
		"threshold":   func() { fileCfg.Threshold = flagCfg.Threshold },
		"walks":       func() { fileCfg.Walks = flagCfg.Walks },
		"walk-length": func() { fileCfg.WalkLength = flagCfg.WalkLength },
		"beta":        func() { fileCfg.Beta = flagCfg.Beta },
		"tau0":        func() { fileCfg.Tau0 = flagCfg.Tau0 },
		"noise":       func() { fileCfg.Noise = flagCfg.Noise },
		"walk-mode":   func() { fileCfg.WalkMode = flagCfg.WalkMode },
		"workers":     func() { fileCfg.Workers = flagCfg.Workers },
		"seed":        func() { fileCfg.Seed = flagCfg.Seed },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func newShowCmd() *cobra.Command {
	var indexPath string
	cmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show indexed runs (all, or one by id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rs := store.NewRunStore(indexPath)
			if err := rs.Init(cmd.Context()); err != nil {
				return err
			}
			defer rs.Close()

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")

			if len(args) == 1 {
				run, ok, err := rs.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("run %s not found", args[0])
				}
				return enc.Encode(run)
			}

			runs, err := rs.ListRuns(cmd.Context())
			if err != nil {
				return err
			}
			return enc.Encode(runs)
		},
	}
	cmd.Flags().StringVar(&indexPath, "index", "percwalk.db", "SQLite run index path")
	return cmd
}
