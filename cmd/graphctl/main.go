// SPDX-License-Identifier: MIT
// Command graphctl is a small demonstration CLI over the graphflow engine:
// it builds a single-relation bipartite graph from flags, wraps it as a
// one-relation heterograph, and runs one of the three samplers (uniform,
// neighbor, or layer) against that relation, printing the resulting
// NodeFlow's arrays. It holds no persistence layer; the graph lives only
// for the duration of the command.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphflow/arrayops"
	"github.com/katalvlaran/graphflow/bipartite"
	"github.com/katalvlaran/graphflow/heterograph"
	"github.com/katalvlaran/graphflow/sampler"
)

// exportNodeMapping round-trips a NodeFlow's node mapping through an Arrow
// array: this is the boundary spec.md's typed-array-runtime interface
// describes, letting a caller hand node_mapping to anything that consumes
// arrow.Array rather than graphflow's own IdArray.
func exportNodeMapping(backend arrayops.Backend, ids arrayops.IdArray) {
	arr := backend.ToArrow(ids)
	defer arr.Release()
	fmt.Printf("  arrow export: %d values, %s\n", arr.Len(), arr.DataType())
}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("graphctl failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphctl",
		Short: "Inspect and sample bipartite graphs from the command line",
	}
	root.AddCommand(newSampleCmd())
	return root
}

func newSampleCmd() *cobra.Command {
	var (
		edgesFlag   string
		numSrc      int64
		numDst      int64
		seedsFlag   string
		numHops     int
		expandFac   int
		layerSizes  string
		mode        string
		neighType   string
		selfLoop    bool
		rngSeed     int64
		probability string
		arrowExport bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run a sampler over an edge list read from --edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseEdges(edgesFlag)
			if err != nil {
				return err
			}
			g, err := bipartite.FromCOO(numSrc, numDst, row, col, bipartite.WithLogger(logger))
			if err != nil {
				return err
			}

			// Wrap the single relation as a one-relation heterograph, then
			// hand the sampler its relation back out: the samplers operate
			// on *bipartite.Graph directly, but construction still goes
			// through HeteroGraph so the meta-graph's shape validation runs.
			meta := heterograph.NewMetaGraph(2, []int{0}, []int{1})
			hg, err := heterograph.New(meta, []*bipartite.Graph{g})
			if err != nil {
				return err
			}
			rel, err := hg.RelationGraph(0)
			if err != nil {
				return err
			}

			seeds, err := parseUints(seedsFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			var backend arrayops.Backend
			if arrowExport {
				backend = arrayops.NewArrowBackend(nil)
			}

			switch mode {
			case "uniform":
				flows, err := sampler.UniformSampling(ctx, rel, seeds, 0, len(seeds), 1, expandFac, numHops, neighType, selfLoop, rngSeed)
				if err != nil {
					return err
				}
				for _, f := range flows {
					printNodeFlow(f)
					if backend != nil {
						exportNodeMapping(backend, f.NodeMapping)
					}
				}
			case "neighbor":
				prob, err := parseFloats(probability)
				if err != nil {
					return err
				}
				flows, err := sampler.NeighborSampling(ctx, rel, seeds, 0, len(seeds), 1, expandFac, numHops, neighType, selfLoop, prob, rngSeed)
				if err != nil {
					return err
				}
				for _, f := range flows {
					printNodeFlow(f)
					if backend != nil {
						exportNodeMapping(backend, f.NodeMapping)
					}
				}
			case "layer":
				sizes, err := parseInts(layerSizes)
				if err != nil {
					return err
				}
				flows, err := sampler.LayerSampling(ctx, rel, seeds, 0, len(seeds), 1, sizes, neighType, rngSeed)
				if err != nil {
					return err
				}
				for _, f := range flows {
					printNodeFlow(&f.NodeFlow)
					fmt.Printf("  probabilities: %v\n", f.Probabilities())
					if backend != nil {
						exportNodeMapping(backend, f.NodeFlow.NodeMapping)
					}
				}
			default:
				return fmt.Errorf("graphctl: unknown mode %q (want \"uniform\", \"neighbor\", or \"layer\")", mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&edgesFlag, "edges", "", `edge list as "src:dst,src:dst,..."`)
	cmd.Flags().Int64Var(&numSrc, "num-src", 0, "number of source vertices")
	cmd.Flags().Int64Var(&numDst, "num-dst", 0, "number of destination vertices")
	cmd.Flags().StringVar(&seedsFlag, "seeds", "", "comma-separated seed vertex ids")
	cmd.Flags().IntVar(&numHops, "num-hops", 1, "neighbor sampler hop count")
	cmd.Flags().IntVar(&expandFac, "expand-factor", 5, "neighbor sampler per-hop expansion bound")
	cmd.Flags().StringVar(&layerSizes, "layer-sizes", "", "comma-separated layer sampler sizes, deepest first")
	cmd.Flags().StringVar(&mode, "mode", "uniform", `sampler to run: "uniform", "neighbor", or "layer"`)
	cmd.Flags().StringVar(&neighType, "neigh-type", "in", `neighbor direction: "in" or "out"`)
	cmd.Flags().BoolVar(&selfLoop, "add-self-loop", false, "insert a self-loop per expanded vertex")
	cmd.Flags().Int64Var(&rngSeed, "rng-seed", 1, "base RNG seed")
	cmd.Flags().StringVar(&probability, "probability", "", "comma-separated per-edge weight for neighbor mode; empty means uniform")
	cmd.Flags().BoolVar(&arrowExport, "arrow-export", false, "also export each flow's node_mapping through the Arrow backend")

	return cmd
}

func printNodeFlow(f *sampler.NodeFlow) {
	fmt.Printf("node_mapping:  %v\n", f.NodeMapping.Vals)
	fmt.Printf("edge_mapping:  %v\n", f.EdgeMapping.Vals)
	fmt.Printf("layer_offsets: %v\n", f.LayerOffsets.Vals)
	fmt.Printf("flow_offsets:  %v\n", f.FlowOffsets.Vals)
}

func parseEdges(s string) (arrayops.IdArray, arrayops.IdArray, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return arrayops.IdArray{Bits: arrayops.Bits64}, arrayops.IdArray{Bits: arrayops.Bits64}, nil
	}
	pairs := strings.Split(s, ",")
	row := make([]uint64, 0, len(pairs))
	col := make([]uint64, 0, len(pairs))
	for _, p := range pairs {
		parts := strings.SplitN(strings.TrimSpace(p), ":", 2)
		if len(parts) != 2 {
			return arrayops.IdArray{}, arrayops.IdArray{}, fmt.Errorf("graphctl: bad edge %q, want src:dst", p)
		}
		s, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return arrayops.IdArray{}, arrayops.IdArray{}, err
		}
		d, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return arrayops.IdArray{}, arrayops.IdArray{}, err
		}
		row = append(row, s)
		col = append(col, d)
	}
	return arrayops.IdArray{Bits: arrayops.Bits64, Vals: row}, arrayops.IdArray{Bits: arrayops.Bits64, Vals: col}, nil
}

func parseUints(s string) ([]uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
