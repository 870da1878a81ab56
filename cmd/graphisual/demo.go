// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphisual/builder"
	"github.com/katalvlaran/graphisual/core"
	"github.com/katalvlaran/graphisual/ctxlog"
	"github.com/katalvlaran/graphisual/engine"
	"github.com/katalvlaran/graphisual/playback"
	"github.com/katalvlaran/graphisual/surface"
	"github.com/katalvlaran/graphisual/tool"
)

// demoClock overrides the playback clock; nil means wall time.
var demoClock playback.Clock

func demoCmd() *cobra.Command {
	var (
		algo     string
		speed    int
		from, to string
		kind     string
		shape    string
		size     int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a preset graph and play an algorithm over it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			logger := ctxlog.FromContext(cmd.Context())
			out := cmd.OutOrStdout()

			alg, err := engine.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			if alg == engine.None {
				return engine.ErrNoAlgorithm
			}
			ek, err := core.ParseEdgeKind(kind)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("speed") {
				speed = int(cfg.Speed())
			}

			con, err := builder.Preset(shape, size)
			if err != nil {
				return err
			}
			bp, err := builder.Build([]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.IntRangeWeightFn(1, 9)),
			}, con)
			if err != nil {
				return err
			}

			g := core.NewGraph()
			term := surface.NewTerminal(out)
			sched := playback.New(term, playback.WithClock(demoClock), playback.WithLogger(logger))
			weights := make(map[string]float64, len(bp.Edges))
			opts := append(cfg.ToolOptions(),
				tool.WithLogger(logger),
				tool.WithPrompter(func(src, dst string, _ float64) (float64, bool) {
					w, ok := weights[src+"|"+dst]

					return w, ok
				}),
			)
			ctl := tool.New(g, sched, term, opts...)
			defer ctl.Close()
			unbind := surface.Bind(g, term)
			defer unbind()

			fmt.Fprintln(out, brand.Sprintf("drawing %s graph", shape))
			ids, err := drawBlueprint(ctl, g, bp, ek, weights)
			if err != nil {
				return err
			}
			if to == "" {
				to = ids[len(ids)-1]
			}
			start, end, err := anchorPositions(g, ids, from, to)
			if err != nil {
				return err
			}

			idle := make(chan playback.Status, 1)
			stop := sched.OnStatus(func(st playback.Status) {
				if !st.Running {
					idle <- st
				}
			})
			defer stop()

			if err := ctl.SetSpeed(speed); err != nil {
				return err
			}
			if err := ctl.SelectAlgorithm(alg); err != nil {
				return err
			}
			fmt.Fprintln(out, brand.Sprintf("running %s", alg.Title()))
			if err := ctl.Click(start); err != nil {
				return err
			}
			if alg.Anchors() == 2 {
				if err := ctl.Click(end); err != nil {
					return err
				}
			}

			var st playback.Status
			select {
			case st = <-idle:
			case <-cmd.Context().Done():
				ctl.Cancel()
				st = <-idle
			}

			printSummary(cmd, ctl.LastTrace(), st)

			return nil
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "dijkstra", "Algorithm: bfs, dfs or dijkstra")
	cmd.Flags().IntVar(&speed, "speed", int(playback.DefaultSpeed), "Delay between steps in ms (100..1000, step 100)")
	cmd.Flags().StringVar(&from, "from", "n1", "Start node ID")
	cmd.Flags().StringVar(&to, "to", "", "End node ID for dijkstra (default: last node)")
	cmd.Flags().StringVar(&shape, "shape", "sample", "Graph preset: "+strings.Join(builder.PresetNames(), ", "))
	cmd.Flags().IntVar(&size, "n", 6, "Preset size (grid uses n×n)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed for random presets and weights")
	cmd.Flags().StringVar(&kind, "kind", "weighted", "Edge kind: undirected, directed or weighted")

	return cmd
}

// drawBlueprint draws bp through the controller, as a user would: one click
// per node, then one drag per edge. It returns the node IDs in blueprint order.
func drawBlueprint(ctl *tool.Controller, g *core.Graph, bp *builder.Blueprint, kind core.EdgeKind, weights map[string]float64) ([]string, error) {
	if err := ctl.ActivateTool(tool.ModeDrawNode); err != nil {
		return nil, err
	}
	for _, p := range bp.Nodes {
		if err := ctl.Click(p); err != nil {
			return nil, err
		}
	}
	ids := nodeIDs(g)
	if len(ids) != len(bp.Nodes) {
		return nil, fmt.Errorf("%w: drew %d of %d nodes", builder.ErrConstructFailed, len(ids), len(bp.Nodes))
	}
	if err := ctl.SelectEdgeKind(kind); err != nil {
		return nil, err
	}
	for _, e := range bp.Edges {
		weights[ids[e.From]+"|"+ids[e.To]] = e.Weight
		if err := ctl.Drag(bp.Nodes[e.From], bp.Nodes[e.To]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func nodeIDs(g *core.Graph) []string {
	nodes := g.Nodes()
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}

	return ids
}

func anchorPositions(g *core.Graph, ids []string, from, to string) (core.Point, core.Point, error) {
	a, ok := g.Node(from)
	if !ok {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: start %q (have %s)", engine.ErrAnchorNotFound, from, strings.Join(ids, ", "))
	}
	b, ok := g.Node(to)
	if !ok {
		return core.Point{}, core.Point{}, fmt.Errorf("%w: end %q (have %s)", engine.ErrAnchorNotFound, to, strings.Join(ids, ", "))
	}

	return a.Pos, b.Pos, nil
}

func printSummary(cmd *cobra.Command, tr *engine.Trace, st playback.Status) {
	out := cmd.OutOrStdout()
	if tr == nil {
		return
	}
	fmt.Fprintln(out)
	if st.Cancelled {
		fmt.Fprintln(out, bad.Sprintf("cancelled after %d of %d steps", st.Applied, st.Total))

		return
	}
	fmt.Fprintf(out, "%s %s\n", subtle.Sprint("visited:"), strings.Join(tr.Visited(), " → "))
	if tr.Algorithm.Anchors() < 2 {
		return
	}
	if !tr.Found {
		fmt.Fprintln(out, bad.Sprintf("no path from %s to %s", tr.Start, tr.End))

		return
	}
	fmt.Fprintf(out, "%s %s %s\n", subtle.Sprint("path:"), good.Sprint(strings.Join(tr.Path, " → ")), subtle.Sprintf("(cost %g)", tr.Cost))
}
