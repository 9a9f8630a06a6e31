// Command lvpath computes single-source shortest paths over a weighted
// directed graph and prints the distances and, optionally, one route.
//
// Usage:
//
//	lvpath [-graph file] [-from A] [-to D] [-max-distance N] [-check]
//	lvpath version
//
// Without -graph the built-in six-node sample graph is used with start A and
// target D. Flags fall back to LVPATH_* environment variables (see
// internal/config), then to the start and target stored in the document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
	"github.com/katalvlaran/lvpath/internal/config"
	"github.com/katalvlaran/lvpath/route"
)

// Build metadata, set with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "lvpath: ", 0)

	if len(args) > 0 && args[0] == "version" {
		fmt.Fprintf(stdout, "lvpath %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
		return exitOK
	}

	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		logger.Println(err)
		return exitUsage
	}

	doc, err := loadDocument(cfg.GraphPath)
	if err != nil {
		logger.Println(err)
		return exitError
	}
	cfg.Defaults(doc.Start, doc.Target)
	if err = cfg.Validate(); err != nil {
		logger.Println(err)
		return exitUsage
	}

	g, err := doc.ToGraph()
	if err != nil {
		logger.Println(err)
		return exitError
	}

	var opts []dijkstra.Option
	if cfg.CheckWeights {
		opts = append(opts, dijkstra.WithWeightCheck())
	}
	if cfg.MaxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(cfg.MaxDistance))
	}

	dist, prev, err := dijkstra.Dijkstra(g, cfg.From, opts...)
	if err != nil {
		logger.Println(err)
		return exitError
	}

	printDistances(stdout, g, cfg.From, dist)
	if cfg.To != "" {
		printRoute(stdout, g, cfg, dist, prev)
	}

	return exitOK
}

// loadDocument reads path, or returns the sample graph when path is empty.
func loadDocument(path string) (*graphio.Document, error) {
	if path == "" {
		doc := graphio.FromGraph("sample", builder.SampleGraph())
		doc.Start, doc.Target = "A", "D"

		return doc, nil
	}

	return graphio.Load(path)
}

// printDistances lists every known node in ID order.
func printDistances(w io.Writer, g core.Graph, from string, dist dijkstra.Distances) {
	nodes := g.Nodes()
	if i := sort.SearchStrings(nodes, from); i == len(nodes) || nodes[i] != from {
		nodes = append(nodes, from)
		sort.Strings(nodes)
	}

	fmt.Fprintf(w, "Shortest distances from %s:\n", from)
	for _, v := range nodes {
		if dist.Reachable(v) {
			fmt.Fprintf(w, "  Node %s: %d\n", v, dist[v])
		} else {
			fmt.Fprintf(w, "  Node %s: unreachable\n", v)
		}
	}
}

// printRoute prints the cheapest route to cfg.To, plus the fewest-hops route
// when that one is shorter in edges and within the distance cap.
func printRoute(w io.Writer, g core.Graph, cfg *config.Config, dist dijkstra.Distances, prev dijkstra.Predecessors) {
	from, to := cfg.From, cfg.To
	path := route.Reconstruct(prev, from, to)
	if path == nil {
		fmt.Fprintf(w, "Node %s is unreachable from %s.\n", to, from)
		return
	}
	fmt.Fprintf(w, "Shortest path to %s (distance: %d, hops: %d):\n", to, dist[to], len(path)-1)
	fmt.Fprintf(w, "  %s\n", route.Format(path))

	res, err := bfs.BFS(g, from)
	if err != nil {
		return
	}
	hops, err := res.PathTo(to)
	if err != nil || len(hops) >= len(path) {
		return
	}
	cost, err := route.Cost(g, hops)
	if err != nil || (cfg.MaxDistance > 0 && cost > cfg.MaxDistance) {
		return
	}
	fmt.Fprintf(w, "Fewest hops to %s (distance: %d, hops: %d):\n", to, cost, len(hops)-1)
	fmt.Fprintf(w, "  %s\n", route.Format(hops))
}
