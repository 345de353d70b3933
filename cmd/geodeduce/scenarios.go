package main

import (
	"fmt"
	"sort"

	"github.com/gitrdm/geodeduce/internal/constructiontest"
	"github.com/gitrdm/geodeduce/pkg/geodeduce"
	"github.com/spf13/cobra"
)

// scenario builds a ready-to-run problem: a populated dependency graph
// plus its goal statements, standing in for the construction
// front-end's output.
type scenario struct {
	describe string
	build    func() (*geodeduce.DependencyGraph, []*geodeduce.Statement, error)
}

var scenarios = map[string]scenario{
	"orthocenter": {
		describe: "triangle abc, d = orthocenter; goal perp(a,d,b,c) -- not provable without an auxiliary point",
		build: func() (*geodeduce.DependencyGraph, []*geodeduce.Statement, error) {
			g := geodeduce.NewSymbolGraph()
			dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())
			a, b, c, err := constructiontest.Triangle(g)
			if err != nil {
				return nil, nil, err
			}
			_, err = constructiontest.Orthocenter(g, dg, a, b, c, "d")
			if err != nil {
				return nil, nil, err
			}
			goal, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
			if err != nil {
				return nil, nil, err
			}
			return dg, []*geodeduce.Statement{goal}, nil
		},
	},
	"orthocenter-auxiliary": {
		describe: "orthocenter extended with e = line(a,c) ∩ line(b,d); goal perp(a,d,b,c), provable with rules/similarity.txt",
		build: func() (*geodeduce.DependencyGraph, []*geodeduce.Statement, error) {
			g := geodeduce.NewSymbolGraph()
			dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())
			a, b, c, err := constructiontest.Triangle(g)
			if err != nil {
				return nil, nil, err
			}
			d, err := constructiontest.Orthocenter(g, dg, a, b, c, "d")
			if err != nil {
				return nil, nil, err
			}
			if _, err := constructiontest.OrthocenterAuxiliary(g, dg, a, b, c, d); err != nil {
				return nil, nil, err
			}
			goal, err := geodeduce.Perpendicular{}.Parse([]string{"a", "d", "b", "c"}, g)
			if err != nil {
				return nil, nil, err
			}
			return dg, []*geodeduce.Statement{goal}, nil
		},
	},
	"euler-line": {
		describe: "triangle abc with h = orthocenter, g = centroid, o = circumcenter; goal coll(h,g,o)",
		build: func() (*geodeduce.DependencyGraph, []*geodeduce.Statement, error) {
			g := geodeduce.NewSymbolGraph()
			dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())
			a, b, c, err := constructiontest.Triangle(g)
			if err != nil {
				return nil, nil, err
			}
			if _, err := constructiontest.Orthocenter(g, dg, a, b, c, "h"); err != nil {
				return nil, nil, err
			}
			if _, _, err := constructiontest.CentroidWithMedian(g, dg, a, b, c, "g", "m"); err != nil {
				return nil, nil, err
			}
			if _, err := constructiontest.CircumcenterWithCongs(g, dg, a, b, c, "o"); err != nil {
				return nil, nil, err
			}
			goal, err := geodeduce.Collinear{}.Parse([]string{"h", "g", "o"}, g)
			if err != nil {
				return nil, nil, err
			}
			return dg, []*geodeduce.Statement{goal}, nil
		},
	},
	"incenter-excenter": {
		describe: "triangle abc, d = incenter, e = excenter; goal perp(d,c,c,e), provable from premises alone",
		build: func() (*geodeduce.DependencyGraph, []*geodeduce.Statement, error) {
			g := geodeduce.NewSymbolGraph()
			dg := geodeduce.NewDependencyGraph(g, geodeduce.NewAlgebra())
			a, b, c, err := constructiontest.Triangle(g)
			if err != nil {
				return nil, nil, err
			}
			if _, err := constructiontest.Incenter(g, a, b, c, "d"); err != nil {
				return nil, nil, err
			}
			if _, err := constructiontest.Excenter(g, a, b, c, "e"); err != nil {
				return nil, nil, err
			}
			goal, err := geodeduce.Perpendicular{}.Parse([]string{"d", "c", "c", "e"}, g)
			if err != nil {
				return nil, nil, err
			}
			dep := geodeduce.NewDependency(goal, geodeduce.ReasonNumericalCheck, nil)
			geodeduce.Perpendicular{}.Add(dep, dg)
			return dg, []*geodeduce.Statement{goal}, nil
		},
	},
}

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list the built-in demonstration scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(scenarios))
			for name := range scenarios {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, scenarios[name].describe)
			}
			return nil
		},
	}
	return cmd
}
