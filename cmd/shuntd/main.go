// Command shuntd plans shunting jobs on a siding yard, or serves the yard's
// read-only HTTP API.
//
// Solve a job:
//
//	shuntd -layout A=2,B=3,C=1,D=2,E=1 -loco M1 \
//	       -cars C1=A0,C2=B1,C3=D0,C4=E0 \
//	       -goals C1=E0,C2=C0,C3=B2,C4=A1
//
// Restrict the loco's route or ask for a loco-only path:
//
//	shuntd -layout A=1,B=1 -loco MAIN -cars C1=A0 -goals C1=B0 -route "via A0,B0,MAIN,M1"
//	shuntd -layout A=1,B=1 -loco M1 -route "to B0"
//
// Serve the HTTP API:
//
//	shuntd -layout A=2,B=3 -listen :8080
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Kantarellen1/TrainSystemNL/distance"
	"github.com/Kantarellen1/TrainSystemNL/layout"
	"github.com/Kantarellen1/TrainSystemNL/render"
	"github.com/Kantarellen1/TrainSystemNL/restrict"
	"github.com/Kantarellen1/TrainSystemNL/server"
	"github.com/Kantarellen1/TrainSystemNL/shunt"
)

func main() {
	var (
		layoutSpec = flag.String("layout", "", "siding spec, e.g. A=2,B=3,C=1")
		listen     = flag.String("listen", "", "serve the HTTP API on this address instead of solving")
		loco       = flag.String("loco", layout.M1, "loco start node")
		cars       = flag.String("cars", "", "start placement, e.g. C1=A0,C2=B1")
		goals      = flag.String("goals", "", "goal spec, e.g. C1=E0,C4=A1+A0 ('+' separates alternatives)")
		route      = flag.String("route", "", `route selection: "via <nodes>" or "to <node>"`)
		budget     = flag.Int("budget", shunt.DefaultStepBudget, "step budget (frontier pops)")
		asJSON     = flag.Bool("json", false, "emit JSON instead of text")
		progress   = flag.Int("progress", 0, "log search progress every N pops (0 = silent)")
	)
	flag.Parse()

	if *layoutSpec == "" {
		log.Fatal("shuntd: -layout is required")
	}
	sidings, err := parseLayout(*layoutSpec)
	if err != nil {
		log.Fatalf("shuntd: %v", err)
	}
	graph, err := layout.Build(sidings)
	if err != nil {
		log.Fatalf("shuntd: %v", err)
	}
	table, err := distance.NewTable(graph)
	if err != nil {
		log.Fatalf("shuntd: %v", err)
	}

	if *listen != "" {
		router := mux.NewRouter()
		server.NewYardHandler(graph, table).RegisterRoutes(router)
		log.Printf("shuntd: serving yard API on %s", *listen)
		log.Fatal(http.ListenAndServe(*listen, router))
	}

	request, err := restrict.Parse(*route, graph)
	if err != nil {
		log.Fatalf("shuntd: %v", err)
	}

	// A "to <node>" selection is a loco-only path query, no solving.
	if request.Kind == restrict.PathRequest {
		path, err := distance.Path(graph, *loco, request.Dest)
		if err != nil {
			log.Fatalf("shuntd: %v", err)
		}
		if *asJSON {
			emitJSON(map[string]any{"path": path, "hops": len(path) - 1})
		} else {
			fmt.Println(strings.Join(path, " -> "))
		}
		return
	}

	placement, err := parsePairs(*cars, false)
	if err != nil {
		log.Fatalf("shuntd: bad -cars: %v", err)
	}
	goalPairs, err := parsePairs(*goals, true)
	if err != nil {
		log.Fatalf("shuntd: bad -goals: %v", err)
	}
	goalSpec := make(shunt.GoalSpec, len(goalPairs))
	for id, nodes := range goalPairs {
		goalSpec[id] = strings.Split(nodes, "+")
	}

	planner, err := shunt.NewPlanner(graph, table, goalSpec)
	if err != nil {
		log.Fatalf("shuntd: %v", err)
	}

	opts := []shunt.Option{
		shunt.WithStepBudget(*budget),
		shunt.WithRouteRestriction(request.Nodes),
	}
	if *progress > 0 {
		opts = append(opts, shunt.WithObserver(func(p shunt.Progress) {
			log.Printf("shuntd: expanded=%d frontier=%d g=%d h=%d", p.Expanded, p.Frontier, p.G, p.H)
		}, *progress))
	}

	start := shunt.NewState(*loco, placement)
	res, err := planner.Solve(start, opts...)
	switch {
	case err == nil:
		if *asJSON {
			emitJSON(render.Plan(res))
		} else {
			fmt.Print(render.PlanText(res))
		}
	case errors.Is(err, shunt.ErrUnsolvable), errors.Is(err, shunt.ErrBudgetExhausted):
		if *asJSON {
			emitJSON(render.Failure(res, err))
		} else {
			fmt.Printf("%v (%d states expanded)\n", err, res.Expanded)
		}
		os.Exit(1)
	default:
		log.Fatalf("shuntd: %v", err)
	}
}

// parseLayout turns "A=2,B=3" into a siding spec.
func parseLayout(s string) (map[string]int, error) {
	out := make(map[string]int)
	for _, part := range strings.Split(s, ",") {
		label, lengthStr, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("malformed siding %q", part)
		}
		length, err := strconv.Atoi(lengthStr)
		if err != nil {
			return nil, fmt.Errorf("siding %q: %w", label, err)
		}
		out[label] = length
	}

	return out, nil
}

// parsePairs turns "K1=V1,K2=V2" into a map. With allowEmpty false, a blank
// input is an error; goals tolerate blank input so validation can name the
// missing cars instead.
func parsePairs(s string, allowEmpty bool) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		if allowEmpty {
			return out, nil
		}
		return nil, errors.New("no entries")
	}
	for _, part := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || k == "" || v == "" {
			return nil, fmt.Errorf("malformed entry %q", part)
		}
		out[k] = v
	}

	return out, nil
}

func emitJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("shuntd: %v", err)
	}
}
