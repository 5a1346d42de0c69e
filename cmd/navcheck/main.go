// Command navcheck routes between the regions of a floor plan without a
// window and reports what the guide line would look like.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arguide/config"
	"github.com/milk9111/arguide/logging"
	"github.com/milk9111/arguide/navigation"
	"github.com/milk9111/arguide/walkable"
)

// routeReport summarises one route through the navigation pipeline.
type routeReport struct {
	From, To      string
	Corners       int
	RenderPoints  int
	Length        float64
	OracleQueries int
	Err           error
}

func main() {
	configDir := flag.String("config", config.Dir, "directory holding navigation.yaml and floor.yaml overrides")
	from := flag.String("from", "", "start region name (default: every region)")
	to := flag.String("to", "", "goal region name (default: every region)")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.NewLogrusLogger(*logLevel, "")
	if err != nil {
		log.Fatal(err)
	}
	config.Dir = *configDir

	reports, err := run(logger, *from, *to)
	if err != nil {
		logger.Fatalf("navcheck: %v", err)
	}
	if failed := printReports(os.Stdout, reports); failed > 0 {
		os.Exit(1)
	}
}

func run(log logging.Logger, from, to string) ([]routeReport, error) {
	navSpec, err := config.LoadNavigationSpec()
	if err != nil {
		return nil, err
	}
	floorSpec, err := config.LoadFloorSpec()
	if err != nil {
		return nil, err
	}
	plan := floorSpec.FloorPlan()
	surface, err := walkable.NewSurface(plan)
	if err != nil {
		return nil, err
	}
	finder := walkable.NewPathfinder(surface, floorSpec.CellSize)

	regions := regionCenters(plan)
	var reports []routeReport
	for _, a := range regions {
		if from != "" && a.name != from {
			continue
		}
		for _, b := range regions {
			if a.name == b.name || (to != "" && b.name != to) {
				continue
			}
			reports = append(reports, checkRoute(log, surface, finder, navSpec.Settings(), a, b))
		}
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("no routes match from=%q to=%q", from, to)
	}
	return reports, nil
}

type namedPoint struct {
	name  string
	point mgl64.Vec3
}

func regionCenters(plan walkable.FloorPlan) []namedPoint {
	var out []namedPoint
	for _, lvl := range plan.Levels {
		for _, r := range lvl.Regions {
			out = append(out, namedPoint{
				name:  r.Name,
				point: mgl64.Vec3{(r.MinX + r.MaxX) / 2, lvl.Height, (r.MinZ + r.MaxZ) / 2},
			})
		}
	}
	return out
}

func checkRoute(log logging.Logger, surface *walkable.Surface, finder *walkable.Pathfinder, settings navigation.Settings, a, b namedPoint) routeReport {
	report := routeReport{From: a.name, To: b.name}

	raw, err := finder.FindPath(a.point, b.point)
	if err != nil {
		report.Err = err
		return report
	}
	report.Corners = len(raw)

	oracle := &navigation.CountingOracle{Oracle: surface}
	nav := navigation.NewNavigator(oracle, settings, log.WithField("route", a.name+"->"+b.name))
	render := nav.Update(raw)
	report.RenderPoints = len(render)
	report.OracleQueries = oracle.Queries
	for i := 1; i < len(render); i++ {
		report.Length += render[i].Sub(render[i-1]).Len()
	}
	return report
}

// printReports writes one line per route and returns how many failed.
// Unreachable routes are listed but not counted.
func printReports(w io.Writer, reports []routeReport) int {
	failed := 0
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "%-12s -> %-12s  error: %v\n", r.From, r.To, r.Err)
			if !errors.Is(r.Err, walkable.ErrNoPath) {
				failed++
			}
			continue
		}
		fmt.Fprintf(w, "%-12s -> %-12s  corners=%-3d points=%-4d length=%6.2fm queries=%d\n",
			r.From, r.To, r.Corners, r.RenderPoints, r.Length, r.OracleQueries)
	}
	return failed
}
