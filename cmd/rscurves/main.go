// Command rscurves plans a curvature-constrained tour over oriented
// waypoints and renders the optimal paths for a set of turning radii.
//
// The waypoint file holds one `x,y,theta_degrees` triple per line; if it
// does not exist, a commented starter file is written in its place.
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/M-Podi/reeds-shepp-curves/planner"
	"github.com/M-Podi/reeds-shepp-curves/pose"
	"github.com/M-Podi/reeds-shepp-curves/reedsshepp"
	"github.com/M-Podi/reeds-shepp-curves/render"
)

var (
	waypointsFile = flag.String("waypoints", "waypoints.txt", "waypoint file, one x,y,theta_degrees per line")
	radiiList     = flag.String("radii", "0.5,1.0,2.0,3.0", "comma-separated turning radii to render")
	tspRadius     = flag.Float64("tsp-radius", 1.0, "turning radius used when ordering the tour")
	methodName    = flag.String("method", "exact", "tour search method: exact or greedy")
	maxExact      = flag.Int("max-exact", 0, "exact-search waypoint ceiling, 0 for the default")
	strictExact   = flag.Bool("strict-exact", false, "fail instead of downgrading to greedy above the ceiling")
	outFile       = flag.String("o", "tour.png", "output image (png or svg)")
	sizeInches    = flag.Float64("size", 8, "output image side length, inches")
	seed          = flag.Uint64("seed", 1, "pen color seed")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := run(); err != nil {
		glog.Exitf("rscurves: %v", err)
	}
}

func run() error {
	method, err := planner.ParseMethod(*methodName)
	if err != nil {
		return err
	}
	radii, err := parseRadii(*radiiList)
	if err != nil {
		return err
	}

	poses, err := loadWaypoints(*waypointsFile)
	if err != nil {
		return err
	}
	if len(poses) == 0 {
		return fmt.Errorf("no usable waypoints in %s", *waypointsFile)
	}

	oracle := reedsshepp.New()
	solver, err := planner.NewTourSolver(oracle)
	if err != nil {
		return err
	}

	res, err := solver.Solve(poses, *tspRadius, planner.Options{
		Method:      method,
		MaxExact:    *maxExact,
		StrictExact: *strictExact,
	})
	if err != nil {
		return err
	}
	if res.Downgraded {
		glog.Warningf("exact search intractable for %d waypoints, using %s instead", len(poses), res.Method)
	}
	glog.Infof("tour %v, cost %.4f at r=%g (%s)", res.Tour, res.Cost, *tspRadius, res.Method)

	return draw(oracle, poses, res.Tour, radii)
}

// loadWaypoints reads the waypoint file, seeding a starter file when it
// is missing, and logs every skipped line.
func loadWaypoints(path string) ([]pose.Pose, error) {
	created, err := pose.WriteExample(path)
	if err != nil {
		return nil, err
	}
	if created {
		glog.Infof("created example waypoint file %s", path)
	}

	poses, warns, err := pose.ReadWaypoints(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warns {
		glog.Warningf("%s: %s", path, w)
	}
	return poses, nil
}

// draw renders the tour once per radius into a single image, one pen
// and legend entry per radius.
func draw(oracle planner.PathOracle, poses []pose.Pose, tour []int, radii []float64) error {
	exp, err := planner.NewPathExpander(oracle)
	if err != nil {
		return err
	}

	pl := render.NewPlot(render.PlotConfig{Title: "Reeds-Shepp tour"})
	for _, p := range poses {
		pl.MarkWaypoint(p, 0)
	}

	pens := render.Palette(len(radii), *seed)
	for i, radius := range radii {
		edges, err := exp.Expand(tour, poses, radius)
		if err != nil {
			return err
		}

		pl.SetPen(fmt.Sprintf("r = %g", radius), pens[i])
		render.Start(pl, poses[tour[0]])
		total := 0.0
		for _, e := range edges {
			if err := render.Trace(pl, e.Path, radius); err != nil {
				return err
			}
			total += e.Length
		}
		glog.Infof("r=%g: tour length %.4f", radius, total)
	}

	if err := pl.Save(*sizeInches, *sizeInches, *outFile); err != nil {
		return err
	}
	glog.Infof("wrote %s", *outFile)
	return nil
}

// parseRadii splits a comma-separated radius list, requiring every
// entry to be a positive number.
func parseRadii(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	radii := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.ParseFloat(part, 64)
		if err != nil || !(r > 0) {
			return nil, fmt.Errorf("%w: bad radius %q", planner.ErrInvalidRadius, part)
		}
		radii = append(radii, r)
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("%w: empty radius list", planner.ErrInvalidRadius)
	}
	return radii, nil
}
