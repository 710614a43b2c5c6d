// Command planectl is a thin urfave/cli/v3 front end over the plane2d kernel: JSON in, JSON out,
// no state kept between invocations. It exists purely to exercise the kernel end to end; the
// kernel itself has no CLI, file, or wire surface of its own (spec §6).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	plane2d "github.com/planekit/plane2d"
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

func main() {
	cmd := &cli.Command{
		Name:        "planectl",
		Usage:       "Exercises the plane2d geometry kernel from the command line",
		HideVersion: true,
		Commands: []*cli.Command{
			hullCommand(),
			delaunayCommand(),
			unionCommand(),
			differenceCommand(),
			classifyCommand(),
			intersectCommand(),
			bezierCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// coord is the wire representation of a point: a two-element [x, y] JSON array, matching the
// "x, y" literal contract spec §6 assigns to the out-of-scope decimal parser/formatter.
type coord [2]float64

func (c coord) toPoint() plane2d.Point[scalar.Float64] {
	return plane2d.NewPoint(scalar.Float64(c[0]), scalar.Float64(c[1]))
}

func pointToCoord(p plane2d.Point[scalar.Float64]) coord {
	x, y := p.Coordinates()
	return coord{float64(x), float64(y)}
}

func parsePoints(flagValue string) ([]plane2d.Point[scalar.Float64], error) {
	var cs []coord
	if err := json.Unmarshal([]byte(flagValue), &cs); err != nil {
		return nil, fmt.Errorf("parsing points: %w", err)
	}
	pts := make([]plane2d.Point[scalar.Float64], len(cs))
	for i, c := range cs {
		pts[i] = c.toPoint()
	}
	return pts, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func pointsFlag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "points",
		Usage:    usage,
		Required: true,
		OnlyOnce: true,
	}
}

func epsilonFlag() *cli.FloatFlag {
	return &cli.FloatFlag{
		Name:  "epsilon",
		Usage: "Absolute tolerance for geometric comparisons (defaults to the kernel's 1e-9)",
	}
}

func epsilonOption(cmd *cli.Command) []options.Option[scalar.Float64] {
	if !cmd.IsSet("epsilon") {
		return nil
	}
	return []options.Option[scalar.Float64]{options.WithEpsilon(scalar.Float64(cmd.Float("epsilon")))}
}

func hullCommand() *cli.Command {
	return &cli.Command{
		Name:  "hull",
		Usage: "Computes the convex hull of a point set",
		Flags: []cli.Flag{pointsFlag(`JSON array of [x, y] points, e.g. "[[0,0],[1,0],[0,1]]"`), epsilonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			pts, err := parsePoints(cmd.String("points"))
			if err != nil {
				return err
			}
			hull := plane2d.ComputeConvexHull(pts, epsilonOption(cmd)...)
			out := make([]coord, hull.Len())
			for i, v := range hull.Vertices() {
				out[i] = pointToCoord(v)
			}
			return printJSON(out)
		},
	}
}

func delaunayCommand() *cli.Command {
	return &cli.Command{
		Name:  "delaunay",
		Usage: "Computes the Delaunay triangulation of a point set",
		Flags: []cli.Flag{pointsFlag(`JSON array of [x, y] points`), epsilonFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			pts, err := parsePoints(cmd.String("points"))
			if err != nil {
				return err
			}
			triangles := plane2d.DelaunayTriangulation(pts, epsilonOption(cmd)...)
			out := make([][3]coord, len(triangles))
			for i, t := range triangles {
				a, b, c := t.Vertices()
				out[i] = [3]coord{pointToCoord(a), pointToCoord(b), pointToCoord(c)}
			}
			return printJSON(out)
		},
	}
}

func polygonResultJSON(res plane2d.BooleanResult[scalar.Float64]) any {
	ring := func(p plane2d.Polygon[scalar.Float64]) []coord {
		out := make([]coord, p.Len())
		for i, v := range p.Vertices() {
			out[i] = pointToCoord(v)
		}
		return out
	}
	outers := make([][]coord, len(res.Outers))
	for i, o := range res.Outers {
		outers[i] = ring(o)
	}
	holes := make([][]coord, len(res.Holes))
	for i, h := range res.Holes {
		holes[i] = ring(h)
	}
	return struct {
		Outers [][]coord `json:"outers"`
		Holes  [][]coord `json:"holes"`
	}{Outers: outers, Holes: holes}
}

func twoPolygonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "a", Usage: "JSON array of [x, y] vertices for polygon A", Required: true, OnlyOnce: true},
		&cli.StringFlag{Name: "b", Usage: "JSON array of [x, y] vertices for polygon B", Required: true, OnlyOnce: true},
		epsilonFlag(),
	}
}

func twoPolygons(cmd *cli.Command) (plane2d.Polygon[scalar.Float64], plane2d.Polygon[scalar.Float64], error) {
	aPts, err := parsePoints(cmd.String("a"))
	if err != nil {
		return plane2d.Polygon[scalar.Float64]{}, plane2d.Polygon[scalar.Float64]{}, err
	}
	bPts, err := parsePoints(cmd.String("b"))
	if err != nil {
		return plane2d.Polygon[scalar.Float64]{}, plane2d.Polygon[scalar.Float64]{}, err
	}
	return plane2d.NewPolygon(aPts), plane2d.NewPolygon(bPts), nil
}

func unionCommand() *cli.Command {
	return &cli.Command{
		Name:  "union",
		Usage: "Computes the union of two convex polygons",
		Flags: twoPolygonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, b, err := twoPolygons(cmd)
			if err != nil {
				return err
			}
			res := plane2d.BooleanUnion(a, b, epsilonOption(cmd)...)
			return printJSON(polygonResultJSON(res))
		},
	}
}

func differenceCommand() *cli.Command {
	return &cli.Command{
		Name:  "difference",
		Usage: "Computes A minus B for two convex polygons",
		Flags: twoPolygonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			a, b, err := twoPolygons(cmd)
			if err != nil {
				return err
			}
			res := plane2d.BooleanDifference(a, b, epsilonOption(cmd)...)
			return printJSON(polygonResultJSON(res))
		},
	}
}

func classifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "classify",
		Usage: "Classifies a point relative to a segment as Left, Right, or OnSegment",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seg", Usage: `JSON array of two [x, y] endpoints, e.g. "[[0,0],[10,0]]"`, Required: true, OnlyOnce: true},
			&cli.StringFlag{Name: "point", Usage: `JSON [x, y] point, e.g. "[0,5]"`, Required: true, OnlyOnce: true},
			epsilonFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			segPts, err := parsePoints(cmd.String("seg"))
			if err != nil {
				return err
			}
			if len(segPts) != 2 {
				return fmt.Errorf("seg must contain exactly two points")
			}
			var c coord
			if err := json.Unmarshal([]byte(cmd.String("point")), &c); err != nil {
				return fmt.Errorf("parsing point: %w", err)
			}
			seg := plane2d.NewSegment(segPts[0], segPts[1])
			result := plane2d.ClassifyPointRelativeToSegment(seg, c.toPoint(), epsilonOption(cmd)...)
			return printJSON(struct {
				Orientation string `json:"orientation"`
			}{Orientation: result.String()})
		},
	}
}

func intersectCommand() *cli.Command {
	return &cli.Command{
		Name:  "intersect",
		Usage: "Computes the intersection of two segments",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "a", Usage: `JSON array of two [x, y] endpoints for segment A`, Required: true, OnlyOnce: true},
			&cli.StringFlag{Name: "b", Usage: `JSON array of two [x, y] endpoints for segment B`, Required: true, OnlyOnce: true},
			epsilonFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			aPts, err := parsePoints(cmd.String("a"))
			if err != nil {
				return err
			}
			bPts, err := parsePoints(cmd.String("b"))
			if err != nil {
				return err
			}
			if len(aPts) != 2 || len(bPts) != 2 {
				return fmt.Errorf("a and b must each contain exactly two points")
			}
			res := plane2d.IntersectSegments(
				plane2d.NewSegment(aPts[0], aPts[1]),
				plane2d.NewSegment(bPts[0], bPts[1]),
				epsilonOption(cmd)...,
			)
			return printJSON(struct {
				Type    string `json:"type"`
				Point   *coord `json:"point,omitempty"`
				Overlap *[2]coord `json:"overlap,omitempty"`
			}{
				Type:    res.Type.String(),
				Point:   intersectPointJSON(res),
				Overlap: intersectOverlapJSON(res),
			})
		},
	}
}

func intersectPointJSON(res plane2d.SegmentIntersectionResult[scalar.Float64]) *coord {
	if res.Type != plane2d.IntersectionPoint {
		return nil
	}
	c := pointToCoord(res.Point)
	return &c
}

func intersectOverlapJSON(res plane2d.SegmentIntersectionResult[scalar.Float64]) *[2]coord {
	if res.Type != plane2d.IntersectionOverlap {
		return nil
	}
	return &[2]coord{pointToCoord(res.Overlap.Start()), pointToCoord(res.Overlap.End())}
}

func bezierCommand() *cli.Command {
	return &cli.Command{
		Name:  "bezier",
		Usage: "Samples a Bézier curve defined by its control points",
		Flags: []cli.Flag{
			pointsFlag(`JSON array of [x, y] control points`),
			&cli.IntFlag{
				Name:     "samples",
				Usage:    "Number of evenly spaced samples to take",
				Value:    10,
				OnlyOnce: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			pts, err := parsePoints(cmd.String("points"))
			if err != nil {
				return err
			}
			samples, err := plane2d.SampleBezier(pts, int(cmd.Int("samples")))
			if err != nil {
				return err
			}
			out := make([]coord, len(samples))
			for i, p := range samples {
				out[i] = pointToCoord(p)
			}
			return printJSON(out)
		},
	}
}
