package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/ysynoya/planar/dbg"
	"github.com/ysynoya/planar/geometry"
)

// Interactive sanity-checker for the geometry package. Feed polygons on
// stdin as newline separated "x y" points, with each polygon separated by an
// extra newline. Every polygon is then classified against the query point,
// and the point is clipped into the first polygon. Optionally the whole
// scene is rendered to a PNG, with the query ray rasterized on top.
//
// Polygons should be simple. Nothing is validated beyond the vertex count.

var (
	queryX  = kingpin.Flag("x", "Query point x coordinate.").Default("0").Float64()
	queryY  = kingpin.Flag("y", "Query point y coordinate.").Default("0").Float64()
	step    = kingpin.Flag("step", "Raster step size for the query ray.").Default("1").Int()
	render  = kingpin.Flag("render", "Render the scene to this PNG path.").String()
	scale   = kingpin.Flag("scale", "Render scale.").Default("10").Float64()
	inline  = kingpin.Flag("cat", "Cat the rendered PNG inline to the terminal.").Bool()
	useEven = kingpin.Flag("even-odd", "Use the even-odd rule instead of the convex test.").Bool()
)

func main() {
	kingpin.Parse()

	polygons := readPolygons(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(polygons))
	point := geometry.V2(*queryX, *queryY)

	for i, polygon := range polygons {
		name := dbg.Name(i)
		var inside bool
		if *useEven {
			inside = geometry.PointInPolygon(polygon, point)
		} else {
			inside = geometry.PointInConvexPolygon(polygon, point)
		}
		if inside {
			fmt.Printf("%s: %v\n", name, aurora.Green("inside"))
		} else {
			fmt.Printf("%s: %v\n", name, aurora.Red("outside"))
		}
	}

	scene := geometry.Scene{Polygons: polygons}

	if len(polygons) > 0 {
		clipped, moved := geometry.ClipIntoPolygon(polygons[0], point)
		if moved {
			fmt.Printf("Clipped into %s at (%g, %g)\n", dbg.Name(0), clipped.X, clipped.Y)
			// Rasterize the path from the query point to its clip target so
			// the render shows where the point got dragged.
			pixels := geometry.NewPixeledLine(point.Pt(), clipped.Pt(), *step)
			scene.Pixels = append(scene.Pixels, pixels...)
		} else {
			fmt.Printf("No clip needed for %s\n", dbg.Name(0))
		}
	}

	if *render != "" {
		scene.Pixels = append(scene.Pixels, point.Pt())
		var out io.Writer
		if *inline {
			out = os.Stdout
		}
		if err := scene.DrawPNG(*render, *scale, out); err != nil {
			fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func readPolygons(in *os.File) [][]geometry.Vec2 {
	polygons := [][]geometry.Vec2{}
	scanner := bufio.NewScanner(in)
	points := []geometry.Vec2{}
	for scanner.Scan() {
		line := scanner.Text()

		// An empty line ends the current polygon, if any points were read.
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []geometry.Vec2{}
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Trailing polygon without a closing blank line
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) geometry.Vec2 {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return geometry.V2(x, y)
}
