// Command narrowphase runs a fixed set of collision scenarios, or every pair
// of a YAML scene, and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zeusync/narrowphase/internal/config"
	"github.com/zeusync/narrowphase/internal/core/collision"
	"github.com/zeusync/narrowphase/internal/core/scene"
	"github.com/zeusync/narrowphase/internal/core/shape"
	"github.com/zeusync/narrowphase/internal/injector"
	"github.com/zeusync/narrowphase/pkg/geom"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	scenePath := flag.String("scene", "", "YAML scene to evaluate instead of the built-in scenarios")
	flag.Parse()

	cfg := config.Default()
	cfg.Log.Level = "warn"
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *scenePath != "" {
		if err := runScene(cfg, *scenePath); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	runScenarios(injector.InitializeDetector(cfg))
}

func runScene(cfg config.Config, path string) error {
	s, err := scene.Load(path)
	if err != nil {
		return err
	}

	report, err := injector.InitializeRunner(cfg).Run(context.Background(), s)
	if err != nil {
		return err
	}

	fmt.Printf("scene %q: %d bodies, %d pairs, %d overlapping\n",
		report.Scene, s.Len(), len(report.Contacts), len(report.Overlapping()))
	for _, c := range report.Contacts {
		fmt.Printf("  %s / %s: %t", label(c.AName, c.A.String()), label(c.BName, c.B.String()), c.Intersects)
		if c.Penetration != nil {
			fmt.Printf(", %s", c.Penetration)
		}
		fmt.Println()
	}
	return nil
}

func label(name, id string) string {
	if name != "" {
		return name
	}
	return id
}

func runScenarios(d *collision.Detector) {
	triangle := shape.MustTriangle(geom.Vec(4, 11), geom.Vec(4, 5), geom.Vec(9, 9))
	polygon := shape.MustPolygon(geom.Vec(5, 7), geom.Vec(7, 3), geom.Vec(10, 2), geom.Vec(12, 7))
	rectangle := shape.MustRectangle(10, 12)
	circle := shape.MustCircle(2)

	identity := geom.Identity()
	moved := geom.Identity()
	moved.Translate(1, 1.2)

	withPenetration := func(name string, a shape.Convex, ta geom.Transform, b shape.Convex, tb geom.Transform) {
		var p collision.Penetration
		hit := d.DetectPenetration(a, ta, b, tb, &p)
		fmt.Printf("Do we have a collision between %s: %t, penetration normal: %s, penetration depth: %g\n",
			name, hit, vec(p.Normal), p.Depth)
	}
	overlapOnly := func(name string, a shape.Convex, ta geom.Transform, b shape.Convex, tb geom.Transform) {
		fmt.Printf("Do we have a collision between %s: %t\n", name, d.Detect(a, ta, b, tb))
	}

	withPenetration("triangle and polygon", triangle, identity, polygon, identity)
	overlapOnly("polygon and rectangle", polygon, identity, rectangle, identity)
	withPenetration("triangle and rectangle", triangle, identity, rectangle, identity)
	withPenetration("rectangle and circle", rectangle, identity, circle, identity)
	overlapOnly("triangle and circle", triangle, identity, circle, identity)
	withPenetration("circle and circle", circle, identity, circle, moved)

	static := shape.MustRectangle(0.666667, 29.666668)
	staticTransform := geom.Identity()
	staticTransform.Translate(0.433333, 15.000001)

	dynamic := shape.MustRectangle(0.33333333333, 0.666666666)
	dynamicTransform := geom.Identity()
	dynamicTransform.Translate(1.102533, 9.7308)
	dynamicTransform.Rotate(geom.FindAngle(geom.Vec(-1, 1), geom.Vec(0, 1)))

	fmt.Printf("static body: %s transform: %s, dynamic body: %s transform: %s\n",
		static, staticTransform, dynamic, dynamicTransform)
	withPenetration("static and dynamic", static, staticTransform, dynamic, dynamicTransform)

	stats := d.Stats()
	fmt.Printf("queries: %d, intersections: %d, penetrations: %d\n",
		stats.Queries, stats.Intersections, stats.Penetrations)
}

func vec(v mgl64.Vec2) string {
	return fmt.Sprintf("(%g,%g)", v[0], v[1])
}
