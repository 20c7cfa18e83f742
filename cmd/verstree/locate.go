package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/verstree/verstree/appcontext"
	"github.com/verstree/verstree/geom"
	"github.com/verstree/verstree/geom/wavefront"
	"github.com/verstree/verstree/planar"
)

// pointList collects repeated -p x,y flags.
type pointList []geom.Vec2

func (p *pointList) String() string {
	parts := make([]string, 0, len(*p))
	for _, pt := range *p {
		parts = append(parts, fmt.Sprintf("%g,%g", pt.X, pt.Y))
	}
	return strings.Join(parts, " ")
}

func (p *pointList) Set(s string) error {
	coords := strings.Split(s, ",")
	if len(coords) != 2 {
		return fmt.Errorf("expected x,y but got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return fmt.Errorf("bad x coordinate in %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return fmt.Errorf("bad y coordinate in %q: %w", s, err)
	}
	*p = append(*p, geom.Vec2{X: x, Y: y})
	return nil
}

func cmdLocate(ctx *appcontext.AppContext, args []string) int {
	logger := ctx.GetLogger()

	flags := flag.NewFlagSet("locate", flag.ExitOnError)
	var opt_obj string
	var opt_out string
	var points pointList
	flags.StringVar(&opt_obj, "obj", "", "wavefront obj file holding the subdivision")
	flags.StringVar(&opt_out, "out", "", "write the serialized location report to this file")
	flags.Var(&points, "p", "point to locate, as x,y (repeatable)")
	flags.Parse(args)

	if opt_obj == "" {
		opt_obj = ctx.Config.DefaultOBJ
	}
	if opt_obj == "" {
		logger.Error("locate: no obj file given and no default-obj configured")
		return 1
	}
	if len(points) == 0 {
		logger.Error("locate: no points given, use -p x,y")
		return 1
	}

	scene, err := wavefront.ParseFile(opt_obj)
	if err != nil {
		logger.Error("locate: %s", err)
		return 1
	}
	logger.Info("loaded %s: %d vertices, %d faces", opt_obj, len(scene.Vertices), len(scene.Faces))

	locator := planar.NewLocator(scene, logger)
	if err := locator.Analyze(); err != nil {
		logger.Error("locate: %s", err)
		return 1
	}

	report, err := locator.Report(points)
	if err != nil {
		logger.Error("locate: %s", err)
		return 1
	}

	for _, p := range report.Points {
		face := p.Face
		if face == "" {
			face = "exterior"
		}
		logger.Stdout("%s (%g, %g): slab=%s face=%s", p.Name, p.X, p.Y, p.Slab, face)
	}

	if opt_out != "" {
		f, err := os.Create(opt_out)
		if err != nil {
			logger.Error("locate: %s", err)
			return 1
		}
		defer f.Close()
		if err := report.Serialize(f); err != nil {
			logger.Error("locate: failed to write report: %s", err)
			return 1
		}
		logger.Info("wrote report %s to %s", report.Identifier, opt_out)
	}

	return 0
}
