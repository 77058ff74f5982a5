// Command cloudgrid is a point-cloud utility: it loads XYZ text files,
// prints summary statistics, voxel-grid downsamples, filters by coordinate
// range, renders scatter views, and keeps named clouds in a sqlite store.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/cloudgrid/internal/cloud"
	"github.com/banshee-data/cloudgrid/internal/cloudstore"
	"github.com/banshee-data/cloudgrid/internal/config"
	"github.com/banshee-data/cloudgrid/internal/render"
	"github.com/banshee-data/cloudgrid/internal/voxel"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("cloudgrid: %v", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "summary":
		return runSummary(rest)
	case "downsample":
		return runDownsample(rest)
	case "filter":
		return runFilter(rest)
	case "render":
		return runRender(rest)
	case "save":
		return runSave(rest)
	case "load":
		return runLoad(rest)
	case "list":
		return runList(rest)
	case "delete":
		return runDelete(rest)
	case "help", "-h", "--help":
		usage()
		return nil
	}
	usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cloudgrid <command> [flags]

commands:
  summary     print count/mean/min/max for an XYZ file
  downsample  voxel-grid downsample an XYZ file
  filter      keep points inside a coordinate range
  render      export an HTML or PNG scatter view
  save        store an XYZ file under a name
  load        write a stored cloud back to an XYZ file
  list        list stored clouds
  delete      remove a stored cloud

run "cloudgrid <command> -h" for command flags`)
}

// loadConfig resolves tool defaults: built-ins, optionally overridden by a
// JSON config file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// flagWasSet reports whether the user supplied the named flag explicitly,
// so config-file defaults only apply to untouched flags.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func runSummary(args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	in := fs.String("in", "", "input XYZ file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errors.New("summary: -in is required")
	}

	c, err := cloud.Load(*in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", len(c), *in)

	s, err := cloud.Summarize(c)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	fmt.Println(s)
	return nil
}

func runDownsample(args []string) error {
	fs := flag.NewFlagSet("downsample", flag.ExitOnError)
	in := fs.String("in", "", "input XYZ file")
	out := fs.String("out", "", "output XYZ file")
	voxelSize := fs.Float64("voxel", 0, "voxel edge length (default from config)")
	maxPoints := fs.Int("max-points", 0, "input point budget, 0 = unbounded (default from config)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("downsample: -in and -out are required")
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if !flagWasSet(fs, "voxel") {
		*voxelSize = *cfg.VoxelSize
	}
	if !flagWasSet(fs, "max-points") {
		*maxPoints = *cfg.MaxPoints
	}

	c, err := cloud.Load(*in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", len(c), *in)

	d := voxel.Downsampler{
		VoxelSize: *voxelSize,
		MaxPoints: *maxPoints,
		Logf:      log.Printf,
	}
	ds, err := d.Downsample(c)
	if err != nil {
		return err
	}
	return cloud.Save(*out, ds)
}

func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	in := fs.String("in", "", "input XYZ file")
	out := fs.String("out", "", "output XYZ file")
	axisName := fs.String("axis", "y", "axis to filter on (x, y or z)")
	lo := fs.Float64("min", math.Inf(-1), "lower bound (inclusive)")
	hi := fs.Float64("max", math.Inf(1), "upper bound (inclusive)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("filter: -in and -out are required")
	}

	axis, err := cloud.ParseAxis(*axisName)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	c, err := cloud.Load(*in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", len(c), *in)

	kept, err := cloud.FilterRange(c, axis, *lo, *hi)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	log.Printf("filtered %d points in %s range [%g, %g]", len(kept), axis, *lo, *hi)
	return cloud.Save(*out, kept)
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "input XYZ file")
	out := fs.String("out", "", "output file (.html or .png)")
	planeName := fs.String("plane", "", "projection plane: xy, xz or yz (default from config)")
	title := fs.String("title", "", "chart title (defaults to the input filename)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return errors.New("render: -in and -out are required")
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return err
	}
	if *planeName == "" {
		*planeName = *cfg.Plane
	}
	plane, err := render.ParsePlane(*planeName)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if *title == "" {
		*title = filepath.Base(*in)
	}

	c, err := cloud.Load(*in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", len(c), *in)

	switch strings.ToLower(filepath.Ext(*out)) {
	case ".html":
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if err := render.WriteScatterHTML(f, c, plane, *title); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		return render.SaveScatterPNG(*out, c, plane, *title)
	}
	return fmt.Errorf("render: unsupported output extension %q (want .html or .png)", filepath.Ext(*out))
}

func runSave(args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	in := fs.String("in", "", "input XYZ file")
	name := fs.String("name", "", "name to store the cloud under")
	dbPath := fs.String("db", "", "sqlite database path (default from config)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *name == "" {
		return errors.New("save: -in and -name are required")
	}

	c, err := cloud.Load(*in)
	if err != nil {
		return err
	}
	log.Printf("loaded %d points from %s", len(c), *in)

	store, err := openStore(*dbPath, *cfgPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(*name, c)
	if err != nil {
		return err
	}
	log.Printf("saved %q (%d points, id %s)", *name, len(c), id)
	return nil
}

func runLoad(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	name := fs.String("name", "", "stored cloud name")
	out := fs.String("out", "", "output XYZ file")
	dbPath := fs.String("db", "", "sqlite database path (default from config)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *out == "" {
		return errors.New("load: -name and -out are required")
	}

	store, err := openStore(*dbPath, *cfgPath)
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := store.Load(*name)
	if err != nil {
		return err
	}
	log.Printf("loaded %q (%d points)", *name, len(c))
	return cloud.Save(*out, c)
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", "", "sqlite database path (default from config)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(*dbPath, *cfgPath)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no stored clouds")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %8d points  %s\n", info.ID, info.PointCount, info.Name)
	}
	return nil
}

func runDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	name := fs.String("name", "", "stored cloud name")
	dbPath := fs.String("db", "", "sqlite database path (default from config)")
	cfgPath := fs.String("config", "", "JSON config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return errors.New("delete: -name is required")
	}

	store, err := openStore(*dbPath, *cfgPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(*name); err != nil {
		return err
	}
	log.Printf("deleted %q", *name)
	return nil
}

func openStore(dbPath, cfgPath string) (*cloudstore.Store, error) {
	if dbPath == "" {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		dbPath = *cfg.DBPath
	}
	return cloudstore.Open(dbPath)
}
