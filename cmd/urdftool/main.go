// urdftool is a CLI utility for inspecting URDF robot descriptions.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/Faultbox/robodesc/internal/assets"
	"github.com/Faultbox/robodesc/internal/config"
	"github.com/Faultbox/robodesc/internal/logger"
	"github.com/Faultbox/robodesc/pkg/urdf"
)

func main() {
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	switch command {
	case "info":
		cmdInfo(cfg, args)
	case "tree":
		cmdTree(cfg, args)
	case "links":
		cmdLinks(cfg, args)
	case "joints":
		cmdJoints(cfg, args)
	case "materials", "mats":
		cmdMaterials(cfg, args)
	case "check":
		cmdCheck(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`urdftool - URDF robot description utility

Usage:
  urdftool [options] <command> [args]

Options:
  -config <path>   Use an explicit config file
  -scale <factor>  Unit scale applied to all lengths
  -debug           Enable debug logging
  -logfile <path>  Write logs to this file

Commands:
  info <file.urdf>       Show model summary
  tree <file.urdf>       Print the kinematic tree
  links <file.urdf>      List links with shape counts
  joints <file.urdf>     List joints with types and limits
  materials <file.urdf>  List materials
  check <file.urdf>...   Parse files, report pass/fail

Examples:
  urdftool info two_link_arm.urdf
  urdftool -scale 0.001 tree robot_mm.urdf
  urdftool check models/*.urdf`)
}

func newParser(cfg *config.Config) *urdf.Parser {
	return &urdf.Parser{
		Scale: cfg.Parse.Scale,
		Log:   logger.Log,
		Files: assets.NewResolver(cfg.Assets.MeshDirs...),
	}
}

func parseOne(cfg *config.Config, path string) *urdf.Model {
	model, err := newParser(cfg).ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return model
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool info <file.urdf>")
		os.Exit(1)
	}

	model := parseOne(cfg, args[0])

	fmt.Printf("Robot:      %s\n", model.Name)
	fmt.Printf("Source:     %s\n", model.SourceFile)
	fmt.Printf("Scale:      %g\n", model.Scale)
	fmt.Printf("Links:      %d\n", len(model.Links))
	fmt.Printf("Joints:     %d\n", len(model.Joints))
	fmt.Printf("Materials:  %d\n", len(model.Materials))
	fmt.Printf("Visuals:    %d\n", model.VisualCount())
	fmt.Printf("Collisions: %d\n", model.CollisionCount())

	roots := make([]string, len(model.RootLinks))
	for i, root := range model.RootLinks {
		roots[i] = root.Name
	}
	fmt.Printf("Roots:      %v\n", roots)
}

func cmdTree(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool tree <file.urdf>")
		os.Exit(1)
	}

	model := parseOne(cfg, args[0])
	fmt.Print(model.KinematicChain())
}

func cmdLinks(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("links", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Show inertia and contact details")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool links <file.urdf>")
		os.Exit(1)
	}

	model := parseOne(cfg, fs.Arg(0))

	for _, name := range model.SortedLinkNames() {
		link := model.LinkByName(name)
		parent := "(root)"
		if link.ParentJoint != nil {
			parent = "via " + link.ParentJoint.Name
		}
		fmt.Printf("%3d  %-24s %d visual(s), %d collision(s)  %s\n",
			link.Index, link.Name, len(link.Visuals), len(link.Collisions), parent)

		if *verbose {
			in := link.Inertia
			fmt.Printf("     mass=%g ixx=%g iyy=%g izz=%g\n", in.Mass, in.Ixx, in.Iyy, in.Izz)
			if f := link.Contact.LateralFriction; f != nil {
				fmt.Printf("     lateral_friction=%g\n", *f)
			}
		}
	}
}

func cmdJoints(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool joints <file.urdf>")
		os.Exit(1)
	}

	model := parseOne(cfg, args[0])

	for _, name := range model.SortedJointNames() {
		joint := model.JointByName(name)
		fmt.Printf("%-24s %-10s %s -> %s\n",
			joint.Name, joint.Type, joint.ParentLinkName, joint.ChildLinkName)
		switch joint.Type {
		case urdf.JointRevolute, urdf.JointPrismatic:
			fmt.Printf("%24s range=[%g, %g] effort=%g velocity=%g\n",
				"", joint.LowerLimit, joint.UpperLimit, joint.EffortLimit, joint.VelocityLimit)
		}
	}
}

func cmdMaterials(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool materials <file.urdf>")
		os.Exit(1)
	}

	model := parseOne(cfg, args[0])

	if len(model.Materials) == 0 {
		fmt.Fprintln(os.Stderr, "No materials")
		return
	}

	for _, name := range sortedKeys(model.Materials) {
		mat := model.Materials[name]
		c := mat.Color
		fmt.Printf("%-24s rgba=(%g, %g, %g, %g)", mat.Name, c.R, c.G, c.B, c.A)
		if mat.TextureFile != "" {
			fmt.Printf(" texture=%s", mat.TextureFile)
		}
		fmt.Println()
	}
}

func cmdCheck(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: urdftool check <file.urdf>...")
		os.Exit(1)
	}

	parser := newParser(cfg)

	failed := 0
	for _, path := range args {
		model, err := parser.ParseFile(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s (%d links, %d joints)\n", path, len(model.Links), len(model.Joints))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d file(s) failed\n", failed, len(args))
		os.Exit(1)
	}
}

func sortedKeys(m map[string]*urdf.Material) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
