// camscenario is a CLI utility for generating and inspecting cam scenario files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/camkinetics/camrender/internal/mechanism"
	"github.com/camkinetics/camrender/internal/motion"
	"github.com/camkinetics/camrender/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`camscenario - cam mechanism scenario utility

Usage:
  camscenario <command> [options]

Commands:
  generate [options] <output.yaml>   Synthesize a scenario from a motion law
  info <scenario.yaml>               Show scenario summary

Examples:
  camscenario generate -ramp s7 -stroke 25 scenarios/demo.yaml
  camscenario info scenarios/demo.yaml`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	name := fs.String("name", "generated", "scenario name")
	ramp := fs.String("ramp", "s5", "ramp profile: cycloidal, s5 or s7")
	stroke := fs.Float64("stroke", 20, "follower stroke")
	step := fs.Float64("step", 2, "sampling step in degrees")
	camR0 := fs.Float64("cam-r0", 40, "cam base radius")
	bias := fs.Float64("bias", 50, "follower center distance bias")
	rod := fs.Float64("rod", 60, "rod length (0 disables the rod)")
	tdc := fs.Float64("tdc", 0, "top dead center offset in degrees")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: camscenario generate [options] <output.yaml>")
		os.Exit(1)
	}
	output := fs.Arg(0)

	rp, err := motion.ParseRamp(*ramp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sp := scenario.DefaultSynthesis()
	sp.Name = *name
	sp.Motion.Ramp = rp
	sp.Motion.Stroke = float32(*stroke)
	sp.Motion.SamplingStepDeg = float32(*step)
	sp.CamR0 = float32(*camR0)
	sp.CenterBias = float32(*bias)
	sp.RodLength = float32(*rod)
	sp.TDCOffsetDeg = float32(*tdc)

	scn, err := scenario.Synthesize(sp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := scn.Save(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d frames, stroke %.2f, ramp %s)\n",
		output, len(scn.PhiArray), sp.Motion.Stroke, rp)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: camscenario info <scenario.yaml>")
		os.Exit(1)
	}

	scn, err := scenario.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := scn.Profile()
	fmt.Printf("Name:            %s\n", scn.Name)
	fmt.Printf("Frames:          %d\n", p.NumFrames())
	fmt.Printf("Cam points:      %d (cartesian: %v, polar: %v)\n",
		camPointCount(&p), p.HasCartesianCam(), p.HasPolarCam())
	fmt.Printf("Envelope points: %d\n", len(p.InnerEnvelopeTheta))
	fmt.Printf("Stroke:          %.3f\n", p.Stroke)
	fmt.Printf("Rod length:      %.3f\n", p.RodLength)
	fmt.Printf("TDC offset:      %.3f rad\n", p.TDCOffset)
	fmt.Printf("Cycle ratio:     %.3f\n", p.CycleRatio)
	fmt.Printf("Outer boundary:  %.3f\n", p.OuterBoundaryRadius)
}

func camPointCount(p *mechanism.Profile) int {
	if p.HasCartesianCam() {
		return len(p.BaseCamX)
	}
	if p.HasPolarCam() {
		return len(p.BaseCamTheta)
	}
	return 0
}
