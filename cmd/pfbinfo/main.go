// Command pfbinfo prints design properties of polyphase filter banks.
//
// Usage:
//
//	pfbinfo [flags] [preset-name ...]
//
// Without arguments it prints info for all named presets.
//
// Examples:
//
//	pfbinfo chime
//	pfbinfo -nfine 256 guppi
//	pfbinfo -nchan 64 -ntaps 12 -width 0.95
//	pfbinfo -nchan 64 -window kaiser -beta 8
//	pfbinfo -list
//	pfbinfo -windows
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pfb/dsp/core"
	"github.com/cwbudde/algo-pfb/dsp/pfb"
	"github.com/cwbudde/algo-pfb/dsp/window"
)

func main() {
	nfine := flag.Int("nfine", 128, "fine-frequency bins across one channel")
	list := flag.Bool("list", false, "list available preset names")
	windows := flag.Bool("windows", false, "print the taper catalog and exit")
	nchan := flag.Int("nchan", 0, "channels for an ad-hoc design (ignores presets)")
	ntaps := flag.Int("ntaps", 8, "taps per channel for an ad-hoc design")
	width := flag.Float64("width", 1.0, "fractional channel width for an ad-hoc design")
	winName := flag.String("window", "hamming", "taper for an ad-hoc design (hamming, hanning, blackman, boxcar, kaiser)")
	beta := flag.Float64("beta", 8.6, "kaiser beta for -window kaiser")
	bug := flag.Bool("bug", false, "omit the half-sample centering offset")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pfbinfo [flags] [preset-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints design properties of polyphase filter banks.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all named presets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo chime guppi\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -nfine 256 guppi\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -nchan 64 -ntaps 12 -width 0.95\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -windows\n")
		fmt.Fprintf(os.Stderr, "  pfbinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range pfb.PresetNames() {
			fmt.Println(name)
		}
		return
	}

	if *windows {
		printTaperCatalog()
		return
	}

	var specs []labeledSpec

	if *nchan > 0 {
		spec, err := adHocSpec(*nchan, *ntaps, *width, *winName, *beta, *bug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		specs = append(specs, labeledSpec{"custom", spec})
	} else {
		names := flag.Args()
		if len(names) == 0 {
			names = pfb.PresetNames()
		}
		specs = resolvePresets(names)
	}

	if len(specs) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching designs\n")
		os.Exit(1)
	}

	printAnalysis(specs, *nfine)
}

type labeledSpec struct {
	label string
	spec  pfb.Spec
}

func adHocSpec(nchan, ntaps int, width float64, winName string, beta float64, bug bool) (pfb.Spec, error) {
	win, err := windowByName(winName, beta)
	if err != nil {
		return pfb.Spec{}, err
	}

	opts := []pfb.Option{pfb.WithWidth(width), pfb.WithWindow(win)}
	if bug {
		opts = append(opts, pfb.WithBug())
	}

	return pfb.New(nchan, ntaps, opts...)
}

func windowByName(name string, beta float64) (pfb.Window, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hamming":
		return pfb.Hamming, nil
	case "hanning", "hann":
		return pfb.Hanning, nil
	case "blackman":
		return pfb.Blackman, nil
	case "boxcar", "rectangular":
		return pfb.Boxcar, nil
	case "kaiser":
		return pfb.KaiserWindow(beta), nil
	default:
		return pfb.Window{}, fmt.Errorf("unknown window %q", name)
	}
}

func resolvePresets(names []string) []labeledSpec {
	var result []labeledSpec
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		spec, err := pfb.Preset(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: unknown preset %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, labeledSpec{name, spec})
	}
	return result
}

// printTaperCatalog prints the static taper metadata table.
func printTaperCatalog() {
	types := []window.Type{
		window.TypeRectangular,
		window.TypeHann,
		window.TypeHamming,
		window.TypeBlackman,
		window.TypeBlackmanHarris4Term,
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Taper\tENBW [bins]\tSidelobe [dB]\tCoherent Gain\n")
	fmt.Fprintf(tw, "-----\t-----------\t-------------\t-------------\n")

	for _, t := range types {
		m := window.Info(t)
		fmt.Fprintf(tw, "%s\t%.4f\t%.1f\t%.4f\n", m.Name, m.ENBW, m.HighestSidelobe, m.CoherentGain)
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// taperAnalysisSize bounds the length the taper figures of merit are
// computed at. Analyze's sidelobe search is O(n^2) in the taper length,
// so large designs are analyzed at a representative size instead of the
// full nchan*ntaps.
const taperAnalysisSize = 1024

func printAnalysis(specs []labeledSpec, nfine int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Design\tChannels\tTaps\tWidth\tWindow\tENBW [bins]\tSidelobe [dB]\tPeak tap [dB]\tEdge [dB]\tBW 3dB [chan]\tFloor [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t--------\t----\t-----\t------\t-----------\t-------------\t-------------\t---------\t-------------\t----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, ls := range specs {
		resp, err := ls.spec.Passband(nfine)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", ls.label, err)
			continue
		}

		coefs, err := ls.spec.Coefficients()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", ls.label, err)
			continue
		}

		n := ls.spec.NumCoefficients()
		if n > taperAnalysisSize {
			n = taperAnalysisSize
		}
		taper := ls.spec.Window.Coefficients(n)

		enbw, err := window.EquivalentNoiseBandwidth(taper)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", ls.label, err)
			continue
		}

		analysis := window.Analyze(taper)

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%g\t%s\t%.4f\t%.2f\t%.2f\t%.2f\t%.4f\t%.2f\n",
			ls.label,
			ls.spec.NChan,
			ls.spec.NTaps,
			ls.spec.Width,
			ls.spec.Window.Name(),
			enbw,
			analysis.HighestSidelobedB,
			core.LinearToDB(peakTap(coefs)),
			core.LinearPowerToDB(resp[0]),
			bandwidth3dB(resp),
			core.LinearPowerToDB(minPower(resp)),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// bandwidth3dB measures the half-power width of the channel response in
// units of the channel spacing.
func bandwidth3dB(resp []float64) float64 {
	halfPower := core.DBPowerToLinear(-3)

	nfine := len(resp)
	center := nfine / 2

	lo := center
	for lo > 0 && resp[lo-1] >= halfPower {
		lo--
	}

	hi := center
	for hi < nfine-1 && resp[hi+1] >= halfPower {
		hi++
	}

	return float64(hi-lo+1) / float64(nfine)
}

func peakTap(coefs []float64) float64 {
	peak := 0.0
	for _, v := range coefs {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

func minPower(resp []float64) float64 {
	min := math.Inf(1)
	for _, v := range resp {
		if v < min {
			min = v
		}
	}
	return min
}
