// Command ohline runs a pipeline interference study from JSON inputs:
// it sectionizes the surveyed routes, sweeps the steady-state coupling,
// optionally screens a phase-to-earth fault and plots the voltage profile
// of the worst section.
package main

import (
	"fmt"
	"math/cmplx"
	"os"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/ohline/induction"
	"github.com/katalvlaran/ohline/line"
	"github.com/katalvlaran/ohline/pipeline"
	"github.com/katalvlaran/ohline/report"
	"github.com/katalvlaran/ohline/route"
	"github.com/katalvlaran/ohline/study"
	"github.com/katalvlaran/ohline/telegraph"
)

func main() {
	var (
		linePath     = pflag.String("line", "", "overhead line configuration JSON (required)")
		pipePath     = pflag.String("pipeline", "", "pipeline configuration JSON (required)")
		lineRoute    = pflag.String("line-route", "", "overhead line trajectory JSON (required)")
		pipeRoute    = pflag.String("pipe-route", "", "pipeline trajectory JSON (required)")
		currentsPath = pflag.String("currents", "", "operating currents JSON (required)")
		step         = pflag.Float64("step", route.DefaultStep, "sectionizing step along the pipeline, m")
		faultsPath   = pflag.String("faults", "", "fault scenarios JSON (optional)")
		faultPhase   = pflag.String("fault-phase", "", "phase label for ad-hoc fault screening (optional)")
		faultCurrent = pflag.Float64("fault-current", 13000, "ad-hoc fault current magnitude, A")
		profilePath  = pflag.String("profile", "", "write the worst section's voltage profile PNG here")
		grounded     = pflag.Bool("grounded", false, "profile with both section ends bonded to earth")
		samples      = pflag.Int("samples", telegraph.DefaultOptions().Samples, "profile sample count")
		sectionLen   = pflag.Float64("section-length", 0, "profiled section length override, km (0 = worst section)")
	)
	pflag.Parse()

	if err := run(*linePath, *pipePath, *lineRoute, *pipeRoute, *currentsPath, *faultsPath,
		*step, *faultPhase, *faultCurrent, *profilePath, *grounded, *samples, *sectionLen); err != nil {
		fmt.Fprintln(os.Stderr, "ohline:", err)
		os.Exit(1)
	}
}

func run(linePath, pipePath, lineRoute, pipeRoute, currentsPath, faultsPath string,
	step float64, faultPhase string, faultCurrent float64, profilePath string,
	grounded bool, samples int, sectionLen float64) error {
	for name, v := range map[string]string{
		"--line": linePath, "--pipeline": pipePath,
		"--line-route": lineRoute, "--pipe-route": pipeRoute,
		"--currents": currentsPath,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	lineCfg, err := study.LoadLineConfig(linePath)
	if err != nil {
		return err
	}
	pipeCfg, err := study.LoadPipelineConfig(pipePath)
	if err != nil {
		return err
	}
	ohlTraj, err := study.LoadTrajectory(lineRoute)
	if err != nil {
		return err
	}
	plTraj, err := study.LoadTrajectory(pipeRoute)
	if err != nil {
		return err
	}
	currents, err := study.LoadCurrents(currentsPath)
	if err != nil {
		return err
	}

	sections, err := route.Sectionize(ohlTraj.Points(), plTraj.Points(), step)
	if err != nil {
		return err
	}
	fmt.Printf("Routes %q vs %q: %d sections, %.2f km exposure\n\n",
		ohlTraj.Name, plTraj.Name, len(sections), route.TotalLength(sections)/1000)

	res, err := study.Sweep(lineCfg, pipeCfg, currents, sections)
	if err != nil {
		return err
	}
	if err := report.WriteSectionTable(os.Stdout, res); err != nil {
		return err
	}

	worst := worstSection(res)
	switch {
	case faultsPath != "":
		scenarios, err := study.LoadFaultScenarios(faultsPath)
		if err != nil {
			return err
		}
		if err := scenarioReport(lineCfg, pipeCfg, worst.Separation, scenarios); err != nil {
			return err
		}
	case faultPhase != "":
		if err := faultReport(lineCfg, pipeCfg, worst.Separation, faultPhase, faultCurrent); err != nil {
			return err
		}
	}
	if profilePath != "" {
		if err := profileReport(lineCfg, pipeCfg, worst, profilePath, grounded, samples, sectionLen); err != nil {
			return err
		}
	}
	return nil
}

// worstSection picks the section with the highest per-km EMF.
func worstSection(res *study.Result) study.SectionResult {
	worst := res.Sections[0]
	for _, s := range res.Sections[1:] {
		if cmplx.Abs(s.EMF) > cmplx.Abs(worst.EMF) {
			worst = s
		}
	}
	return worst
}

// faultReport screens a single-phase-to-earth fault at the worst section.
func faultReport(lineCfg study.LineConfig, pipeCfg study.PipelineConfig,
	separation float64, phase string, current float64) error {
	sys, err := corridor(lineCfg, pipeCfg, separation)
	if err != nil {
		return err
	}
	k, err := induction.ScreeningFactor(sys, phase)
	if err != nil {
		return err
	}
	emf, err := induction.FaultEMF(sys, phase, complex(current, 0))
	if err != nil {
		return err
	}
	fmt.Printf("\nFault on phase %s, %.0f A at %.1f m separation:\n", phase, current, separation)
	fmt.Printf("  screening factor k = %.4f%+.4fj (|k| = %.4f)\n", real(k), imag(k), cmplx.Abs(k))
	fmt.Printf("  fault EMF = %.1f V/km\n", cmplx.Abs(emf))
	return nil
}

// scenarioReport evaluates a fault scenario file at the worst section.
func scenarioReport(lineCfg study.LineConfig, pipeCfg study.PipelineConfig,
	separation float64, scenarios []study.FaultScenario) error {
	sys, err := corridor(lineCfg, pipeCfg, separation)
	if err != nil {
		return err
	}
	results, err := study.EvaluateFaults(sys, scenarios)
	if err != nil {
		return err
	}
	fmt.Printf("\nFault scenarios at %.1f m separation:\n", separation)
	for i, r := range results {
		fmt.Printf("  %d. %s: EMF %.1f V/km, section voltage %.1f V, touch %.1f V, risk %s\n",
			i+1, r.Scenario.Description, cmplx.Abs(r.EMF), cmplx.Abs(r.Voltage), r.TouchVoltage, r.Risk)
	}
	return nil
}

// profileReport plots the longitudinal voltage of the worst section.
func profileReport(lineCfg study.LineConfig, pipeCfg study.PipelineConfig,
	worst study.SectionResult, path string, grounded bool, samples int, sectionLen float64) error {
	par, err := pipeline.Compute(pipeCfg.Physical(), lineCfg.Params())
	if err != nil {
		return err
	}
	boundary := telegraph.Open
	if grounded {
		boundary = telegraph.Grounded
	}
	length := worst.Length / 1000
	if sectionLen > 0 {
		length = sectionLen
	}
	profile, err := telegraph.Profile(par, worst.EMF, length, boundary, telegraph.Options{Samples: samples})
	if err != nil {
		return err
	}
	title := fmt.Sprintf("Worst section: %.0f m at %.1f m separation, %s ends",
		length*1000, worst.Separation, boundary)
	if err := report.SaveProfilePNG(path, title, profile); err != nil {
		return err
	}
	fmt.Printf("\nProfile: max voltage %.1f V, written to %s\n", telegraph.MaxVoltage(profile), path)
	return nil
}

// corridor rebuilds the section model for the fault study.
func corridor(lineCfg study.LineConfig, pipeCfg study.PipelineConfig, separation float64) (*line.System, error) {
	conds, err := lineCfg.Conductors()
	if err != nil {
		return nil, err
	}
	pl, err := pipeCfg.Conductor(study.PipelineLabel, separation)
	if err != nil {
		return nil, err
	}
	return line.NewSystem(append(conds, pl), lineCfg.Params())
}
