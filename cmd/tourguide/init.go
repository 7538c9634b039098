package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/felixgeelhaar/tourguide/internal/adapters/filesystem"
	"github.com/felixgeelhaar/tourguide/internal/domain/config"
)

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Scaffold a tour definition",
	Long: `Init writes a starter tour definition: a spotlight followed by one dialog
per target. Without --yes it asks for the details interactively.

The file extension picks the format (.yaml, .yml or .toml).

Examples:
  tourguide init
  tourguide init onboarding.toml
  tourguide init --yes --id welcome --targets "#sidebar,#editor" --layout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var (
	initYes     bool
	initID      string
	initTitle   string
	initTargets string
	initForce   bool
	initLayout  bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip the prompts and use flags and defaults")
	initCmd.Flags().StringVar(&initID, "id", "getting-started", "Tour id")
	initCmd.Flags().StringVar(&initTitle, "title", "Getting started", "Tour title")
	initCmd.Flags().StringVar(&initTargets, "targets", "#sidebar,#main", "Comma-separated dialog targets")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
	initCmd.Flags().BoolVar(&initLayout, "layout", false, "Add a terminal layout with one region per target")
}

// initAnswers holds the scaffold choices, from flags or the form.
type initAnswers struct {
	ID      string
	Title   string
	Targets string
	Format  string
	Layout  bool
}

func runInit(cmd *cobra.Command, args []string) error {
	path := definitionPath(args)
	answers := initAnswers{
		ID:      initID,
		Title:   initTitle,
		Targets: initTargets,
		Format:  string(formatOf(path)),
		Layout:  initLayout,
	}

	if !initYes {
		if err := askInit(&answers); err != nil {
			return err
		}
		if len(args) == 0 && cfgFile == "" {
			path = withFormat(path, config.Format(answers.Format))
		}
	}

	def := scaffold(answers)
	w := config.NewWriter(filesystem.NewRealFileSystem())
	if err := w.Write(path, def, initForce); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "✓ Wrote %s with %d step(s)\n", path, def.StepCount())
	_, _ = fmt.Fprintf(out, "\nNext: tourguide validate %s && tourguide run %s\n", path, path)
	return nil
}

func askInit(a *initAnswers) error {
	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Tour id").
				Description("Used for progress records").
				Value(&a.ID).
				Validate(requireValue("an id")),
			huh.NewInput().
				Title("Title").
				Value(&a.Title),
			huh.NewInput().
				Title("Targets").
				Description("Comma-separated, one dialog each (e.g. #sidebar,#editor)").
				Value(&a.Targets).
				Validate(requireValue("at least one target")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("YAML", string(config.FormatYAML)),
					huh.NewOption("TOML", string(config.FormatTOML)),
				).
				Value(&a.Format),
			huh.NewConfirm().
				Title("Add a terminal layout?").
				Description("One region per target, so the tour runs right away").
				Value(&a.Layout),
		),
	)
	return form.Run()
}

func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		form = form.WithAccessible(true)
	}
	return form
}

func requireValue(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("enter %s", what)
		}
		return nil
	}
}

// scaffold builds the definition for the answers.
func scaffold(a initAnswers) *config.Definition {
	targets := splitTargets(a.Targets)
	steps := make([]config.ScaffoldStep, 0, len(targets))
	for i, t := range targets {
		steps = append(steps, config.ScaffoldStep{
			Target: t,
			Title:  stepTitle(t),
			Body:   fmt.Sprintf("Step %d of the tour. Describe `%s` here.", i+1, t),
		})
	}

	def := config.NewScaffold(strings.TrimSpace(a.ID), strings.TrimSpace(a.Title), steps)
	if a.Layout {
		def.Layout = tiledLayout(targets, 80, 23)
	}
	return def
}

// tiledLayout places one region per target side by side.
func tiledLayout(targets []string, width, height int) []config.Region {
	if len(targets) == 0 {
		return nil
	}
	col := width / len(targets)
	regions := make([]config.Region, 0, len(targets))
	for i, t := range targets {
		id := strings.TrimPrefix(t, "#")
		w := col - 1
		if i == len(targets)-1 {
			w = width - i*col
		}
		regions = append(regions, config.Region{
			ID:     id,
			Label:  id,
			Left:   i * col,
			Top:    0,
			Width:  w,
			Height: height,
		})
	}
	return regions
}

// stepTitle turns a target such as "#side-bar" into "Side Bar".
func stepTitle(target string) string {
	name := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimLeft(target, "#."))
	return cases.Title(language.English).String(name)
}

func splitTargets(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func formatOf(path string) config.Format {
	if f, ok := config.FormatFor(path); ok {
		return f
	}
	return config.FormatYAML
}

// withFormat swaps the extension of path to match format.
func withFormat(path string, format config.Format) string {
	if formatOf(path) == format {
		return path
	}
	base := strings.TrimSuffix(path, pathExt(path))
	return base + "." + string(format)
}

func pathExt(path string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[i:]
	}
	return ""
}
