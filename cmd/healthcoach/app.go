package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fardannozami/health-coach/internal/app/usecase"
	"github.com/fardannozami/health-coach/internal/config"
	"github.com/fardannozami/health-coach/internal/domain"
	"github.com/fardannozami/health-coach/internal/infra/term"
)

const usage = `Usage: healthcoach <command> [flags]

Commands:
  register   Register this device (-name -email -age -height [-weight] [-gender])
  log        Submit today's food and water log
  logs       Show recent daily logs [-limit N]
  reports    list | upload <file.pdf> | analyze [-key K] <report_id>
  workouts   list | generate [-key K] | open <exercise> | search [-query Q] [-limit N]
  profile    Show your profile and BMI
  logout     Remove the registration from this device [-yes]
`

type prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
	Confirm(ctx context.Context, question string) (bool, error)
}

type app struct {
	cfg      config.Config
	out      io.Writer
	prompter prompter

	registration *usecase.RegistrationUsecase
	dailyLog     *usecase.DailyLogUsecase
	reports      *usecase.HealthReportUsecase
	workouts     *usecase.WorkoutPlanUsecase
	profile      *usecase.ProfileUsecase
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return 2
	}

	cmd, rest := args[0], args[1:]
	if cmd == "register" {
		return a.register(ctx, rest)
	}

	// Everything else needs a registered device.
	s, err := a.registration.AutoRedirect(ctx)
	if err != nil {
		return a.fail(err, usecase.MsgLoadFailed)
	}
	if s == nil {
		term.ShowDialog(a.out, usecase.TitleNotSignedIn, "Please register first: healthcoach register -name ... -email ... -age ... -height ...")
		return 1
	}

	switch cmd {
	case "log":
		return a.submitLog(ctx, rest)
	case "logs":
		return a.listLogs(ctx, rest)
	case "reports":
		return a.reportsCmd(ctx, rest)
	case "workouts":
		return a.workoutsCmd(ctx, rest)
	case "profile":
		return a.showProfile(ctx)
	case "logout":
		return a.logout(ctx, rest)
	default:
		fmt.Fprintf(a.out, "Unknown command %q\n\n%s", cmd, usage)
		return 2
	}
}

// fail shows err as a dialog and returns the exit code for it.
func (a *app) fail(err error, fallback string) int {
	title, msg := usecase.Dialog(err, fallback)
	term.ShowDialog(a.out, title, msg)
	return 1
}

func (a *app) register(ctx context.Context, args []string) int {
	if s, err := a.registration.AutoRedirect(ctx); err == nil && s != nil {
		fmt.Fprintf(a.out, "Already registered as %s (%s). Run 'healthcoach logout' to start over.\n", s.Name, s.UserID)
		return 0
	}

	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(a.out)
	var form usecase.RegistrationForm
	fs.StringVar(&form.Name, "name", "", "full name")
	fs.StringVar(&form.Email, "email", "", "email address")
	fs.StringVar(&form.Age, "age", "", "age in years")
	fs.StringVar(&form.Gender, "gender", usecase.DefaultGender, "gender")
	fs.StringVar(&form.Height, "height", "", "height in cm")
	fs.StringVar(&form.Weight, "weight", "", "weight in kg (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NFlag() == 0 {
		if err := a.promptRegistration(ctx, &form); err != nil {
			return a.fail(err, usecase.MsgRegisterFailed)
		}
	}

	user, err := a.registration.Submit(ctx, form)
	if err != nil {
		return a.fail(err, usecase.MsgRegisterFailed)
	}

	term.ShowDialog(a.out, usecase.TitleSuccess, fmt.Sprintf("Welcome, %s! Your profile has been created.", user.Name))
	return 0
}

func (a *app) promptRegistration(ctx context.Context, form *usecase.RegistrationForm) error {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &form.Name},
		{"Email", &form.Email},
		{"Age", &form.Age},
		{"Gender (Male/Female/Other) [" + usecase.DefaultGender + "]", &form.Gender},
		{"Height (cm)", &form.Height},
		{"Weight (kg, optional)", &form.Weight},
	}
	for _, f := range fields {
		v, err := a.prompter.Prompt(ctx, f.label)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}
	return nil
}

type choiceFlag[T ~string] struct {
	dst   *T
	parse func(string) (T, error)
}

func (c choiceFlag[T]) String() string {
	if c.dst == nil {
		return ""
	}
	return string(*c.dst)
}

func (c choiceFlag[T]) Set(s string) error {
	v, err := c.parse(s)
	if err != nil {
		return err
	}
	*c.dst = v
	return nil
}

func mealFlags(fs *flag.FlagSet, name string, m *usecase.MealForm) {
	fs.StringVar(&m.Food, name, "", "what you ate for "+name)
	fs.Var(choiceFlag[domain.PortionSize]{&m.Portion, domain.ParsePortionSize}, name+"-portion", "portion size for "+name)
	fs.BoolVar(&m.Vegetables, name+"-veg", false, name+" had vegetables")
	fs.BoolVar(&m.Protein, name+"-protein", false, name+" had protein")
	fs.BoolVar(&m.Fried, name+"-fried", false, name+" was fried")
}

func (a *app) submitLog(ctx context.Context, args []string) int {
	form := usecase.NewDailyLogForm()

	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	fs.SetOutput(a.out)
	mealFlags(fs, "breakfast", &form.Breakfast)
	mealFlags(fs, "lunch", &form.Lunch)
	mealFlags(fs, "dinner", &form.Dinner.MealForm)
	fs.BoolVar(&form.Dinner.Dessert, "dessert", false, "had dessert")
	fs.BoolVar(&form.Dinner.After9PM, "after9pm", false, "ate dinner after 9pm")
	fs.BoolVar(&form.Snacks.HadSnacks, "snacks", false, "had snacks")
	fs.StringVar(&form.Snacks.Food, "snack-food", "", "what you snacked on")
	fs.Var(choiceFlag[domain.BeverageLevel]{&form.Snacks.Beverages, domain.ParseBeverageLevel}, "beverages", "sugary/caffeinated drinks: None, 1-2 cups, 3-4 cups, 5+ cups")
	fs.Var(choiceFlag[domain.WaterIntake]{&form.Water, domain.ParseWaterIntake}, "water", "water intake: <1 L, 1-2 L, 2-3 L, >3 L")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	a.dailyLog.Edit(func(f *usecase.DailyLogForm) { *f = form })

	created, err := a.dailyLog.Submit(ctx)
	if err != nil {
		return a.fail(err, usecase.MsgSubmitLogFailed)
	}

	term.ShowDialog(a.out, usecase.TitleSuccess, fmt.Sprintf("Daily log for %s submitted.", created.LogDate))
	return 0
}

func (a *app) listLogs(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("logs", flag.ContinueOnError)
	fs.SetOutput(a.out)
	limit := fs.Int("limit", a.cfg.DailyLogLimit, "number of logs to show")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logs, err := a.dailyLog.Recent(ctx, *limit)
	if err != nil {
		return a.fail(err, usecase.MsgLoadFailed)
	}
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No daily logs yet.")
		return 0
	}
	for _, l := range logs {
		fmt.Fprintf(a.out, "%s  breakfast: %s | lunch: %s | dinner: %s | water: %s\n",
			l.LogDate, l.Breakfast.Food, l.Lunch.Food, l.Dinner.Food, l.WaterIntake)
	}
	return 0
}

func (a *app) reportsCmd(ctx context.Context, args []string) int {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		if err := a.reports.Refresh(ctx); err != nil {
			return a.fail(err, usecase.MsgLoadFailed)
		}
		a.printReports()
		return 0

	case "upload":
		if len(args) != 1 {
			fmt.Fprintln(a.out, "usage: healthcoach reports upload <file.pdf>")
			return 2
		}
		f, err := a.reports.Select(args[0])
		if err != nil {
			return a.fail(err, usecase.MsgUploadFailed)
		}
		fmt.Fprintf(a.out, "Selected %s (%s, %d bytes)\n", f.Name, f.MimeType, f.Size)

		res, err := a.reports.Upload(ctx)
		if err != nil {
			return a.fail(err, usecase.MsgUploadFailed)
		}
		term.ShowDialog(a.out, usecase.TitleSuccess, nonEmpty(res.Message, "Report uploaded."))
		a.printReports()
		return 0

	case "analyze":
		fs := flag.NewFlagSet("reports analyze", flag.ContinueOnError)
		fs.SetOutput(a.out)
		key := fs.String("key", "", "Hugging Face API key (prompted for when omitted)")
		if err := fs.Parse(args); err != nil {
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(a.out, "usage: healthcoach reports analyze [-key K] <report_id>")
			return 2
		}
		if *key != "" {
			a.reports.Credentials().Provide(*key)
		}

		res, err := a.reports.Analyze(ctx, fs.Arg(0))
		if err != nil {
			return a.fail(err, usecase.MsgAnalyzeFailed)
		}
		fmt.Fprintf(a.out, "Analysis of %s (%s):\n%s\n", res.ReportID, res.ModelUsed, res.Analysis)
		return 0

	default:
		fmt.Fprintf(a.out, "Unknown reports command %q\n", sub)
		return 2
	}
}

func (a *app) printReports() {
	reports := a.reports.Reports()
	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports uploaded yet.")
		return
	}
	for _, r := range reports {
		status := "not analyzed"
		if r.HasAnalysis() {
			status = "analyzed"
		}
		fmt.Fprintf(a.out, "[%s] uploaded %s, %s\n", r.ReportID, r.UploadDate, status)
		if r.HasAnalysis() {
			fmt.Fprintf(a.out, "%s\n", indent(r.AIAnalysis))
		}
	}
}

func (a *app) workoutsCmd(ctx context.Context, args []string) int {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		if err := a.workouts.Refresh(ctx); err != nil {
			return a.fail(err, usecase.MsgLoadFailed)
		}
		a.printPlans()
		return 0

	case "generate":
		fs := flag.NewFlagSet("workouts generate", flag.ContinueOnError)
		fs.SetOutput(a.out)
		key := fs.String("key", "", "Hugging Face API key (prompted for when omitted)")
		if err := fs.Parse(args); err != nil {
			return 2
		}
		if *key != "" {
			a.workouts.Credentials().Provide(*key)
		}

		plan, err := a.workouts.Generate(ctx)
		if err != nil {
			return a.fail(err, usecase.MsgGeneratePlanFailed)
		}
		term.ShowDialog(a.out, usecase.TitleSuccess, nonEmpty(plan.Message, "Workout plan generated."))
		a.printPlans()
		return 0

	case "open":
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			fmt.Fprintln(a.out, "usage: healthcoach workouts open <exercise name>")
			return 2
		}
		a.workouts.OpenExercise(name)
		return 0

	case "search":
		fs := flag.NewFlagSet("workouts search", flag.ContinueOnError)
		fs.SetOutput(a.out)
		query := fs.String("query", "fitness", "search term")
		limit := fs.Int("limit", 20, "maximum number of exercises")
		if err := fs.Parse(args); err != nil {
			return 2
		}

		exercises, err := a.workouts.SearchExercises(ctx, *query, *limit)
		if err != nil {
			return a.fail(err, usecase.MsgSearchFailed)
		}
		for _, ex := range exercises {
			fmt.Fprintf(a.out, "- %s\n", ex.Name)
		}
		return 0

	default:
		fmt.Fprintf(a.out, "Unknown workouts command %q\n", sub)
		return 2
	}
}

func (a *app) printPlans() {
	plans := a.workouts.Plans()
	if len(plans) == 0 {
		fmt.Fprintln(a.out, "No workout plans yet.")
		return
	}
	for _, p := range plans {
		fmt.Fprintf(a.out, "Plan %s (%s)\n%s\n", p.PlanID, p.PlanDate, indent(p.Recommendations))
		for i, ex := range p.Exercises {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, ex.Name)
		}
	}
	fmt.Fprintln(a.out, "Watch an exercise: healthcoach workouts open <exercise name>")
}

func (a *app) showProfile(ctx context.Context) int {
	view, err := a.profile.Load(ctx)
	if err != nil {
		return a.fail(err, usecase.MsgLoadFailed)
	}

	u := view.User
	fmt.Fprintf(a.out, "Name:   %s\nEmail:  %s\nAge:    %d\nGender: %s\nHeight: %.0f cm\n", u.Name, u.Email, u.Age, u.Gender, u.Height)
	if u.Weight != nil {
		fmt.Fprintf(a.out, "Weight: %.1f kg\n", *u.Weight)
	}
	if view.HasBMI {
		fmt.Fprintf(a.out, "BMI:    %.1f (%s)\n", view.BMI, view.BMICategory)
	}
	return 0
}

func (a *app) logout(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	fs.SetOutput(a.out)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	confirmed := *yes
	if !confirmed {
		ok, err := a.prompter.Confirm(ctx, "Log out and remove your data from this device?")
		if err != nil {
			return a.fail(err, usecase.MsgLoadFailed)
		}
		confirmed = ok
	}

	if err := a.profile.Logout(ctx, confirmed); err != nil {
		if errors.Is(err, domain.ErrLogoutNotConfirmed) {
			fmt.Fprintln(a.out, "Logout cancelled.")
			return 0
		}
		return a.fail(err, usecase.MsgLoadFailed)
	}

	fmt.Fprintln(a.out, "Logged out. Run 'healthcoach register' to set up this device again.")
	return 0
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n    ")
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
