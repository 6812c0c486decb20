// Command seed-check loads the sample dataset into an in-memory store, runs
// the default rules over it and prints the statistics dashboard.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"gymconsole/internal/config"
	"gymconsole/internal/core"
	"gymconsole/internal/derive"
	"gymconsole/internal/infra/persistence/memory"
	"gymconsole/internal/observability"
	"gymconsole/internal/role"
	"gymconsole/internal/seed"
	"gymconsole/internal/stats"
	"gymconsole/pkg/domain"
)

var exitFunc = os.Exit

func main() {
	code := cli(os.Args[1:], os.Stdout, os.Stderr)
	exitFunc(code)
}

type report struct {
	Role            role.Role                  `json:"role"`
	Today           domain.Date                `json:"today"`
	Violations      []domain.Violation         `json:"violations"`
	Members         stats.MemberData           `json:"members"`
	Staff           []stats.StaffData          `json:"staff,omitempty"`
	MembershipTypes []stats.MembershipTypeData `json:"membershipTypes,omitempty"`
	Revenue         []stats.RevenueData        `json:"revenue,omitempty"`
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print the report as JSON")
	roleFlag := fs.String("role", "", "role to render the dashboard for (defaults to GYM_DEFAULT_ROLE)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "seed-check: %v\n", err)
		return 1
	}
	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "seed-check: build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	provider := role.Static(cfg.DefaultRole)
	if *roleFlag != "" {
		provider = role.Static(*roleFlag)
	}

	rep, err := run(context.Background(), cfg, provider, logger)
	if err != nil {
		logger.Error("seed check failed", zap.Error(err))
		fmt.Fprintf(stderr, "seed-check: %v\n", err)
		return 1
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return 1
		}
		return 0
	}
	if err := render(stdout, rep); err != nil {
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, provider role.Provider, logger *zap.Logger) (report, error) {
	engine := core.NewDefaultRulesEngine()
	store := memory.NewStore(engine)
	metrics, err := core.NewPrometheusMetricsRecorder(prometheus.NewRegistry(), cfg.MetricsNamespace)
	if err != nil {
		return report{}, err
	}
	svc := core.NewService(store,
		core.WithLogger(logger),
		core.WithMetricsRecorder(metrics),
		core.WithMissingPolicy(cfg.MissingPolicy()),
		core.WithLocation(cfg.Location()),
	)

	if cfg.SeedEnabled {
		if _, err := seed.Load(ctx, svc.Store(), seed.Sample()); err != nil {
			return report{}, err
		}
	}

	rep := report{Role: provider.CurrentRole(), Today: svc.Today()}
	err = svc.Store().View(ctx, func(view domain.TransactionView) error {
		res, err := engine.Evaluate(ctx, view, nil)
		if err != nil {
			return err
		}
		rep.Violations = res.Violations
		rep.Members = stats.MemberSummary(view, rep.Today)
		if role.Allows(rep.Role, role.ViewStatistics) {
			rep.Staff = stats.StaffRows(view, rep.Today)
			rep.MembershipTypes = stats.MembershipTypes(view)
			rep.Revenue = stats.Revenue(view)
		}
		return nil
	})
	if err != nil {
		return report{}, fmt.Errorf("evaluate store: %w", err)
	}
	logger.Info("seed check complete",
		zap.Int("members", rep.Members.Total),
		zap.Int("violations", len(rep.Violations)),
		zap.String("role", string(rep.Role)),
	)
	return rep, nil
}

func render(w io.Writer, rep report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "role\t%s (%s)\n", rep.Role.Label(), rep.Role)
	fmt.Fprintf(tw, "today\t%s\n", derive.FormatDate(rep.Today))
	fmt.Fprintf(tw, "violations\t%d\n", len(rep.Violations))
	for _, v := range rep.Violations {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Severity, v.Rule, v.Message)
	}
	m := rep.Members
	fmt.Fprintf(tw, "members\ttotal %d\tactive %d\tlesson %d\tinactive %d\n", m.Total, m.Active, m.Lesson, m.Inactive)
	if rep.Staff == nil {
		fmt.Fprintln(tw, "statistics\thidden for this role")
		return tw.Flush()
	}
	fmt.Fprintln(tw, "\nstaff\tmembers\trevenue\tretention\tnew\tstatus")
	for _, s := range rep.Staff {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f%%\t%d\t%s\n", s.Name, s.Lesson, derive.FormatCurrency(s.Revenue), s.RetentionRate, s.NewMembers, s.Status)
	}
	fmt.Fprintln(tw, "\nmembership\tcount")
	for _, t := range rep.MembershipTypes {
		fmt.Fprintf(tw, "%s\t%d\n", t.Name, t.Value)
	}
	if len(rep.Revenue) > 0 {
		fmt.Fprintln(tw, "\nmonth\tmembership\tlesson\tdaily\tother")
		for _, r := range rep.Revenue {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Month,
				derive.FormatCurrency(r.Membership), derive.FormatCurrency(r.Lesson),
				derive.FormatCurrency(r.Daily), derive.FormatCurrency(r.Other))
		}
	}
	return tw.Flush()
}
