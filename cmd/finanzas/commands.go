package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"finanzas/internal/charts"
	"finanzas/internal/cli"
	"finanzas/internal/core"
	"finanzas/internal/dashboard"
	"finanzas/internal/log"
)

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// periodFlag registers -period on fs and returns a setter applying it.
func periodFlag(fs *flag.FlagSet, def core.Period) func(*dashboard.Tracker) error {
	raw := fs.String("period", string(def), "week, month, year or all")
	return func(t *dashboard.Tracker) error {
		p, ok := core.ParsePeriod(*raw)
		if !ok {
			return fmt.Errorf("%w: %q", core.ErrUnknownPeriod, *raw)
		}
		t.SetPeriod(p)
		return nil
	}
}

func parseDateFlag(raw string) (civil.Date, error) {
	if raw == "" {
		return core.Today(time.Now()), nil
	}
	date, err := core.ParseDate(raw)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", err, raw)
	}
	return date, nil
}

func runAdd(ctx context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("add", out)
	typ := fs.String("type", string(core.Expense), "income or expense")
	name := fs.String("name", "", "description")
	amount := fs.String("amount", "", "amount, e.g. 12.50 or 12,50")
	category := fs.String("category", "", "category (defaults by type)")
	method := fs.String("method", core.DefaultPaymentMethod, "payment method")
	date := fs.String("date", "", "date as YYYY-MM-DD (defaults to today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := core.ParseTransactionType(*typ)
	if err != nil {
		return err
	}
	draft := core.NewDraft(t)
	if err := fillDraft(&draft, *name, *amount, *date); err != nil {
		return err
	}
	if *category != "" {
		draft.Category = *category
	}
	draft.PaymentMethod = *method

	return create(ctx, app, out, draft)
}

func runQuick(ctx context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("quick", out)
	label := fs.String("action", "", "quick action label")
	amount := fs.String("amount", "", "amount")
	date := fs.String("date", "", "date as YYYY-MM-DD (defaults to today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	action, ok := core.FindQuickAction(*label)
	if !ok {
		labels := make([]string, len(core.QuickActions))
		for i, a := range core.QuickActions {
			labels[i] = a.Label
		}
		return fmt.Errorf("unknown quick action %q, choose one of: %s", *label, strings.Join(labels, ", "))
	}
	draft := action.Draft()
	if err := fillDraft(&draft, action.Label, *amount, *date); err != nil {
		return err
	}
	return create(ctx, app, out, draft)
}

func fillDraft(d *core.Draft, name, amount, date string) error {
	parsed, err := core.ParseAmount(amount)
	if err != nil {
		return fmt.Errorf("%w: %q", err, amount)
	}
	day, err := parseDateFlag(date)
	if err != nil {
		return err
	}
	d.Name = strings.TrimSpace(name)
	d.Amount = parsed
	d.Date = day
	return d.Validate()
}

func create(ctx context.Context, app *cli.App, out io.Writer, d core.Draft) error {
	t := app.Tracker.Create(ctx, d)
	fmt.Fprintf(out, "Guardado %s  %s  %s  %s\n", t.ID, t.Date, t.Name, core.FormatSigned(t))
	return nil
}

func runDelete(ctx context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("delete", out)
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	if app.Tracker.Delete(ctx, *id) {
		fmt.Fprintf(out, "Eliminado %s\n", *id)
	} else {
		fmt.Fprintf(out, "No existe la transacción %s\n", *id)
	}
	return nil
}

func runList(_ context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("list", out)
	apply := periodFlag(fs, app.Tracker.Period())
	limit := fs.Int("n", 0, "show at most n transactions (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := apply(app.Tracker); err != nil {
		return err
	}

	txs := app.Tracker.View().Transactions
	if *limit > 0 {
		txs = app.Tracker.Recent(*limit)
	}
	if len(txs) == 0 {
		fmt.Fprintln(out, "Sin movimientos")
		return nil
	}
	writeTransactions(out, txs)
	return nil
}

func writeTransactions(out io.Writer, txs []core.Transaction) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tNOMBRE\tCATEGORÍA\tMÉTODO\tMONTO")
	for _, t := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date, t.Name, t.Category, t.PaymentMethod, core.FormatSigned(t))
	}
	w.Flush()
}

func runStats(_ context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("stats", out)
	apply := periodFlag(fs, app.Tracker.Period())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := apply(app.Tracker); err != nil {
		return err
	}

	v := app.Tracker.View()
	fmt.Fprintf(out, "Periodo:   %s\n", v.Period.Label())
	fmt.Fprintf(out, "Balance:   %s\n", core.FormatAmount(v.Totals.Balance))
	fmt.Fprintf(out, "Ingresos:  %s\n", core.FormatAmount(v.Totals.Income))
	fmt.Fprintf(out, "Gastos:    %s\n", core.FormatAmount(v.Totals.Expense))
	fmt.Fprintf(out, "Ahorro:    %s%%\n", v.Totals.SavingsProgress().StringFixed(0))

	recent := app.Tracker.Recent(dashboard.RecentCount)
	if len(recent) > 0 {
		fmt.Fprintln(out, "\nRecientes:")
		writeTransactions(out, recent)
	}
	return nil
}

func runCharts(ctx context.Context, app *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("charts", out)
	dir := fs.String("out", app.Config.ChartDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("create chart directory: %w", err)
	}

	flow := app.Tracker.CashFlow()
	top := app.Tracker.TopCategories()
	r := charts.NewRenderer()

	var flowPNG, topPNG []byte
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flowPNG, err = r.CashFlow(flow)
		return err
	})
	g.Go(func() error {
		var err error
		topPNG, err = r.TopCategories(top)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.FromContext(ctx).WithComponent(log.ComponentCharts).DebugContext(ctx, "Charts rendered",
		log.FieldOperation, log.OpRender,
		"cash_flow_bytes", len(flowPNG),
		"categories_bytes", len(topPNG))

	if flowPNG == nil && topPNG == nil {
		fmt.Fprintln(out, "Sin datos para gráficos")
		return nil
	}
	images := []struct {
		name string
		png  []byte
	}{
		{"flujo.png", flowPNG},
		{"categorias.png", topPNG},
	}
	for _, img := range images {
		if img.png == nil {
			continue
		}
		path := filepath.Join(*dir, img.name)
		if err := os.WriteFile(path, img.png, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(out, "Gráfico guardado en %s\n", path)
	}
	return nil
}

func runCategories(_ context.Context, _ *cli.App, out io.Writer, args []string) error {
	fs := newFlagSet("categories", out)
	typ := fs.String("type", "", "income or expense (both when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	types := []core.TransactionType{core.Income, core.Expense}
	if *typ != "" {
		t, err := core.ParseTransactionType(*typ)
		if err != nil {
			return err
		}
		types = []core.TransactionType{t}
	}

	for _, t := range types {
		fmt.Fprintf(out, "%s:\n", t)
		for _, c := range core.CategoriesFor(t) {
			fmt.Fprintf(out, "  %s (%s)\n", c.Name, c.Color)
		}
	}
	fmt.Fprintln(out, "Métodos de pago:")
	for _, m := range core.PaymentMethods {
		fmt.Fprintf(out, "  %s\n", m)
	}
	fmt.Fprintln(out, "Accesos rápidos:")
	for _, a := range core.QuickActions {
		fmt.Fprintf(out, "  %s %s (%s, %s)\n", a.Icon, a.Label, a.Type, a.Category)
	}
	return nil
}
