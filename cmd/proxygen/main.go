// Command proxygen builds the local card database and renders proxies.
//
//	proxygen --update all
//	proxygen --decklist decklist.txt
//	proxygen --card "Lightning Bolt" --card "Counterspell"
//	proxygen --strip-watermark output/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/youruser/proxyapp/internal/app"
	"github.com/youruser/proxyapp/internal/batch"
	"github.com/youruser/proxyapp/internal/cards"
	"github.com/youruser/proxyapp/internal/config"
	"github.com/youruser/proxyapp/internal/deck"
	imagepkg "github.com/youruser/proxyapp/internal/image"
	"github.com/youruser/proxyapp/internal/logger"
	"github.com/youruser/proxyapp/internal/scryfall"
)

var errUsage = errors.New("usage")

// flagKeys binds CLI flags to configuration keys.
var flagKeys = map[string]string{
	"render.template":    "template",
	"render.naming":      "naming",
	"render.workers":     "workers",
	"render.backs":       "backs",
	"render.sheet":       "sheet",
	"paths.output_dir":   "output",
	"paths.data_dir":     "data",
	"paths.template_dir": "templates",
}

type options struct {
	configFile string
	update     string
	decklist   string
	cards      []string
	basic      bool
	strip      string
	noVerbose  bool
}

func newFlagSet(opts *options, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("proxygen", pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage of proxygen:")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.configFile, "config", "", "config file (default ./config.yaml)")
	fs.StringVar(&opts.update, "update", "", "refresh the local card database: all, bulk or cards")
	fs.StringVar(&opts.decklist, "decklist", "", "render every card of a decklist file")
	fs.StringArrayVar(&opts.cards, "card", nil, "render one card by exact name (repeatable)")
	fs.BoolVar(&opts.basic, "basic", false, "render at card size without print bleed")
	fs.StringVar(&opts.strip, "strip-watermark", "", "strip print-service watermarks from images in a directory")
	fs.BoolVar(&opts.noVerbose, "noverbose", false, "only log warnings and errors")

	fs.String("template", "print", "template variant: print, plain or border-extension")
	fs.String("naming", "slug", "output file naming: slug or artist")
	fs.Int("workers", 2, "concurrent renders")
	fs.Bool("backs", false, "also write a QR code card back per proxy")
	fs.Bool("sheet", false, "write a contact sheet for decklist runs")
	fs.String("output", "output", "output directory")
	fs.String("data", "data", "card database directory")
	fs.String("templates", "template-data", "template asset directory")
	return fs
}

func updateOptions(kind, bulkType string) (scryfall.UpdateOptions, error) {
	opt := scryfall.UpdateOptions{Type: bulkType}
	switch kind {
	case "all":
		opt.Bulk, opt.Cards = true, true
	case "bulk":
		opt.Bulk = true
	case "cards":
		opt.Cards = true
	default:
		return opt, fmt.Errorf("%w: --update must be one of all, bulk, cards (got %q)", errUsage, kind)
	}
	return opt, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "proxygen:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var opts options
	fs := newFlagSet(&opts, out)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.update == "" && opts.decklist == "" && len(opts.cards) == 0 && opts.strip == "" {
		fs.Usage()
		return fmt.Errorf("%w: nothing to do", errUsage)
	}
	var upd scryfall.UpdateOptions
	if opts.update != "" {
		var err error
		if upd, err = updateOptions(opts.update, ""); err != nil {
			return err
		}
	}

	cfg, err := config.Load(config.Options{File: opts.configFile, Flags: fs, FlagKeys: flagKeys})
	if err != nil {
		return err
	}
	if opts.basic {
		cfg.Render.Template = imagepkg.Plain.Name
	}
	if opts.noVerbose {
		cfg.Log.Level = "warn"
	}
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	if opts.update != "" {
		upd.Type = cfg.Scryfall.BulkType
		if err := app.NewClient(cfg, log).Update(ctx, cfg.Paths.DataDir, upd); err != nil {
			return err
		}
	}
	if opts.decklist == "" && len(opts.cards) == 0 && opts.strip == "" {
		return nil
	}

	a, err := app.Open(cfg, log)
	if err != nil {
		return err
	}

	if opts.strip != "" {
		rep, err := imagepkg.StripWatermarks(opts.strip, a.Catalog, log)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "stripped %d images, %d not in the card database\n", len(rep.Processed), len(rep.Missing))
	}

	if opts.decklist != "" {
		d, err := deck.LoadFile(opts.decklist)
		if err != nil {
			return err
		}
		bopt := batchOptions(a)
		if cfg.Render.Sheet {
			bopt.SheetName = cards.Slug(d.Name) + "-sheet.png"
			bopt.SheetQR = deck.ExportDeckText(d, false)
		}
		sum, err := a.Runner.RunDeck(ctx, d, bopt)
		report(out, sum)
		if err != nil {
			return err
		}
	}

	if len(opts.cards) > 0 {
		sum, err := a.Runner.Run(ctx, opts.cards, batchOptions(a))
		report(out, sum)
		if err != nil {
			return err
		}
	}
	return nil
}

func batchOptions(a *app.App) batch.Options {
	return batch.Options{
		Variant: a.Variant,
		Workers: a.Config.Render.Workers,
		Backs:   a.Config.Render.Backs,
	}
}

func report(out io.Writer, sum batch.Summary) {
	fmt.Fprintf(out, "run %s: %d written\n", sum.RunID, len(sum.Written))
	for _, f := range sum.Rejected {
		fmt.Fprintf(out, "  cannot find %s in local database\n", f.Name)
	}
	for _, f := range sum.NoArt {
		fmt.Fprintf(out, "  no artwork for %s: %s\n", f.Name, f.Reason)
	}
	if sum.Sheet != "" {
		fmt.Fprintf(out, "contact sheet: %s\n", sum.Sheet)
	}
}
