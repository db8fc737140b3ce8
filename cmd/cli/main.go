package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/wadjakorntonsri/cloud-resume/internal/logging"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository"
	"github.com/wadjakorntonsri/cloud-resume/pkg/client"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

const usage = "expected 'export', 'import', 'count' or 'visit' subcommands"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "export":
		err = withStore(ctx, cfg, func(store ports.VisitorStore) error {
			return doExport(ctx, store, os.Stdout)
		})
	case "import":
		importCmd := flag.NewFlagSet("import", flag.ExitOnError)
		importFile := importCmd.String("file", "", "JSON file to import")
		_ = importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		err = withStore(ctx, cfg, func(store ports.VisitorStore) error {
			f, err := os.Open(*importFile)
			if err != nil {
				return err
			}
			defer f.Close()
			n, err := doImport(ctx, store, f)
			slog.Info("import finished", "imported", n)
			return err
		})
	case "count":
		err = withStore(ctx, cfg, func(store ports.VisitorStore) error {
			records, err := store.Scan(ctx)
			if err != nil {
				return err
			}
			fmt.Println(len(records))
			return nil
		})
	case "visit":
		visitCmd := flag.NewFlagSet("visit", flag.ExitOnError)
		apiURL := visitCmd.String("api", cfg.APIURL, "base URL of the API")
		email := visitCmd.String("email", "", "reply address for a contact message")
		message := visitCmd.String("message", "", "contact message to send")
		timeout := visitCmd.Duration("timeout", 15*time.Second, "overall timeout")
		_ = visitCmd.Parse(os.Args[2:])

		vctx, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()
		err = doVisit(vctx, client.New(*apiURL, nil), *email, *message, os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		logging.Fatal("command failed", "command", os.Args[1], "error", err)
	}
}

func withStore(ctx context.Context, cfg *config.Config, fn func(ports.VisitorStore) error) error {
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// doExport writes every record as a JSON array ordered by arrival time.
func doExport(ctx context.Context, store ports.VisitorStore, w io.Writer) error {
	records, err := store.Scan(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].ArrivalTime != records[j].ArrivalTime {
			return records[i].ArrivalTime < records[j].ArrivalTime
		}
		return records[i].SourceAddress < records[j].SourceAddress
	})

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// doImport inserts records from a doExport dump. Existing keys are
// overwritten, so re-importing the same dump is harmless.
func doImport(ctx context.Context, store ports.VisitorStore, r io.Reader) (int, error) {
	var records []domain.VisitorRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	count := 0
	var errs []error
	for _, rec := range records {
		if rec.SourceAddress == "" {
			slog.Warn("skipping record without address", "arrival_time", rec.ArrivalTime)
			continue
		}
		if err := store.Insert(ctx, rec); err != nil {
			errs = append(errs, fmt.Errorf("%s@%d: %w", rec.SourceAddress, rec.ArrivalTime, err))
			continue
		}
		count++
	}
	return count, errors.Join(errs...)
}

// doVisit behaves like a page load: it records a visit, shows the count,
// and optionally submits the contact form.
func doVisit(ctx context.Context, api *client.Client, email, message string, w io.Writer) error {
	counter := client.NewVisitorCounter(api)
	if err := counter.Start(ctx); err != nil {
		return err
	}
	if err := counter.Wait(); err != nil {
		slog.Warn("visitor counter", "error", err)
	}
	fmt.Fprintf(w, "Visit Count: %s\n", counter.Display())

	if email == "" && message == "" {
		return nil
	}

	form := client.NewContactForm(api)
	form.Open()
	form.SetEmail(email)
	form.SetMessage(message)
	if !form.CanSubmit() {
		return fmt.Errorf("contact form: %w (both -email and -message are required)", domain.ErrSubmitDisabled)
	}
	if err := form.Submit(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Email sent successfully")
	return nil
}
