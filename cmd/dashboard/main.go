package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"course-dashboard/internal/config"
	"course-dashboard/internal/dashboard"
	"course-dashboard/internal/domain"
	"course-dashboard/internal/export"
	"course-dashboard/internal/loader"
	"course-dashboard/internal/logging"
	"course-dashboard/internal/recordapi"
	"course-dashboard/internal/report"
	"course-dashboard/internal/sftpclient"
)

type options struct {
	variant    string
	asJSON     bool
	csvPath    string
	uploadSFTP bool
	now        string
}

func main() {
	var opts options
	flag.StringVar(&opts.variant, "variant", "overview", "dashboard variant: overview or compact")
	flag.BoolVar(&opts.asJSON, "json", false, "print the view model as JSON")
	flag.StringVar(&opts.csvPath, "csv", "", "write the course export to this path")
	flag.BoolVar(&opts.uploadSFTP, "sftp", false, "upload the course export via SFTP (needs -csv)")
	flag.StringVar(&opts.now, "now", "", "reference date (YYYY-MM-DD or RFC 3339), default: current time")
	flag.Parse()

	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, opts, log, os.Stdout); err != nil {
		log.Error("dashboard failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, log *zap.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.uploadSFTP && opts.csvPath == "" {
		return errors.New("-sftp needs -csv")
	}

	variant, err := dashboard.OptionsForVariant(opts.variant)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	now, err := referenceTime(opts.now, loc, time.Now())
	if err != nil {
		return err
	}

	snap, err := loader.New(newSource(cfg), log, cfg.RecordsTimeout).Load(ctx)
	if err != nil {
		return err
	}

	vm := dashboard.Build(snap, now, variant)
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(vm); err != nil {
			return errors.Wrap(err, "encode view model")
		}
	} else if err := report.WriteText(out, vm); err != nil {
		return errors.Wrap(err, "write report")
	}

	if opts.csvPath == "" {
		return nil
	}
	return writeExport(ctx, cfg, snap, opts, log)
}

func writeExport(ctx context.Context, cfg config.Config, snap domain.Snapshot, opts options, log *zap.Logger) error {
	rows := dashboard.CourseSummaries(snap)
	if err := export.WriteCourseCSVFile(opts.csvPath, rows); err != nil {
		return err
	}
	log.Info("wrote course export", zap.String("path", opts.csvPath), zap.Int("courses", len(rows)))

	if !opts.uploadSFTP {
		return nil
	}

	upCfg := sftpclient.Config{
		Host:                  cfg.SFTPHost,
		Port:                  cfg.SFTPPort,
		User:                  cfg.SFTPUser,
		Pass:                  cfg.SFTPPass,
		RemoteDir:             cfg.SFTPDir,
		InsecureIgnoreHostKey: cfg.SFTPInsecureIgnoreHostKey,
		KnownHostsPath:        cfg.SFTPKnownHosts,
	}
	remoteName := filepath.Base(opts.csvPath)

	upCtx, upCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer upCancel()

	if err := sftpclient.UploadFile(upCtx, upCfg, opts.csvPath, remoteName); err != nil {
		return err
	}
	log.Info("uploaded course export",
		zap.String("host", upCfg.Host),
		zap.Int("port", upCfg.Port),
		zap.String("remote", upCfg.RemoteDir+"/"+remoteName))
	return nil
}

func newSource(cfg config.Config) *recordapi.Client {
	return recordapi.New(cfg.RecordsBaseURL, cfg.RecordsAPIKey, recordapi.AppIDs{
		Instructors:   cfg.AppIDInstructors,
		Participants:  cfg.AppIDParticipants,
		Rooms:         cfg.AppIDRooms,
		Courses:       cfg.AppIDCourses,
		Registrations: cfg.AppIDRegistrations,
	}, cfg.RecordsTimeout).WithMaxAttempts(cfg.RecordsMaxAttempts)
}

// referenceTime parses the -now flag in loc; empty means fallback.
func referenceTime(s string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback.In(loc), nil
	}
	t, ok := domain.ParseDate(s, loc)
	if !ok {
		return time.Time{}, errors.Newf("invalid -now %q", s)
	}
	return t.In(loc), nil
}
