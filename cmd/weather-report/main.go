package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"weather-report/config"
	v1 "weather-report/internal/controllers/http/v1"
	"weather-report/internal/repositories"
	"weather-report/internal/services/weather"
	"weather-report/pkg/httpserver"
	"weather-report/pkg/logger"
	"weather-report/pkg/observe"
)

// @title Weather Report API
// @version 1.0.0
// @description Descriptive temperature statistics and text reports over daily min/max observations.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Reports
// @tag.description Weather report operations
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("weather-report", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultConfigPath, "path to the YAML config file")
	overviewOnly := fs.Bool("overview", false, "print only the period overview")
	dailyOnly := fs.Bool("daily", false, "print only the daily breakdown")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: weather-report [flags] [file.csv|file.xlsx]")
		fmt.Fprintln(fs.Output(), "       weather-report [flags] serve")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("expected at most one argument, got %d: %s", fs.NArg(), strings.Join(fs.Args(), " "))
	}

	cnf, err := config.NewConfigFromFile(*configPath)
	if err != nil {
		return err
	}

	if fs.Arg(0) != "" && fs.Arg(0) != "serve" {
		cnf.Source.Path = fs.Arg(0)
		cnf.Source.Kind = config.SourceCSV
		if strings.EqualFold(filepath.Ext(fs.Arg(0)), ".xlsx") {
			cnf.Source.Kind = config.SourceXLSX
		}
	}

	// reports go to stdout, so CLI logs go to stderr
	logOut := io.Writer(os.Stderr)
	if fs.Arg(0) == "serve" {
		logOut = os.Stdout
	}

	writers := []io.Writer{logOut}
	var hook *observe.SentryHook
	if cnf.Log.SentryDSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Log.SentryDSN, cnf.IsDevelopment())
		writers = append(writers, hook)
		defer hook.Flush()
	}

	l, err := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Writers: writers,
	})
	if err != nil {
		return err
	}
	defer l.Stop()

	repo, err := repositories.InitRecordRepository(cnf, l)
	if err != nil {
		return err
	}

	service := weather.NewReportService(repo, l)

	if fs.Arg(0) == "serve" {
		return serve(cnf, service, l)
	}

	return printReports(context.Background(), service, stdout, *overviewOnly, *dailyOnly)
}

func printReports(ctx context.Context, service *weather.ReportService, stdout io.Writer, overviewOnly, dailyOnly bool) error {
	if overviewOnly && dailyOnly {
		return errors.New("-overview and -daily are mutually exclusive")
	}

	var kind weather.ReportKind
	switch {
	case overviewOnly:
		kind = weather.ReportOverview
	case dailyOnly:
		kind = weather.ReportDaily
	default:
		overview, daily, err := service.Reports(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n%s", overview, daily)
		return err
	}

	report, err := service.Report(ctx, kind)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, report)
	return err
}

func serve(cnf *config.Config, service *weather.ReportService, l *logger.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
	})

	v1.NewRouter(app, service, l)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Error(err, map[string]any{"port": cnf.Server.Port})
			cancel()
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Server.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		l.Warning("received shutdown signal")
	case <-ctx.Done():
		l.Warning("server stopped")
	}

	l.Warning("stopping application services")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	return app.ShutdownWithContext(shutdownCtx)
}
