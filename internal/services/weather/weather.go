package weather

import (
	"context"
	"errors"
	"fmt"

	"weather-report/internal/models"
	"weather-report/internal/repositories"
	"weather-report/pkg/logger"
)

// ReportKind names one of the generated reports.
type ReportKind string

const (
	ReportOverview ReportKind = "overview"
	ReportDaily    ReportKind = "daily"
)

// ErrUnknownReport is returned for a ReportKind that has no generator.
var ErrUnknownReport = errors.New("unknown report")

// ReportService loads records from a repository and renders reports from them.
type ReportService struct {
	repo repositories.RecordRepository
	l    *logger.Logger
}

func NewReportService(repo repositories.RecordRepository, l *logger.Logger) *ReportService {
	return &ReportService{
		repo: repo,
		l:    l,
	}
}

// Report renders kind from the service's own repository.
func (s *ReportService) Report(ctx context.Context, kind ReportKind) (string, error) {
	return s.ReportFrom(ctx, s.repo, kind)
}

// ReportFrom loads repo once and renders kind from it.
func (s *ReportService) ReportFrom(ctx context.Context, repo repositories.RecordRepository, kind ReportKind) (string, error) {
	generate, err := generatorFor(kind)
	if err != nil {
		return "", err
	}

	dataset, err := s.load(ctx, repo)
	if err != nil {
		return "", err
	}

	report, err := generate(dataset)
	if err != nil {
		s.l.Error(err, map[string]any{"repo": repo.Name(), "report": string(kind)})
		return "", fmt.Errorf("failed to generate %s report: %w", kind, err)
	}

	s.l.Info("generated report", map[string]any{
		"repo":   repo.Name(),
		"report": string(kind),
		"days":   len(dataset),
	})

	return report, nil
}

// Reports loads the repository once and renders the overview followed by the daily breakdown.
func (s *ReportService) Reports(ctx context.Context) (overview, daily string, err error) {
	dataset, err := s.load(ctx, s.repo)
	if err != nil {
		return "", "", err
	}

	if overview, err = GenerateSummary(dataset); err != nil {
		return "", "", fmt.Errorf("failed to generate %s report: %w", ReportOverview, err)
	}
	if daily, err = GenerateDailySummary(dataset); err != nil {
		return "", "", fmt.Errorf("failed to generate %s report: %w", ReportDaily, err)
	}

	return overview, daily, nil
}

func (s *ReportService) load(ctx context.Context, repo repositories.RecordRepository) (models.WeatherDataset, error) {
	s.l.Debug("loading records", map[string]any{"repo": repo.Name()})

	dataset, err := repo.LoadRecords(ctx)
	if err != nil {
		s.l.Error(err, map[string]any{"repo": repo.Name()})
		return nil, fmt.Errorf("failed to load records from %s: %w", repo.Name(), err)
	}

	if len(dataset) == 0 {
		s.l.Warning("no weather records loaded", map[string]any{"repo": repo.Name()})
	}

	return dataset, nil
}

func generatorFor(kind ReportKind) (func(models.WeatherDataset) (string, error), error) {
	switch kind {
	case ReportOverview:
		return GenerateSummary, nil
	case ReportDaily:
		return GenerateDailySummary, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownReport, kind)
}
