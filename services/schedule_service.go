package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Dosada05/championship/brackets"
	"github.com/Dosada05/championship/export"
	"github.com/Dosada05/championship/models"
	"github.com/Dosada05/championship/repositories"
	"github.com/Dosada05/championship/storage"
	"github.com/rs/xid"
)

const schedulePrefix = "schedules/"

type PairingsOptions struct {
	Legs  int
	Query string
}

// PublishedSchedule is the document stored for a published league schedule.
type PublishedSchedule struct {
	ID          string             `json:"id"`
	PublishedAt time.Time          `json:"publishedAt"`
	Schedule    *brackets.Schedule `json:"schedule"`
}

type ScheduleService interface {
	TeamPairings(ctx context.Context, opts PairingsOptions) (*brackets.Schedule, error)
	Knockout(ctx context.Context, seed *uint64) (*brackets.TournamentResult, error)
	Playoffs(ctx context.Context, seed *uint64) (*brackets.PlayoffResult, error)
	ExportPairings(ctx context.Context, opts PairingsOptions, w io.Writer) error
	ExportKnockout(ctx context.Context, seed *uint64, w io.Writer) error
	Publish(ctx context.Context, legs int) (*storage.UploadResult, error)
	Unpublish(ctx context.Context, id string) error
}

type scheduleService struct {
	players  repositories.PlayerRepository
	uploader storage.FileUploader
	resolver brackets.WinnerResolver
	hub      brackets.Broadcaster
	logger   *slog.Logger
	now      func() time.Time
}

// NewScheduleService accepts a nil uploader; publishing then fails with
// ErrPublishingDisabled.
func NewScheduleService(
	players repositories.PlayerRepository,
	uploader storage.FileUploader,
	hub brackets.Broadcaster,
	logger *slog.Logger,
) ScheduleService {
	return &scheduleService{
		players:  players,
		uploader: uploader,
		resolver: brackets.PlaceholderResolver{},
		hub:      hub,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *scheduleService) teams(ctx context.Context) ([]brackets.Team, error) {
	players, err := s.players.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.BuildTeams(players), nil
}

func (s *scheduleService) TeamPairings(ctx context.Context, opts PairingsOptions) (*brackets.Schedule, error) {
	teams, err := s.teams(ctx)
	if err != nil {
		return nil, err
	}
	gen := brackets.NewRoundRobinGenerator(brackets.RoundRobinSettings{Legs: opts.Legs})
	schedule := gen.Generate(teams)
	s.logGenerated(ctx, gen, len(teams))
	return brackets.FilterSchedule(schedule, opts.Query), nil
}

func (s *scheduleService) Knockout(ctx context.Context, seed *uint64) (*brackets.TournamentResult, error) {
	teams, err := s.teams(ctx)
	if err != nil {
		return nil, err
	}
	gen := brackets.NewSingleEliminationGenerator(randomFor(seed), s.resolver)
	result := gen.Generate(teams)
	s.logGenerated(ctx, gen, len(teams))
	return result, nil
}

func (s *scheduleService) logGenerated(ctx context.Context, gen brackets.Generator, teams int) {
	s.logger.DebugContext(ctx, "schedule generated", slog.String("generator", gen.GetName()), slog.Int("teams", teams))
}

func (s *scheduleService) Playoffs(ctx context.Context, seed *uint64) (*brackets.PlayoffResult, error) {
	players, err := s.players.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return brackets.GeneratePlayoffs(players, randomFor(seed)), nil
}

func (s *scheduleService) ExportPairings(ctx context.Context, opts PairingsOptions, w io.Writer) error {
	schedule, err := s.TeamPairings(ctx, opts)
	if err != nil {
		return err
	}
	f, err := export.RoundRobinWorkbook(schedule)
	if err != nil {
		return fmt.Errorf("failed to build pairings workbook: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write pairings workbook: %w", err)
	}
	return nil
}

func (s *scheduleService) ExportKnockout(ctx context.Context, seed *uint64, w io.Writer) error {
	result, err := s.Knockout(ctx, seed)
	if err != nil {
		return err
	}
	f, err := export.KnockoutWorkbook(result)
	if err != nil {
		return fmt.Errorf("failed to build knockout workbook: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write knockout workbook: %w", err)
	}
	return nil
}

func (s *scheduleService) Publish(ctx context.Context, legs int) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrPublishingDisabled
	}

	schedule, err := s.TeamPairings(ctx, PairingsOptions{Legs: legs})
	if err != nil {
		return nil, err
	}

	doc := PublishedSchedule{
		ID:          xid.New().String(),
		PublishedAt: s.now().UTC(),
		Schedule:    schedule,
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	result, err := s.uploader.Upload(ctx, scheduleKey(doc.ID), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	s.logger.Info("schedule published", slog.String("key", result.Key), slog.Int("matches", schedule.Total))
	s.hub.Publish(models.RosterRoom, models.MessageSchedulePublished, models.SchedulePublishedPayload{
		Key:      result.Key,
		Location: result.Location,
		Total:    schedule.Total,
	})
	return result, nil
}

func (s *scheduleService) Unpublish(ctx context.Context, id string) error {
	if s.uploader == nil {
		return ErrPublishingDisabled
	}

	id = strings.TrimSuffix(strings.TrimPrefix(id, schedulePrefix), ".json")
	if _, err := xid.FromString(id); err != nil {
		return &ValidationError{Fields: map[string]string{"id": "must be a published schedule id"}}
	}

	if err := s.uploader.Delete(ctx, scheduleKey(id)); err != nil {
		return err
	}
	s.logger.Info("schedule unpublished", slog.String("id", id))
	return nil
}

func scheduleKey(id string) string {
	return schedulePrefix + id + ".json"
}
