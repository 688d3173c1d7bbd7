package handlers

import (
	"context"
	"io"

	"github.com/Dosada05/championship/brackets"
	"github.com/Dosada05/championship/models"
	"github.com/Dosada05/championship/services"
	"github.com/Dosada05/championship/storage"
)

type stubPlayerService struct {
	registered  services.RegisterPlayerInput
	registerErr error
	listInput   services.ListPlayersInput
	page        *models.PlayerPage
	listErr     error
	deleted     int64
	clearErr    error
}

func (s *stubPlayerService) Register(_ context.Context, input services.RegisterPlayerInput) (*models.Player, error) {
	s.registered = input
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &models.Player{
		ID:        1,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Address:   input.Address,
		League:    input.League,
		Club:      input.Club,
		Code:      "ab12cd",
	}, nil
}

func (s *stubPlayerService) ListPlayers(_ context.Context, input services.ListPlayersInput) (*models.PlayerPage, error) {
	s.listInput = input
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.page, nil
}

func (s *stubPlayerService) ClearAll(context.Context) (int64, error) {
	return s.deleted, s.clearErr
}

func (s *stubPlayerService) Wait() {}

type stubScheduleService struct {
	opts      services.PairingsOptions
	seed      *uint64
	legs      int
	unpublish string
	schedule  *brackets.Schedule
	knockout  *brackets.TournamentResult
	playoffs  *brackets.PlayoffResult
	published *storage.UploadResult
	workbook  string
	err       error
}

func (s *stubScheduleService) TeamPairings(_ context.Context, opts services.PairingsOptions) (*brackets.Schedule, error) {
	s.opts = opts
	return s.schedule, s.err
}

func (s *stubScheduleService) Knockout(_ context.Context, seed *uint64) (*brackets.TournamentResult, error) {
	s.seed = seed
	return s.knockout, s.err
}

func (s *stubScheduleService) Playoffs(_ context.Context, seed *uint64) (*brackets.PlayoffResult, error) {
	s.seed = seed
	return s.playoffs, s.err
}

func (s *stubScheduleService) ExportPairings(_ context.Context, opts services.PairingsOptions, w io.Writer) error {
	s.opts = opts
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.workbook)
	return err
}

func (s *stubScheduleService) ExportKnockout(_ context.Context, seed *uint64, w io.Writer) error {
	s.seed = seed
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.workbook)
	return err
}

func (s *stubScheduleService) Publish(_ context.Context, legs int) (*storage.UploadResult, error) {
	s.legs = legs
	return s.published, s.err
}

func (s *stubScheduleService) Unpublish(_ context.Context, id string) error {
	s.unpublish = id
	return s.err
}

type stubAuthService struct {
	admin *models.Admin
	err   error
}

func (s *stubAuthService) Login(context.Context, services.LoginInput) (*models.Admin, error) {
	return s.admin, s.err
}
