package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/mail"
	"strings"
	"sync"

	"github.com/Dosada05/championship/brackets"
	"github.com/Dosada05/championship/models"
	"github.com/Dosada05/championship/repositories"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	maxCodeConflicts = 3
)

type RegisterPlayerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	League    string `json:"league"`
	Club      string `json:"club"`
}

type ListPlayersInput struct {
	Page   int
	Limit  int
	Search string
}

type PlayerService interface {
	Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, error)
	ListPlayers(ctx context.Context, input ListPlayersInput) (*models.PlayerPage, error)
	ClearAll(ctx context.Context) (int64, error)
	// Wait blocks until queued welcome emails are sent.
	Wait()
}

type playerService struct {
	players repositories.PlayerRepository
	codes   *CodeGenerator
	mailer  Mailer
	hub     brackets.Broadcaster
	logger  *slog.Logger
	pending sync.WaitGroup
}

func NewPlayerService(
	players repositories.PlayerRepository,
	codes *CodeGenerator,
	mailer Mailer,
	hub brackets.Broadcaster,
	logger *slog.Logger,
) PlayerService {
	return &playerService{
		players: players,
		codes:   codes,
		mailer:  mailer,
		hub:     hub,
		logger:  logger,
	}
}

func (s *playerService) Register(ctx context.Context, input RegisterPlayerInput) (*models.Player, error) {
	player, err := validateRegistration(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.players.GetByEmail(ctx, player.Email); err == nil {
		return nil, ErrPlayerEmailConflict
	} else if !errors.Is(err, repositories.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to check player email: %w", err)
	}

	for attempt := 1; ; attempt++ {
		code, err := s.codes.Generate(ctx)
		if err != nil {
			return nil, err
		}
		player.Code = code

		err = s.players.Create(ctx, player)
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, repositories.ErrPlayerEmailConflict):
			return nil, ErrPlayerEmailConflict
		case errors.Is(err, repositories.ErrPlayerCodeConflict) && attempt < maxCodeConflicts:
			continue
		default:
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
	}

	s.logger.Info("player registered", slog.Int("player_id", player.ID), slog.String("club", player.Club))
	s.sendWelcome(*player)
	s.hub.Publish(models.RosterRoom, models.MessagePlayerRegistered, player)

	return player, nil
}

func (s *playerService) sendWelcome(player models.Player) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.mailer.SendWelcomeEmail(player.Email, player.FullName(), player.Code); err != nil {
			s.logger.Warn("failed to send welcome email", slog.Int("player_id", player.ID), slog.Any("error", err))
		}
	}()
}

func (s *playerService) Wait() {
	s.pending.Wait()
}

func validateRegistration(input RegisterPlayerInput) (*models.Player, error) {
	player := &models.Player{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Address:   strings.TrimSpace(input.Address),
		League:    strings.TrimSpace(input.League),
		Club:      strings.TrimSpace(input.Club),
	}

	fields := make(map[string]string)
	required := []struct {
		name  string
		value string
	}{
		{"firstName", player.FirstName},
		{"lastName", player.LastName},
		{"email", player.Email},
		{"address", player.Address},
		{"league", player.League},
		{"club", player.Club},
	}
	for _, f := range required {
		if f.value == "" {
			fields[f.name] = "is required"
		}
	}

	if player.Email != "" {
		addr, err := mail.ParseAddress(player.Email)
		if err != nil || addr.Address != player.Email {
			fields["email"] = "must be a valid email address"
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, input ListPlayersInput) (*models.PlayerPage, error) {
	page, limit := input.Page, input.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page-1 > math.MaxInt/limit {
		return nil, &ValidationError{Fields: map[string]string{"page": "is too large"}}
	}

	var (
		players []models.Player
		total   int
	)

	if query := strings.TrimSpace(input.Search); query != "" {
		all, err := s.players.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		matched := make([]models.Player, 0, len(all))
		for _, p := range all {
			if playerMatches(query, p) {
				matched = append(matched, p)
			}
		}
		total = len(matched)
		players = paginate(matched, page, limit)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			players, err = s.players.List(gctx, limit, (page-1)*limit)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = s.players.Count(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return &models.PlayerPage{
		Players:    players,
		Total:      total,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

func playerMatches(query string, p models.Player) bool {
	return fuzzy.MatchNormalizedFold(query, p.FullName()) ||
		fuzzy.MatchNormalizedFold(query, p.Email) ||
		fuzzy.MatchNormalizedFold(query, p.Address)
}

func paginate(players []models.Player, page, limit int) []models.Player {
	start := (page - 1) * limit
	if start < 0 || start >= len(players) {
		return []models.Player{}
	}
	end := start + limit
	if end > len(players) {
		end = len(players)
	}
	return players[start:end]
}

func (s *playerService) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.players.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("roster cleared", slog.Int64("deleted", deleted))
	s.hub.Publish(models.RosterRoom, models.MessageRosterCleared, models.RosterClearedPayload{DeletedCount: deleted})
	return deleted, nil
}
