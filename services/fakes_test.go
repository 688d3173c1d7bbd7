package services

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Dosada05/championship/models"
	"github.com/Dosada05/championship/repositories"
	"github.com/Dosada05/championship/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memoryPlayers struct {
	mu      sync.Mutex
	players []models.Player
	nextID  int
	err     error
	// createErrs are returned by successive Create calls before normal behavior resumes.
	createErrs []error
}

func newMemoryPlayers(players ...models.Player) *memoryPlayers {
	m := &memoryPlayers{}
	for _, p := range players {
		p := p
		m.insert(&p)
	}
	return m
}

func (m *memoryPlayers) insert(p *models.Player) {
	m.nextID++
	p.ID = m.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Date(2025, 12, 1, 0, 0, m.nextID, 0, time.UTC)
	}
	m.players = append(m.players, *p)
}

func (m *memoryPlayers) Create(_ context.Context, p *models.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		return err
	}
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.players {
		if strings.EqualFold(existing.Email, p.Email) {
			return repositories.ErrPlayerEmailConflict
		}
		if existing.Code == p.Code {
			return repositories.ErrPlayerCodeConflict
		}
	}
	m.insert(p)
	return nil
}

func (m *memoryPlayers) GetByEmail(_ context.Context, email string) (*models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.players {
		if strings.EqualFold(p.Email, email) {
			p := p
			return &p, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (m *memoryPlayers) ExistsByCode(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryPlayers) newestFirst() []models.Player {
	out := make([]models.Player, len(m.players))
	copy(out, m.players)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memoryPlayers) List(_ context.Context, limit, offset int) ([]models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	all := m.newestFirst()
	if offset >= len(all) {
		return []models.Player{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memoryPlayers) ListAll(_ context.Context) ([]models.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.newestFirst(), nil
}

func (m *memoryPlayers) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return len(m.players), nil
}

func (m *memoryPlayers) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := int64(len(m.players))
	m.players = nil
	return n, nil
}

type published struct {
	room    string
	msgType string
	payload interface{}
}

type recordingHub struct {
	mu       sync.Mutex
	messages []published
}

func (h *recordingHub) Publish(room, messageType string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, published{room, messageType, payload})
}

func (h *recordingHub) all() []published {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]published(nil), h.messages...)
}

type sentEmail struct {
	to, name, code string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (m *recordingMailer) SendWelcomeEmail(to, name, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentEmail{to, name, code})
	return m.err
}

type memoryUploader struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: map[string][]byte{}, types: map[string]string{}}
}

func (u *memoryUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (*storage.UploadResult, error) {
	if u.err != nil {
		return nil, u.err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	u.objects[key] = buf.Bytes()
	u.types[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	if u.err != nil {
		return u.err
	}
	delete(u.objects, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func samplePlayer(first, last, club string) models.Player {
	return models.Player{
		FirstName: first,
		LastName:  last,
		Email:     strings.ToLower(first+"."+last) + "@example.com",
		Address:   "1 Main St",
		League:    "Premier League",
		Club:      club,
		Code:      strings.ToLower(first[:1] + last[:1] + club[:1] + "01"),
	}
}
