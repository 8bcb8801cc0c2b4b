package news

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("news item not found")

// DefaultRecentLimit is used by Recent when the caller passes no limit.
const DefaultRecentLimit = 3

// Service is the news content-access layer. Reads fail soft, writes return errors.
type Service struct {
	repo  NewsRepository
	clock clockwork.Clock
}

func NewService(repo NewsRepository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// List returns matching items, newest first. A read failure is logged and yields an empty list.
func (s *Service) List(ctx context.Context, filter NewsFilter) []NewsItem {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", "news").Msg("list failed")
		return []NewsItem{}
	}
	if items == nil {
		return []NewsItem{}
	}
	return items
}

// Recent returns the newest non-archived items.
func (s *Service) Recent(ctx context.Context, limit int) []NewsItem {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.List(ctx, NewsFilter{Limit: limit})
}

func (s *Service) Get(ctx context.Context, id uint) (*NewsItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// View records a read of the article and returns it with the new count.
func (s *Service) View(ctx context.Context, id uint) (*NewsItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req CreateNewsRequest) (*NewsItem, error) {
	item := &NewsItem{
		Title:      strings.TrimSpace(req.Title),
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Author:     req.Author,
		Category:   req.Category,
		ImageURL:   req.ImageURL,
		IsArchived: req.IsArchived,
	}
	if req.PublishedDate != nil {
		item.PublishedDate = req.PublishedDate.UTC()
	} else {
		item.PublishedDate = s.clock.Now().UTC()
	}
	if item.ImageURL != nil && *item.ImageURL == "" {
		item.ImageURL = nil
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies only the fields present in req.
func (s *Service) Update(ctx context.Context, id uint, req UpdateNewsRequest) (*NewsItem, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if fields := req.updates(); len(fields) > 0 {
		if err := s.repo.Update(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
