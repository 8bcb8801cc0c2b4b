package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound   = errors.New("content not found")
	ErrInvalidKey = errors.New("content key must be lower case letters, digits, '_', '.' or '-'")
)

type Service struct {
	repo ContentRepository
}

func NewService(repo ContentRepository) *Service {
	return &Service{repo: repo}
}

// List returns content in a section, or all content when section is empty. A read failure is
// logged and yields an empty list.
func (s *Service) List(ctx context.Context, section string) []EditableContent {
	items, err := s.repo.List(ctx, section)
	if err != nil {
		log.Error().Err(err).Str("entity", "content").Msg("list failed")
		return []EditableContent{}
	}
	if items == nil {
		return []EditableContent{}
	}
	return items
}

func (s *Service) Get(ctx context.Context, key string) (*EditableContent, error) {
	if !ValidKey(key) {
		return nil, ErrInvalidKey
	}
	ec, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if ec == nil {
		return nil, ErrNotFound
	}
	return ec, nil
}

// Lookup returns the stored value, or def when the key is missing or its value is empty.
// Read failures fall back to def.
func (s *Service) Lookup(ctx context.Context, key, def string) ValueResponse {
	resp := ValueResponse{Key: key, Value: def}
	ec, err := s.Get(ctx, key)
	switch {
	case err == nil:
		if ec.Value != "" {
			resp.Value = ec.Value
		}
		resp.Exists = true
	case !errors.Is(err, ErrNotFound):
		log.Error().Err(err).Str("key", key).Msg("content lookup failed")
	}
	return resp
}

// Value implements ValueStore.
func (s *Service) Value(ctx context.Context, key, def string) (string, error) {
	return s.Lookup(ctx, key, def).Value, nil
}

// SetValue implements ValueStore.
func (s *Service) SetValue(ctx context.Context, key, value string) error {
	_, err := s.Upsert(ctx, UpsertContentRequest{Key: key, Value: value})
	return err
}

// Upsert writes one key and returns the stored row.
func (s *Service) Upsert(ctx context.Context, req UpsertContentRequest) (*EditableContent, error) {
	if _, err := s.BulkUpsert(ctx, []UpsertContentRequest{req}); err != nil {
		return nil, err
	}
	return s.Get(ctx, req.Key)
}

// BulkUpsert writes every item in one statement and returns the number written.
func (s *Service) BulkUpsert(ctx context.Context, reqs []UpsertContentRequest) (int, error) {
	items := make([]EditableContent, 0, len(reqs))
	seen := make(map[string]int, len(reqs))
	for _, req := range reqs {
		item, err := s.resolve(ctx, req)
		if err != nil {
			return 0, err
		}
		// last write for a key wins
		if i, ok := seen[item.Key]; ok {
			items[i] = item
			continue
		}
		seen[item.Key] = len(items)
		items = append(items, item)
	}
	if err := s.repo.Upsert(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// resolve fills type and section from the stored row, then from defaults.
func (s *Service) resolve(ctx context.Context, req UpsertContentRequest) (EditableContent, error) {
	key := strings.TrimSpace(req.Key)
	if !ValidKey(key) {
		return EditableContent{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	item := EditableContent{Key: key, Value: req.Value, Type: req.Type, Section: strings.TrimSpace(req.Section)}
	if item.Type != "" && !item.Type.Valid() {
		return EditableContent{}, fmt.Errorf("unknown content type %q", item.Type)
	}
	if item.Type == "" || item.Section == "" {
		existing, err := s.repo.GetByKey(ctx, key)
		if err != nil {
			return EditableContent{}, err
		}
		if existing != nil {
			if item.Type == "" {
				item.Type = existing.Type
			}
			if item.Section == "" {
				item.Section = existing.Section
			}
		}
	}
	if item.Type == "" {
		item.Type = TypeText
	}
	if item.Section == "" {
		item.Section = DefaultSection
	}
	return item, nil
}

func (s *Service) DeleteByKey(ctx context.Context, key string) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	deleted, err := s.repo.DeleteByKey(ctx, key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// InsertMissing stores items whose keys do not exist yet and leaves existing keys untouched.
func (s *Service) InsertMissing(ctx context.Context, items []EditableContent) (int64, error) {
	for i := range items {
		if !ValidKey(items[i].Key) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidKey, items[i].Key)
		}
		if items[i].Type == "" {
			items[i].Type = TypeText
		}
		if items[i].Section == "" {
			items[i].Section = DefaultSection
		}
	}
	return s.repo.InsertMissing(ctx, items)
}
