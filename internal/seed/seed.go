// Package seed loads default site data at startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// DecodeContent reads a YAML list of content items.
func DecodeContent(r io.Reader) ([]content.EditableContent, error) {
	var items []content.EditableContent
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode content seed: %w", err)
	}
	for i, it := range items {
		if !content.ValidKey(it.Key) {
			return nil, fmt.Errorf("content seed item %d: %w: %q", i, content.ErrInvalidKey, it.Key)
		}
		if it.Type != "" && !it.Type.Valid() {
			return nil, fmt.Errorf("content seed item %d: unknown type %q", i, it.Type)
		}
	}
	return items, nil
}

// LoadContent reads the seed file. A missing file yields no items.
func LoadContent(path string) ([]content.EditableContent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", path).Msg("content seed file not found, skipping")
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return DecodeContent(f)
}

// Run inserts missing default content and makes sure an administrator exists.
func Run(ctx context.Context, cfg *config.Config, contents *content.Service, users *user.Service) error {
	items, err := LoadContent(cfg.Seed.ContentFile)
	if err != nil {
		return err
	}
	inserted, err := contents.InsertMissing(ctx, items)
	if err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	log.Info().Int64("inserted", inserted).Int("defaults", len(items)).Msg("content seeded")

	created, err := users.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password)
	if err != nil {
		// the site still serves public pages without an admin
		log.Warn().Err(err).Msg("admin account not seeded")
		return nil
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("admin account seeded")
	}
	return nil
}
