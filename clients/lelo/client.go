// Package lelo is a Go client for the Lelo API. Its accessors drive admin.Collection over HTTP.
package lelo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/admin"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/models"
)

type Client struct {
	*BaseClient
	session *Session
}

// New returns a client for the API mounted at baseURL, e.g. http://localhost:8088/api.
func New(baseURL string) *Client {
	base := NewBaseClient(strings.TrimRight(baseURL, "/"))
	s := newSession(base)
	base.bearer = s.accessToken
	return &Client{BaseClient: base, session: s}
}

func (c *Client) Session() *Session { return c.session }

func (c *Client) Panel(ctx context.Context) (admin.PanelDescriptor, error) {
	var p admin.PanelDescriptor
	err := c.Get(ctx, "/admin/panel", &p)
	return p, err
}

// Content returns a ValueStore over the content endpoints.
func (c *Client) Content() content.ValueStore {
	return contentStore{c: c}
}

// EditableText binds an inline editor for key to this client.
func (c *Client) EditableText(key, def string) *content.EditableText {
	return content.NewEditableText(c.Content(), key, def)
}

type contentStore struct {
	c *Client
}

func (s contentStore) Value(ctx context.Context, key, def string) (string, error) {
	var v content.ValueResponse
	endpoint := "/content/" + url.PathEscape(key)
	if def != "" {
		endpoint += "?default=" + url.QueryEscape(def)
	}
	if err := s.c.Get(ctx, endpoint, &v); err != nil {
		return def, err
	}
	if v.Value == "" {
		return def, nil
	}
	return v.Value, nil
}

func (s contentStore) SetValue(ctx context.Context, key, value string) error {
	return s.c.Put(ctx, "/content/"+url.PathEscape(key), content.UpsertContentRequest{Value: value}, nil)
}

func idPath(base string, id uint) string {
	return base + "/" + strconv.FormatUint(uint64(id), 10)
}

func leagueList(cats []models.League) string {
	parts := make([]string, len(cats))
	for i, l := range cats {
		parts[i] = l.String()
	}
	return strings.Join(parts, ",")
}

func withQuery(endpoint string, q url.Values) string {
	if len(q) == 0 {
		return endpoint
	}
	return fmt.Sprintf("%s?%s", endpoint, q.Encode())
}
