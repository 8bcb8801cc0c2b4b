package lelo

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/DhavalSuthar-24/lelo/internal/admin"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/gallery"
	"github.com/DhavalSuthar-24/lelo/internal/match"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/news"
	"github.com/DhavalSuthar-24/lelo/internal/player"
	"github.com/DhavalSuthar-24/lelo/internal/staff"
)

var (
	_ admin.Accessor[news.NewsItem]           = NewsAccessor{}
	_ admin.Accessor[match.Match]             = MatchAccessor{}
	_ admin.Accessor[player.Player]           = PlayerAccessor{}
	_ admin.Accessor[staff.StaffMember]       = StaffAccessor{}
	_ admin.Accessor[gallery.Image]           = GalleryAccessor{}
	_ admin.Accessor[content.EditableContent] = ContentAccessor{}
	_ admin.Accessor[Account]                 = UserAccessor{}
)

type NewsAccessor struct{ c *Client }

func (c *Client) News() NewsAccessor { return NewsAccessor{c} }

// List includes archived items, as the admin table shows them.
func (a NewsAccessor) List(ctx context.Context) ([]news.NewsItem, error) {
	var items []news.NewsItem
	err := a.c.Get(ctx, "/news?archived=true", &items)
	return items, err
}

func (a NewsAccessor) Recent(ctx context.Context, limit int) ([]news.NewsItem, error) {
	var items []news.NewsItem
	err := a.c.Get(ctx, "/news/recent?limit="+strconv.Itoa(limit), &items)
	return items, err
}

func (a NewsAccessor) Get(ctx context.Context, id uint) (news.NewsItem, error) {
	var item news.NewsItem
	err := a.c.Get(ctx, idPath("/news", id), &item)
	return item, err
}

func (a NewsAccessor) Create(ctx context.Context, d news.NewsItem) (news.NewsItem, error) {
	req := news.CreateNewsRequest{
		Title: d.Title, Excerpt: d.Excerpt, Content: d.Content, Author: d.Author,
		Category: d.Category, ImageURL: d.ImageURL, IsArchived: d.IsArchived,
	}
	if !d.PublishedDate.IsZero() {
		req.PublishedDate = &d.PublishedDate
	}
	var out news.NewsItem
	err := a.c.Post(ctx, "/news", req, &out)
	return out, err
}

func (a NewsAccessor) Update(ctx context.Context, id uint, d news.NewsItem) (news.NewsItem, error) {
	req := news.UpdateNewsRequest{
		Title: &d.Title, Excerpt: &d.Excerpt, Content: &d.Content, Author: &d.Author,
		Category: &d.Category, ImageURL: d.ImageURL, IsArchived: &d.IsArchived,
	}
	if !d.PublishedDate.IsZero() {
		req.PublishedDate = &d.PublishedDate
	}
	var out news.NewsItem
	err := a.c.Put(ctx, idPath("/news", id), req, &out)
	return out, err
}

func (a NewsAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/news", id))
}

type MatchAccessor struct{ c *Client }

func (c *Client) Matches() MatchAccessor { return MatchAccessor{c} }

func (a MatchAccessor) List(ctx context.Context) ([]match.Match, error) {
	return a.ByCategories(ctx, nil)
}

func (a MatchAccessor) ByCategories(ctx context.Context, cats []models.League) ([]match.Match, error) {
	endpoint := "/matches"
	if len(cats) > 0 {
		endpoint += "?category=" + url.QueryEscape(leagueList(cats))
	}
	var items []match.Match
	err := a.c.Get(ctx, endpoint, &items)
	return items, err
}

func (a MatchAccessor) Upcoming(ctx context.Context, cats []models.League, limit int) ([]match.Match, error) {
	q := url.Values{}
	if len(cats) > 0 {
		q.Set("category", leagueList(cats))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var items []match.Match
	err := a.c.Get(ctx, withQuery("/matches/upcoming", q), &items)
	return items, err
}

func (a MatchAccessor) Create(ctx context.Context, d match.Match) (match.Match, error) {
	req := match.CreateMatchRequest{
		HomeTeam: d.HomeTeam, AwayTeam: d.AwayTeam, HomeTeamLogo: d.HomeTeamLogo, AwayTeamLogo: d.AwayTeamLogo,
		MatchDate: d.MatchDate, Venue: d.Venue, MatchType: d.MatchType, Status: d.Status,
		HomeScore: d.HomeScore, AwayScore: d.AwayScore,
	}
	var out match.Match
	err := a.c.Post(ctx, "/matches", req, &out)
	return out, err
}

func (a MatchAccessor) Update(ctx context.Context, id uint, d match.Match) (match.Match, error) {
	req := match.UpdateMatchRequest{
		HomeTeam: &d.HomeTeam, AwayTeam: &d.AwayTeam, HomeTeamLogo: d.HomeTeamLogo, AwayTeamLogo: d.AwayTeamLogo,
		Venue: &d.Venue, MatchType: &d.MatchType, HomeScore: d.HomeScore, AwayScore: d.AwayScore,
	}
	if !d.MatchDate.IsZero() {
		req.MatchDate = &d.MatchDate
	}
	if d.Status != "" {
		req.Status = &d.Status
	}
	var out match.Match
	err := a.c.Put(ctx, idPath("/matches", id), req, &out)
	return out, err
}

func (a MatchAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/matches", id))
}

type PlayerAccessor struct{ c *Client }

func (c *Client) Players() PlayerAccessor { return PlayerAccessor{c} }

func (a PlayerAccessor) List(ctx context.Context) ([]player.Player, error) {
	return a.ByTeam(ctx, "")
}

func (a PlayerAccessor) ByTeam(ctx context.Context, team player.Team) ([]player.Player, error) {
	endpoint := "/players"
	if team != "" {
		endpoint += "?team=" + url.QueryEscape(string(team))
	}
	var items []player.Player
	err := a.c.Get(ctx, endpoint, &items)
	return items, err
}

func (a PlayerAccessor) Create(ctx context.Context, d player.Player) (player.Player, error) {
	req := player.CreatePlayerRequest{
		Name: d.Name, Position: d.Position, Age: d.Age, Height: d.Height, Weight: d.Weight,
		Nationality: d.Nationality, ImageURL: d.ImageURL, IsActive: &d.IsActive, Team: d.Team,
		Biography: d.Biography, SponsorName: d.SponsorName, SponsorLogo: d.SponsorLogo, Stats: &d.Stats,
	}
	var out player.Player
	err := a.c.Post(ctx, "/players", req, &out)
	return out, err
}

func (a PlayerAccessor) Update(ctx context.Context, id uint, d player.Player) (player.Player, error) {
	req := player.UpdatePlayerRequest{
		Name: &d.Name, Position: &d.Position, Age: d.Age, Height: &d.Height, Weight: &d.Weight,
		Nationality: &d.Nationality, ImageURL: d.ImageURL, IsActive: &d.IsActive,
		Biography: &d.Biography, SponsorName: &d.SponsorName, SponsorLogo: d.SponsorLogo, Stats: &d.Stats,
	}
	if d.Team != "" {
		req.Team = &d.Team
	}
	var out player.Player
	err := a.c.Put(ctx, idPath("/players", id), req, &out)
	return out, err
}

func (a PlayerAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/players", id))
}

type StaffAccessor struct{ c *Client }

func (c *Client) Staff() StaffAccessor { return StaffAccessor{c} }

func (a StaffAccessor) List(ctx context.Context) ([]staff.StaffMember, error) {
	var items []staff.StaffMember
	err := a.c.Get(ctx, "/staff", &items)
	return items, err
}

func (a StaffAccessor) Create(ctx context.Context, d staff.StaffMember) (staff.StaffMember, error) {
	req := staff.CreateStaffRequest{Name: d.Name, Position: d.Position, Email: d.Email, ImageURL: d.ImageURL}
	var out staff.StaffMember
	err := a.c.Post(ctx, "/staff", req, &out)
	return out, err
}

func (a StaffAccessor) Update(ctx context.Context, id uint, d staff.StaffMember) (staff.StaffMember, error) {
	req := staff.UpdateStaffRequest{Name: &d.Name, Position: &d.Position, Email: d.Email, ImageURL: d.ImageURL}
	var out staff.StaffMember
	err := a.c.Put(ctx, idPath("/staff", id), req, &out)
	return out, err
}

func (a StaffAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/staff", id))
}

type GalleryAccessor struct{ c *Client }

func (c *Client) Gallery() GalleryAccessor { return GalleryAccessor{c} }

func (a GalleryAccessor) List(ctx context.Context) ([]gallery.Image, error) {
	var items []gallery.Image
	err := a.c.Get(ctx, "/gallery", &items)
	return items, err
}

func (a GalleryAccessor) Create(ctx context.Context, d gallery.Image) (gallery.Image, error) {
	req := gallery.CreateImageRequest{URL: d.URL, Alt: d.Alt, Category: d.Category}
	var out gallery.Image
	err := a.c.Post(ctx, "/gallery", req, &out)
	return out, err
}

func (a GalleryAccessor) Update(ctx context.Context, id uint, d gallery.Image) (gallery.Image, error) {
	req := gallery.UpdateImageRequest{Alt: &d.Alt}
	if d.Category != "" {
		req.Category = &d.Category
	}
	var out gallery.Image
	err := a.c.Put(ctx, idPath("/gallery", id), req, &out)
	return out, err
}

// Delete removes the gallery record. The uploaded file stays in storage.
func (a GalleryAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/gallery", id))
}

// ContentAccessor manages content rows. Rows are addressed by key on the wire.
type ContentAccessor struct{ c *Client }

func (c *Client) ContentItems() ContentAccessor { return ContentAccessor{c} }

func (a ContentAccessor) List(ctx context.Context) ([]content.EditableContent, error) {
	var items []content.EditableContent
	err := a.c.Get(ctx, "/content", &items)
	return items, err
}

func (a ContentAccessor) Create(ctx context.Context, d content.EditableContent) (content.EditableContent, error) {
	return a.put(ctx, d)
}

func (a ContentAccessor) Update(ctx context.Context, _ uint, d content.EditableContent) (content.EditableContent, error) {
	return a.put(ctx, d)
}

func (a ContentAccessor) put(ctx context.Context, d content.EditableContent) (content.EditableContent, error) {
	req := content.UpsertContentRequest{Value: d.Value, Type: d.Type, Section: d.Section}
	var out content.EditableContent
	err := a.c.Put(ctx, "/content/"+url.PathEscape(d.Key), req, &out)
	return out, err
}

func (a ContentAccessor) Delete(ctx context.Context, id uint) error {
	items, err := a.List(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			return a.c.BaseClient.Delete(ctx, "/content/"+url.PathEscape(it.Key))
		}
	}
	return &APIError{StatusCode: 404, Message: "Content not found"}
}

// Account is a user row as the user manager edits it. Password is only sent on create.
type Account struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UserAccessor struct{ c *Client }

func (c *Client) Users() UserAccessor { return UserAccessor{c} }

func (a UserAccessor) List(ctx context.Context) ([]Account, error) {
	var items []Account
	err := a.c.Get(ctx, "/users", &items)
	return items, err
}

func (a UserAccessor) Create(ctx context.Context, d Account) (Account, error) {
	var out Account
	err := a.c.Post(ctx, "/users", d, &out)
	return out, err
}

// Update changes the role only. An empty role toggles it.
func (a UserAccessor) Update(ctx context.Context, id uint, d Account) (Account, error) {
	var out Account
	err := a.c.Put(ctx, idPath("/users", id)+"/role", map[string]string{"role": d.Role}, &out)
	return out, err
}

func (a UserAccessor) Delete(ctx context.Context, id uint) error {
	return a.c.BaseClient.Delete(ctx, idPath("/users", id))
}
