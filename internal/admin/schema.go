package admin

import (
	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/content"
	"github.com/DhavalSuthar-24/lelo/internal/match"
	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/internal/player"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
)

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindNumber   FieldKind = "number"
	KindEmail    FieldKind = "email"
	KindPassword FieldKind = "password"
	KindURL      FieldKind = "url"
	KindDateTime FieldKind = "datetime"
	KindCheckbox FieldKind = "checkbox"
	KindSelect   FieldKind = "select"
	KindImage    FieldKind = "image"
)

// Field describes one form input. Image fields upload into Bucket and store the returned URL.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Bucket   string    `json:"bucket,omitempty"`
	Min      *int      `json:"min,omitempty"`
	Max      *int      `json:"max,omitempty"`
}

// Schema is everything entity specific about a managed collection.
type Schema struct {
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	Endpoint      string  `json:"endpoint"`
	Fields        []Field `json:"fields"`
	DeleteConfirm string  `json:"delete_confirm"`
}

const GalleryDeleteConfirm = "Are you sure you want to delete this gallery record? This won't delete the uploaded file."

func intPtr(i int) *int { return &i }

func leagueOptions() []string {
	out := []string{}
	for _, l := range models.Leagues() {
		out = append(out, l.String())
	}
	return out
}

func confirm(what string) string {
	return "Are you sure you want to delete this " + what + "?"
}

var (
	NewsSchema = Schema{
		Name: "news", Title: "News", Endpoint: "/news",
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "excerpt", Label: "Excerpt", Kind: KindTextarea},
			{Name: "content", Label: "Content", Kind: KindTextarea, Required: true},
			{Name: "author", Label: "Author", Kind: KindText},
			{Name: "category", Label: "Category", Kind: KindSelect, Required: true, Options: leagueOptions()},
			{Name: "published_date", Label: "Published", Kind: KindDateTime},
			{Name: "image_url", Label: "Image", Kind: KindImage, Bucket: storage.BucketNews},
			{Name: "is_archived", Label: "Archived", Kind: KindCheckbox},
		},
		DeleteConfirm: confirm("news item"),
	}

	MatchSchema = Schema{
		Name: "matches", Title: "Matches", Endpoint: "/matches",
		Fields: []Field{
			{Name: "home_team", Label: "Home team", Kind: KindText, Required: true},
			{Name: "away_team", Label: "Away team", Kind: KindText, Required: true},
			{Name: "home_team_logo", Label: "Home team logo", Kind: KindImage, Bucket: storage.BucketMatches},
			{Name: "away_team_logo", Label: "Away team logo", Kind: KindImage, Bucket: storage.BucketMatches},
			{Name: "match_date", Label: "Kick-off", Kind: KindDateTime, Required: true},
			{Name: "venue", Label: "Venue", Kind: KindText},
			{Name: "match_type", Label: "Category", Kind: KindSelect, Required: true, Options: leagueOptions()},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: []string{
				string(match.StatusScheduled), string(match.StatusLive), string(match.StatusFinished),
			}},
			{Name: "home_score", Label: "Home score", Kind: KindNumber, Min: intPtr(0)},
			{Name: "away_score", Label: "Away score", Kind: KindNumber, Min: intPtr(0)},
		},
		DeleteConfirm: confirm("match"),
	}

	PlayerSchema = Schema{
		Name: "players", Title: "Players", Endpoint: "/players",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "position", Label: "Position", Kind: KindText, Required: true},
			{Name: "age", Label: "Age", Kind: KindNumber, Min: intPtr(1), Max: intPtr(100)},
			{Name: "height", Label: "Height", Kind: KindText},
			{Name: "weight", Label: "Weight", Kind: KindText},
			{Name: "nationality", Label: "Nationality", Kind: KindText},
			{Name: "team", Label: "Team", Kind: KindSelect, Options: []string{
				string(player.TeamMens), string(player.TeamWomens), string(player.TeamYouth), string(player.TeamCoaches),
			}},
			{Name: "image_url", Label: "Photo", Kind: KindImage, Bucket: storage.BucketPlayers},
			{Name: "is_active", Label: "Active", Kind: KindCheckbox},
			{Name: "biography", Label: "Biography", Kind: KindTextarea},
			{Name: "sponsor_name", Label: "Sponsor", Kind: KindText},
			{Name: "sponsor_logo", Label: "Sponsor logo", Kind: KindImage, Bucket: storage.BucketSponsors},
		},
		DeleteConfirm: confirm("player"),
	}

	StaffSchema = Schema{
		Name: "staff", Title: "Staff", Endpoint: "/staff",
		Fields: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "position", Label: "Position", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "image_url", Label: "Photo", Kind: KindImage, Bucket: storage.BucketStaff},
		},
		DeleteConfirm: confirm("staff member"),
	}

	GallerySchema = Schema{
		Name: "gallery", Title: "Gallery", Endpoint: "/gallery",
		Fields: []Field{
			{Name: "url", Label: "Image", Kind: KindImage, Required: true, Bucket: storage.BucketGallery},
			{Name: "alt", Label: "Alt text", Kind: KindText},
			{Name: "category", Label: "Category", Kind: KindSelect, Options: leagueOptions()},
		},
		DeleteConfirm: GalleryDeleteConfirm,
	}

	ContentSchema = Schema{
		Name: "content", Title: "Site content", Endpoint: "/content",
		Fields: []Field{
			{Name: "key", Label: "Key", Kind: KindText, Required: true},
			{Name: "value", Label: "Value", Kind: KindTextarea},
			{Name: "type", Label: "Type", Kind: KindSelect, Options: []string{
				string(content.TypeText), string(content.TypeNumber), string(content.TypeTextarea),
			}},
			{Name: "section", Label: "Section", Kind: KindText},
		},
		DeleteConfirm: confirm("content key"),
	}

	UserSchema = Schema{
		Name: "users", Title: "Users", Endpoint: "/users",
		Fields: []Field{
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true},
			{Name: "name", Label: "Name", Kind: KindText},
			{Name: "password", Label: "Password", Kind: KindPassword, Required: true, Min: intPtr(8)},
			{Name: "role", Label: "Role", Kind: KindSelect, Options: []string{common.RoleUser, common.RoleAdmin}},
		},
		DeleteConfirm: confirm("user"),
	}
)

// Schemas returns every managed collection in panel order.
func Schemas() []Schema {
	return []Schema{NewsSchema, MatchSchema, PlayerSchema, StaffSchema, GallerySchema, ContentSchema, UserSchema}
}
