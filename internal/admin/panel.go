package admin

import (
	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/storage"
)

type Affordances struct {
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

type Section struct {
	Schema      Schema      `json:"schema"`
	Affordances Affordances `json:"affordances"`
}

// PanelDescriptor tells a frontend what the caller may manage.
type PanelDescriptor struct {
	IsAdmin  bool      `json:"is_admin"`
	Sections []Section `json:"sections"`
	Buckets  []string  `json:"buckets"`
}

// Panel builds the descriptor for id. Anyone but an admin gets no sections and no buckets.
func Panel(id common.Identity) PanelDescriptor {
	if !id.IsAdmin() {
		return PanelDescriptor{Sections: []Section{}, Buckets: []string{}}
	}
	schemas := Schemas()
	sections := make([]Section, 0, len(schemas))
	for _, s := range schemas {
		sections = append(sections, Section{
			Schema:      s,
			Affordances: Affordances{Create: true, Edit: true, Delete: true},
		})
	}
	return PanelDescriptor{IsAdmin: true, Sections: sections, Buckets: storage.Buckets()}
}
