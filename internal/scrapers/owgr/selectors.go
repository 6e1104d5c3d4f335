package owgr

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Selectors decide which elements are ranking rows and where a player's name
// sits inside a row. The live page markup is unverified, so they come from
// configuration.
type Selectors struct {
	// Row matches one element per ranked player, in rank order.
	Row string `json:"row"`
	// Names are tried in order inside each row, the first one that matches an
	// element with text wins.
	Names []string `json:"names"`
}

func DefaultSelectors() Selectors {
	return Selectors{
		Row:   "tr.ranking-row",
		Names: []string{"td.name", "a.player-name"},
	}
}

// Validate checks that every selector compiles.
func (s Selectors) Validate() error {
	if s.Row == "" {
		return fmt.Errorf("row selector is empty")
	}
	_, err := cascadia.Compile(s.Row)
	if err != nil {
		return fmt.Errorf("row selector %q: %w", s.Row, err)
	}
	if len(s.Names) == 0 {
		return fmt.Errorf("no name selectors")
	}
	for _, name := range s.Names {
		_, err := cascadia.Compile(name)
		if err != nil {
			return fmt.Errorf("name selector %q: %w", name, err)
		}
	}
	return nil
}
