package rankings

import (
	"errors"
)

const (
	// MaxNames is the amount of ranked players kept from a fetched page.
	MaxNames = 50
	// MinAcceptedNames is the least amount of names a fetched page must yield
	// to be used instead of the fallback list. It is an arbitrary business
	// rule, not a structural requirement of the page.
	MinAcceptedNames = 30
)

var ErrEmptyList = errors.New("rankings list is empty")

// List is an ordered list of player names, a player's rank is its index + 1.
type List []string

// Source records where a List came from.
type Source string

const (
	SourceFetched  Source = "fetched"
	SourceFallback Source = "fallback"
)

// Record is the document written to rankings.json. Field order is the
// serialized key order.
type Record struct {
	Updated  string `json:"updated"`
	Rankings List   `json:"rankings"`
}

func NewRecord(updated string, list List) (Record, error) {
	if len(list) == 0 {
		return Record{}, ErrEmptyList
	}
	return Record{
		Updated:  updated,
		Rankings: list,
	}, nil
}
