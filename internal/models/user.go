package models

import (
	"fmt"
)

// Rank is a support-tier level. Only the values listed below are valid.
type Rank string

// Support-tier levels, lowest first.
const (
	RankNoWhiteList       Rank = "NoWhiteList"
	RankSupportTeam1      Rank = "SupportTeam1"
	RankSupportTeam2      Rank = "SupportTeam2"
	RankSupportTeam3      Rank = "SupportTeam3"
	RankSupportTeam4      Rank = "SupportTeam4"
	RankSeniorSupportTeam Rank = "SeniorSupportTeam"
	RankLeadSupportTeam   Rank = "LeadSupportTeam"
)

var ranks = []Rank{
	RankNoWhiteList,
	RankSupportTeam1,
	RankSupportTeam2,
	RankSupportTeam3,
	RankSupportTeam4,
	RankSeniorSupportTeam,
	RankLeadSupportTeam,
}

// Ranks returns every rank in declaration order.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks)
	return out
}

// ParseRank converts s into a Rank, failing with ErrValidation for unknown values.
func ParseRank(s string) (Rank, error) {
	for _, r := range ranks {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown rank %q", ErrValidation, s)
}

// Valid reports whether r is one of the declared ranks.
func (r Rank) Valid() bool {
	_, err := ParseRank(string(r))
	return err == nil
}

// UnmarshalText rejects values outside the rank enumeration.
func (r *Rank) UnmarshalText(text []byte) error {
	parsed, err := ParseRank(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// User represents a support staff or subject record
// swagger:model User
type User struct {
	// Person identifier, assigned by the caller
	// required: true
	// example: 42
	Pid int64 `json:"pid"`

	// Display name
	// required: true
	// example: Jane Doe
	Name string `json:"name"`

	// Support-tier level
	// required: true
	// example: SupportTeam1
	Rank Rank `json:"rank"`
}
