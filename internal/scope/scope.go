// Package scope resolves which slice of the geography a user may see.
//
// Scope is not a role list: it is derived per request from the
// hierarchy directory, where a person's email can appear at any of
// three levels on any number of rows. The resolved value is the union
// of all matching rows' (pc, constituency, ward) triples.
package scope

import (
	"context"

	"boothtrack/internal/normalize"
	"boothtrack/model"
)

// Level is the organizational level at which an email matched.
type Level string

const (
	LevelSL    Level = "SL"
	LevelZonal Level = "ZONAL"
	LevelACM   Level = "ACM"
)

// Triple is one exact (pc, constituency, ward) a user may query.
// Missing directory fields are empty strings and compare equal.
type Triple struct {
	PC           string `json:"pc"           bson:"pc"`
	Constituency string `json:"constituency" bson:"constituency"`
	Ward         string `json:"ward"         bson:"ward"`
}

// Resolution is ephemeral, computed once per request, never persisted.
// Level is empty when the email matched no rows; that is a valid
// "no visibility" result, not an error.
type Resolution struct {
	Level   Level
	Allowed []Triple
}

// Directory is the hierarchy lookup the resolver depends on.
// repository.HierarchyRepository implements it; tests inject fakes.
type Directory interface {
	FindRowsByAnyEmail(ctx context.Context, email string) ([]model.HierarchyRow, error)
}

// Resolve looks up every directory row where email appears at any
// level and returns the highest matched level (SL > ZONAL > ACM)
// together with the deduplicated union of triples from all matching
// rows. The caller must reject empty emails before calling; Resolve
// issues exactly one directory query.
func Resolve(ctx context.Context, dir Directory, email string) (Resolution, error) {
	email = normalize.Email(email)

	rows, err := dir.FindRowsByAnyEmail(ctx, email)
	if err != nil {
		return Resolution{}, err
	}
	if len(rows) == 0 {
		return Resolution{}, nil
	}

	level := LevelACM
	for _, r := range rows {
		if r.SLEmail == email {
			level = LevelSL
			break
		}
		if r.ZonalEmail == email {
			level = LevelZonal
		}
	}

	// Union across ALL matching rows, regardless of which level
	// matched on each row.
	seen := make(map[Triple]struct{}, len(rows))
	allowed := make([]Triple, 0, len(rows))
	for _, r := range rows {
		t := Triple{PC: r.PC, Constituency: r.Constituency, Ward: r.Ward}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		allowed = append(allowed, t)
	}

	return Resolution{Level: level, Allowed: allowed}, nil
}

// Empty reports whether the resolution grants no visibility.
func (r Resolution) Empty() bool {
	return len(r.Allowed) == 0
}
