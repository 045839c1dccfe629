package refs

import "strings"

// Policy decide qué hacer cuando un id referenciado en un create no existe.
type Policy string

const (
	// Drop descarta el id que no resuelve y sigue.
	Drop Policy = "drop"
	// Fail aborta la operación completa con NotFound.
	Fail Policy = "fail"
)

// ParsePolicy acepta "drop" / "fail" (case-insensitive); cualquier otro valor devuelve def.
func ParsePolicy(s string, def Policy) Policy {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case Drop:
		return Drop
	case Fail:
		return Fail
	default:
		return def
	}
}

// Dedupe quita ids repetidos preservando el orden de llegada.
func Dedupe(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
