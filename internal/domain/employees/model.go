package employees

import (
	"sort"
	"strings"
	"time"

	"pet-daycare/internal/domain/errs"
)

// Skill es una actividad que un empleado sabe realizar.
// @Enum PETTING, WALKING, FEEDING, MEDICATING, SHAVING
type Skill string

const (
	SkillPetting    Skill = "PETTING"
	SkillWalking    Skill = "WALKING"
	SkillFeeding    Skill = "FEEDING"
	SkillMedicating Skill = "MEDICATING"
	SkillShaving    Skill = "SHAVING"
)

// orden de salida de los sets
var skillOrder = []Skill{SkillPetting, SkillWalking, SkillFeeding, SkillMedicating, SkillShaving}

// Day es un día de la semana.
// @Enum MONDAY, TUESDAY, WEDNESDAY, THURSDAY, FRIDAY, SATURDAY, SUNDAY
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
	Sunday    Day = "SUNDAY"
)

var dayOrder = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type Employee struct {
	ID            int64
	Name          string
	Skills        []Skill
	DaysAvailable []Day
}

// HasSkills indica si el empleado tiene todas las skills pedidas.
func (e Employee) HasSkills(required []Skill) bool {
	have := make(map[Skill]struct{}, len(e.Skills))
	for _, s := range e.Skills {
		have[s] = struct{}{}
	}
	for _, s := range required {
		if _, ok := have[s]; !ok {
			return false
		}
	}
	return true
}

// DayOf convierte la fecha al Day correspondiente.
func DayOf(t time.Time) Day {
	// time.Sunday == 0
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return dayOrder[int(t.Weekday())-1]
}

func ParseSkill(s string) (Skill, error) {
	v := Skill(strings.ToUpper(strings.TrimSpace(s)))
	if rank(skillOrder, v) < 0 {
		return "", errs.Invalid("unknown skill %q", s)
	}
	return v, nil
}

func ParseDay(s string) (Day, error) {
	v := Day(strings.ToUpper(strings.TrimSpace(s)))
	if rank(dayOrder, v) < 0 {
		return "", errs.Invalid("unknown day %q", s)
	}
	return v, nil
}

// NormalizeSkills valida, deduplica y ordena según el enum.
func NormalizeSkills(in []string) ([]Skill, error) {
	out := make([]Skill, 0, len(in))
	for _, raw := range in {
		s, err := ParseSkill(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return sortSet(skillOrder, out), nil
}

// NormalizeDays valida, deduplica y ordena MONDAY..SUNDAY.
func NormalizeDays(in []string) ([]Day, error) {
	out := make([]Day, 0, len(in))
	for _, raw := range in {
		d, err := ParseDay(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return sortSet(dayOrder, out), nil
}

func rank[T comparable](order []T, v T) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}
	return -1
}

func sortSet[T comparable](order []T, in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return rank(order, out[i]) < rank(order, out[j]) })
	return out
}
