package pets

import (
	"strings"
	"time"

	"pet-daycare/internal/domain/errs"
)

// Type define los tipos de mascota soportados.
// @Enum CAT, DOG, LIZARD, BIRD, FISH, SNAKE, OTHER
type Type string

const (
	TypeCat    Type = "CAT"
	TypeDog    Type = "DOG"
	TypeLizard Type = "LIZARD"
	TypeBird   Type = "BIRD"
	TypeFish   Type = "FISH"
	TypeSnake  Type = "SNAKE"
	TypeOther  Type = "OTHER"
)

var validTypes = map[Type]struct{}{
	TypeCat: {}, TypeDog: {}, TypeLizard: {}, TypeBird: {},
	TypeFish: {}, TypeSnake: {}, TypeOther: {},
}

// ParseType normaliza a mayúsculas y valida contra el enum.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if t == "" {
		return "", errs.Invalid("type is required")
	}
	if _, ok := validTypes[t]; !ok {
		return "", errs.Invalid("unknown pet type %q", s)
	}
	return t, nil
}

// Pet siempre tiene dueño: OwnerID es la FK hacia customers.
type Pet struct {
	ID      int64
	Type    Type
	Name    string
	OwnerID int64

	BirthDate *time.Time
	Notes     string
}
