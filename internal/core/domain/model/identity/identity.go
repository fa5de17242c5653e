// Package identity describes who is calling: a consumer, a courier or a
// restaurant, each identified by a subject UUID.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

type Kind int

const (
	Unknown Kind = iota
	Consumer
	Courier
	Restaurant
)

func getKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Consumer:   "consumer",
		Courier:    "courier",
		Restaurant: "restaurant",
	}
}

// ParseKind maps the stored kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range getKindStrings() {
		if name == needle {
			return kind, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("identity kind is invalid", fmt.Errorf("%q is not a valid kind", s))
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("identity kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// Identity is the resolved caller. Use cases never accept a raw UUID for the
// acting party; they accept an Identity and check its kind.
type Identity struct {
	kind      Kind
	subjectID kernel.UUID

	guard guard.ConstructorGuard
}

func NewIdentity(kind Kind, subjectID kernel.UUID) (Identity, error) {
	if err := errors.Join(kind.Validate(), subjectID.Validate()); err != nil {
		return Identity{}, err
	}

	return Identity{
		kind:      kind,
		subjectID: subjectID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i Identity) Kind() Kind {
	return i.kind
}

func (i Identity) SubjectID() kernel.UUID {
	return i.subjectID
}

// Require returns the subject id when the identity has the wanted kind and
// errs.ForbiddenError otherwise.
func (i Identity) Require(kind Kind) (kernel.UUID, error) {
	if err := i.Validate(); err != nil {
		return kernel.UUID{}, errs.NewForbiddenErrorWithCause("identity is required", err)
	}
	if i.kind != kind {
		return kernel.UUID{}, errs.NewForbiddenError(fmt.Sprintf("%s identity required, got %s", kind, i.kind))
	}
	return i.subjectID, nil
}
