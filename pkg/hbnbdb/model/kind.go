package model

import "github.com/pkg/errors"

// Kind names one of the entity variants. It is the discriminator written to
// records as __class__ and the prefix of every storage key.
type Kind string

const (
	KindUser    Kind = "User"
	KindState   Kind = "State"
	KindCity    Kind = "City"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
	KindAmenity Kind = "Amenity"
)

// AllKinds lists every variant in the order stores enumerate them.
var AllKinds = []Kind{KindState, KindCity, KindUser, KindPlace, KindReview, KindAmenity}

var ErrUnknownKind = errors.New("unknown kind")

func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindUser, KindState, KindCity, KindPlace, KindReview, KindAmenity:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", name)
	}
}

func (k Kind) String() string {
	return string(k)
}

// Zero returns a zero valued entity of kind, without identity or
// timestamps. It is the target for decoding and for database scans.
func Zero(kind Kind) (Entity, error) {
	switch kind {
	case KindUser:
		return &User{}, nil
	case KindState:
		return &State{}, nil
	case KindCity:
		return &City{}, nil
	case KindPlace:
		return &Place{}, nil
	case KindReview:
		return &Review{}, nil
	case KindAmenity:
		return &Amenity{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", string(kind))
	}
}

// New constructs a fresh entity of kind with a new identity.
func New(kind Kind) (Entity, error) {
	e, err := Zero(kind)
	if err != nil {
		return nil, err
	}

	*e.GetBase() = newBase()
	return e, nil
}
