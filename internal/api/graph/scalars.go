package graph

import (
	"carlot/pkg/domain"
	"fmt"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// DateLayout is the wire format of the Date scalar.
const DateLayout = time.DateOnly

func quote(s string) []byte {
	var e jx.Encoder
	e.Str(s)

	return e.Bytes()
}

func inputString(scalar string, input any) (string, error) {
	s, ok := input.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", scalar, input)
	}

	return s, nil
}

// UUID is the GraphQL UUID scalar.
type UUID uuid.UUID

// ImplementsGraphQLType maps this Go type to the UUID scalar.
func (UUID) ImplementsGraphQLType(name string) bool { return name == "UUID" }

// UnmarshalGraphQL parses the textual form of a UUID.
func (u *UUID) UnmarshalGraphQL(input any) error {
	s, err := inputString("UUID", input)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	*u = UUID(id)

	return nil
}

// MarshalJSON renders the UUID as a JSON string.
func (u UUID) MarshalJSON() ([]byte, error) {
	return quote(uuid.UUID(u).String()), nil
}

// Date is the GraphQL Date scalar.
type Date time.Time

// ImplementsGraphQLType maps this Go type to the Date scalar.
func (Date) ImplementsGraphQLType(name string) bool { return name == "Date" }

// UnmarshalGraphQL parses a YYYY-MM-DD date.
func (d *Date) UnmarshalGraphQL(input any) error {
	s, err := inputString("Date", input)
	if err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid Date %q: %w", s, err)
	}
	*d = Date(t)

	return nil
}

// MarshalJSON renders the date as a YYYY-MM-DD JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return quote(time.Time(d).Format(DateLayout)), nil
}

// DateTime is the GraphQL DateTime scalar.
type DateTime time.Time

// ImplementsGraphQLType maps this Go type to the DateTime scalar.
func (DateTime) ImplementsGraphQLType(name string) bool { return name == "DateTime" }

// UnmarshalGraphQL parses an RFC 3339 timestamp.
func (d *DateTime) UnmarshalGraphQL(input any) error {
	s, err := inputString("DateTime", input)
	if err != nil {
		return err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid DateTime %q: %w", s, err)
	}
	*d = DateTime(t)

	return nil
}

// MarshalJSON renders the timestamp as an RFC 3339 JSON string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return quote(time.Time(d).Format(time.RFC3339Nano)), nil
}

// LicensePlate is the GraphQL LicensePlate scalar. Its content is not validated.
type LicensePlate domain.LicensePlate

// ImplementsGraphQLType maps this Go type to the LicensePlate scalar.
func (LicensePlate) ImplementsGraphQLType(name string) bool { return name == "LicensePlate" }

// UnmarshalGraphQL accepts any string, normalized to NFC so that decomposed
// Å, Ä and Ö compare equal to the generated ones.
func (p *LicensePlate) UnmarshalGraphQL(input any) error {
	s, err := inputString("LicensePlate", input)
	if err != nil {
		return err
	}
	*p = LicensePlate(norm.NFC.String(s))

	return nil
}

// MarshalJSON renders the plate as a JSON string.
func (p LicensePlate) MarshalJSON() ([]byte, error) {
	return quote(string(p)), nil
}
