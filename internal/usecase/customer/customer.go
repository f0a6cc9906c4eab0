package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// payloadFields is the order in which presence and type are checked.
var payloadFields = []string{"first_name", "last_name", "email", "address", "active"}

var jsonNull = []byte("null")

// Deserialize overwrites the five data fields from a JSON object. On error the
// receiver may be partially written and must be discarded.
func (c *Customer) Deserialize(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return &ValidationError{Kind: MalformedPayload}
	}

	for _, f := range payloadFields {
		if _, ok := raw[f]; !ok {
			return &ValidationError{Kind: MissingField, Field: f}
		}
	}

	for _, f := range payloadFields {
		v := bytes.TrimSpace(raw[f])
		if bytes.Equal(v, jsonNull) {
			return &ValidationError{Kind: InvalidField, Field: f}
		}

		var err error
		switch f {
		case "first_name":
			err = json.Unmarshal(v, &c.FirstName)
		case "last_name":
			err = json.Unmarshal(v, &c.LastName)
		case "email":
			err = json.Unmarshal(v, &c.Email)
		case "address":
			err = json.Unmarshal(v, &c.Address)
		case "active":
			err = json.Unmarshal(v, &c.Active)
		}
		if err != nil {
			return &ValidationError{Kind: InvalidField, Field: f}
		}
	}

	if strings.TrimSpace(c.FirstName) == "" {
		return &ValidationError{Kind: InvalidField, Field: "first_name", Msg: "Invalid customer: first_name must not be empty"}
	}
	if strings.TrimSpace(c.LastName) == "" {
		return &ValidationError{Kind: InvalidField, Field: "last_name", Msg: "Invalid customer: last_name must not be empty"}
	}
	return nil
}

func (c Customer) Serialize() map[string]any {
	var id any
	if c.ID != nil {
		id = *c.ID
	}
	return map[string]any{
		"id":         id,
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"address":    c.Address,
		"active":     c.Active,
	}
}

// Create persists a transient customer and assigns its identifier.
func (c *Customer) Create(ctx context.Context, s Store) error {
	if c.ID != nil {
		return &ValidationError{Kind: InvalidField, Field: "id", Msg: "Create called with an ID already set"}
	}
	id, err := s.Insert(ctx, *c)
	if err != nil {
		return storeErr("create customer", err)
	}
	c.ID = &id
	return nil
}

func (c *Customer) Update(ctx context.Context, s Store) error {
	if c.ID == nil {
		return &ValidationError{Kind: MissingIdentifier}
	}
	return storeErr("update customer", s.Update(ctx, *c))
}

func (c *Customer) Delete(ctx context.Context, s Store) error {
	if c.ID == nil {
		return &ValidationError{Kind: MissingIdentifier, Msg: "Delete called with empty ID field"}
	}
	return storeErr("delete customer", s.Delete(ctx, *c.ID))
}

func FindByID(ctx context.Context, s Store, id int64) (*Customer, error) {
	c, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("find customer", err)
	}
	return c, nil
}

func FindByFirstName(ctx context.Context, s Store, firstName string) ([]Customer, error) {
	return findBy(ctx, s, Filter{Field: FilterFirstName, Value: firstName})
}

func FindByLastName(ctx context.Context, s Store, lastName string) ([]Customer, error) {
	return findBy(ctx, s, Filter{Field: FilterLastName, Value: lastName})
}

func FindByAddress(ctx context.Context, s Store, address string) ([]Customer, error) {
	return findBy(ctx, s, Filter{Field: FilterAddress, Value: address})
}

func FindByEmail(ctx context.Context, s Store, email string) ([]Customer, error) {
	return findBy(ctx, s, Filter{Field: FilterEmail, Value: email})
}

func FindByActive(ctx context.Context, s Store, active bool) ([]Customer, error) {
	return findBy(ctx, s, Filter{Field: FilterActive, Active: active})
}

func All(ctx context.Context, s Store) ([]Customer, error) {
	out, err := s.All(ctx)
	if err != nil {
		return nil, storeErr("list customers", err)
	}
	return out, nil
}

func findBy(ctx context.Context, s Store, f Filter) ([]Customer, error) {
	out, err := s.FindBy(ctx, f)
	if err != nil {
		return nil, storeErr("find customers by "+f.Field.String(), err)
	}
	return out, nil
}
