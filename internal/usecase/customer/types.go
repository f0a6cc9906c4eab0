package customer

import (
	"context"
	"fmt"
)

type Customer struct {
	ID        *int64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Active    bool   `json:"active"`
}

func (c Customer) String() string {
	id := "None"
	if c.ID != nil {
		id = fmt.Sprintf("%d", *c.ID)
	}
	return fmt.Sprintf("<Customer> %q %q id=[%s]", c.FirstName, c.LastName, id)
}

// Store is the persistence collaborator. Implementations return ErrNotFound
// when no record matches an identifier.
type Store interface {
	Insert(ctx context.Context, c Customer) (int64, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Customer, error)
	FindBy(ctx context.Context, f Filter) ([]Customer, error)
	All(ctx context.Context) ([]Customer, error)
}

// ListQuery carries the list query parameters; nil means absent.
type ListQuery struct {
	FirstName *string
	LastName  *string
	Address   *string
	Email     *string
	Active    *string
}
