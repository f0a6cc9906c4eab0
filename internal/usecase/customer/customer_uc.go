package customer

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type Usecase struct {
	store Store
	log   *zap.Logger
}

func New(store Store, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{store: store, log: log}
}

func (u *Usecase) List(ctx context.Context, q ListQuery) ([]Customer, error) {
	f, err := SelectFilter(q)
	if err != nil {
		return nil, err
	}
	if f == nil {
		u.log.Debug("listing all customers")
		return All(ctx, u.store)
	}

	u.log.Debug("listing customers", zap.Stringer("filter", f.Field), zap.String("value", f.Value))
	switch f.Field {
	case FilterFirstName:
		return FindByFirstName(ctx, u.store, f.Value)
	case FilterLastName:
		return FindByLastName(ctx, u.store, f.Value)
	case FilterAddress:
		return FindByAddress(ctx, u.store, f.Value)
	case FilterEmail:
		return FindByEmail(ctx, u.store, f.Value)
	default:
		return FindByActive(ctx, u.store, f.Active)
	}
}

func (u *Usecase) GetByID(ctx context.Context, id int64) (*Customer, error) {
	u.log.Debug("looking up customer", zap.Int64("id", id))
	return FindByID(ctx, u.store, id)
}

func (u *Usecase) Create(ctx context.Context, body []byte) (*Customer, error) {
	var c Customer
	if err := c.Deserialize(body); err != nil {
		return nil, err
	}

	u.log.Info("creating customer", zap.String("first_name", c.FirstName), zap.String("last_name", c.LastName))
	if err := c.Create(ctx, u.store); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces all five data fields of an existing customer.
func (u *Usecase) Update(ctx context.Context, id int64, body []byte) (*Customer, error) {
	c, err := FindByID(ctx, u.store, id)
	if err != nil {
		return nil, err
	}
	if err := c.Deserialize(body); err != nil {
		return nil, err
	}
	c.ID = &id

	u.log.Info("saving customer", zap.Stringer("customer", c))
	if err := c.Update(ctx, u.store); err != nil {
		return nil, err
	}
	return c, nil
}

// Suspend forces active=false and leaves every other field untouched.
func (u *Usecase) Suspend(ctx context.Context, id int64) (*Customer, error) {
	c, err := FindByID(ctx, u.store, id)
	if err != nil {
		return nil, err
	}
	c.Active = false
	c.ID = &id

	u.log.Info("suspending customer", zap.Stringer("customer", c))
	if err := c.Update(ctx, u.store); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete succeeds whether or not the customer exists.
func (u *Usecase) Delete(ctx context.Context, id int64) error {
	c, err := FindByID(ctx, u.store, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	u.log.Info("deleting customer", zap.Stringer("customer", c))
	return c.Delete(ctx, u.store)
}
