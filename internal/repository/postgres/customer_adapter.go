package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

type CustomerStoreAdapter struct {
	repo *CustomerRepo
}

func NewCustomerStoreAdapter(repo *CustomerRepo) *CustomerStoreAdapter {
	return &CustomerStoreAdapter{repo: repo}
}

func (a *CustomerStoreAdapter) Insert(ctx context.Context, c customeruc.Customer) (int64, error) {
	id, err := a.repo.Create(ctx, toRow(c))
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return id, nil
}

func (a *CustomerStoreAdapter) Update(ctx context.Context, c customeruc.Customer) error {
	if c.ID == nil {
		return &customeruc.ValidationError{Kind: customeruc.MissingIdentifier}
	}
	if err := a.repo.Update(ctx, toRow(c)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customeruc.ErrNotFound
		}
		return mapWriteErr(err)
	}
	return nil
}

func (a *CustomerStoreAdapter) Delete(ctx context.Context, id int64) error {
	return a.repo.Delete(ctx, id)
}

func (a *CustomerStoreAdapter) FindByID(ctx context.Context, id int64) (*customeruc.Customer, error) {
	row, err := a.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customeruc.ErrNotFound
		}
		return nil, err
	}
	return mapCustomer(row), nil
}

func (a *CustomerStoreAdapter) FindBy(ctx context.Context, f customeruc.Filter) ([]customeruc.Customer, error) {
	column, value, err := filterColumn(f)
	if err != nil {
		return nil, err
	}
	rows, err := a.repo.ListWhere(ctx, column, value)
	if err != nil {
		return nil, err
	}
	return mapCustomers(rows), nil
}

func (a *CustomerStoreAdapter) All(ctx context.Context) ([]customeruc.Customer, error) {
	rows, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapCustomers(rows), nil
}

// filterColumn maps a filter to a fixed column name; values are always bound.
func filterColumn(f customeruc.Filter) (string, any, error) {
	switch f.Field {
	case customeruc.FilterFirstName:
		return "first_name", f.Value, nil
	case customeruc.FilterLastName:
		return "last_name", f.Value, nil
	case customeruc.FilterAddress:
		return "address", f.Value, nil
	case customeruc.FilterEmail:
		return "email", f.Value, nil
	case customeruc.FilterActive:
		return "active", f.Active, nil
	default:
		return "", nil, fmt.Errorf("unsupported filter field %d", f.Field)
	}
}

func mapWriteErr(err error) error {
	if isValueTooLong(err) {
		return &customeruc.ValidationError{
			Kind: customeruc.InvalidField,
			Msg:  "Invalid customer: value too long",
		}
	}
	return err
}

func toRow(c customeruc.Customer) CustomerRow {
	row := CustomerRow{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   c.Address,
		Active:    c.Active,
	}
	if c.ID != nil {
		row.ID = *c.ID
	}
	return row
}

func mapCustomers(rows []CustomerRow) []customeruc.Customer {
	out := make([]customeruc.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, *mapCustomer(&rows[i]))
	}
	return out
}

func mapCustomer(r *CustomerRow) *customeruc.Customer {
	id := r.ID
	return &customeruc.Customer{
		ID:        &id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Address:   r.Address,
		Active:    r.Active,
	}
}
