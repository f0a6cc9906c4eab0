package customer

import "strings"

type FilterField int

const (
	FilterFirstName FilterField = iota + 1
	FilterLastName
	FilterAddress
	FilterEmail
	FilterActive
)

// filterOrder is the precedence used when more than one list parameter is set.
var filterOrder = []FilterField{FilterFirstName, FilterLastName, FilterAddress, FilterEmail, FilterActive}

func (f FilterField) String() string {
	switch f {
	case FilterFirstName:
		return "first_name"
	case FilterLastName:
		return "last_name"
	case FilterAddress:
		return "address"
	case FilterEmail:
		return "email"
	case FilterActive:
		return "active"
	default:
		return "unknown"
	}
}

// Filter is a single exact-match criterion. Active is used only for FilterActive.
type Filter struct {
	Field  FilterField
	Value  string
	Active bool
}

func (f Filter) Match(c Customer) bool {
	switch f.Field {
	case FilterFirstName:
		return c.FirstName == f.Value
	case FilterLastName:
		return c.LastName == f.Value
	case FilterAddress:
		return c.Address == f.Value
	case FilterEmail:
		return c.Email == f.Value
	case FilterActive:
		return c.Active == f.Active
	default:
		return false
	}
}

// SelectFilter picks the first present parameter in filterOrder.
// A nil filter means list everything.
func SelectFilter(q ListQuery) (*Filter, error) {
	for _, field := range filterOrder {
		v := q.value(field)
		if v == nil {
			continue
		}
		if field != FilterActive {
			return &Filter{Field: field, Value: *v}, nil
		}
		active, ok := parseActive(*v)
		if !ok {
			return nil, &ValidationError{Kind: InvalidQuery, Field: field.String()}
		}
		return &Filter{Field: field, Value: *v, Active: active}, nil
	}
	return nil, nil
}

func (q ListQuery) value(f FilterField) *string {
	switch f {
	case FilterFirstName:
		return q.FirstName
	case FilterLastName:
		return q.LastName
	case FilterAddress:
		return q.Address
	case FilterEmail:
		return q.Email
	case FilterActive:
		return q.Active
	default:
		return nil
	}
}

func parseActive(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	default:
		return false, false
	}
}
