package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"go.uber.org/zap"

	"github.com/riolentius/customer-accounts/internal/config"
	"github.com/riolentius/customer-accounts/internal/repository/memory"
)

type serviceTestContext struct {
	app    *App
	status int
	header http.Header
	body   []byte
}

func (s *serviceTestContext) reset() {
	cfg := config.Config{StoreDriver: config.StoreMemory}
	s.app = NewWithStore(cfg, zap.NewNop(), memory.NewCustomerStore())
	s.status = 0
	s.header = nil
	s.body = nil
}

func (s *serviceTestContext) send(method, target, body string) error {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Fiber().Test(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	s.status = resp.StatusCode
	s.header = resp.Header
	s.body, err = io.ReadAll(resp.Body)
	return err
}

func customerJSON(first, last, email, address, active string) string {
	b, _ := json.Marshal(map[string]any{
		"first_name": first,
		"last_name":  last,
		"email":      email,
		"address":    address,
		"active":     active == "true",
	})
	return string(b)
}

func (s *serviceTestContext) theCustomerServiceIsRunning() error {
	return s.send("GET", "/health", "")
}

func (s *serviceTestContext) iCreateACustomer(first, last, email, address, active string) error {
	return s.send("POST", "/customers", customerJSON(first, last, email, address, active))
}

func (s *serviceTestContext) iPostTheBody(body string) error {
	return s.send("POST", "/customers", body)
}

func (s *serviceTestContext) iUpdateCustomer(id int, first, last, email, address, active string) error {
	return s.send("PUT", fmt.Sprintf("/customers/%d", id), customerJSON(first, last, email, address, active))
}

func (s *serviceTestContext) iGetCustomer(id int) error {
	return s.send("GET", fmt.Sprintf("/customers/%d", id), "")
}

func (s *serviceTestContext) iSuspendCustomer(id int) error {
	return s.send("PUT", fmt.Sprintf("/customers/%d/suspend", id), "")
}

func (s *serviceTestContext) iDeleteCustomer(id int) error {
	return s.send("DELETE", fmt.Sprintf("/customers/%d", id), "")
}

func (s *serviceTestContext) iListCustomers() error {
	return s.send("GET", "/customers", "")
}

func (s *serviceTestContext) iListCustomersWith(key, value string) error {
	return s.send("GET", "/customers?"+key+"="+value, "")
}

func (s *serviceTestContext) theseCustomersExist(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		c := row.Cells
		if err := s.iCreateACustomer(c[0].Value, c[1].Value, c[2].Value, c[3].Value, c[4].Value); err != nil {
			return err
		}
		if s.status != http.StatusCreated {
			return fmt.Errorf("seed row %d: status %d: %s", i, s.status, s.body)
		}
	}
	return nil
}

func (s *serviceTestContext) theResponseStatusIs(want int) error {
	if s.status != want {
		return fmt.Errorf("expected status %d, got %d: %s", want, s.status, s.body)
	}
	return nil
}

func (s *serviceTestContext) object() (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(s.body, &out); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	return out, nil
}

func (s *serviceTestContext) theResponseHasID(want int) error {
	out, err := s.object()
	if err != nil {
		return err
	}
	if id, _ := out["id"].(float64); int(id) != want {
		return fmt.Errorf("expected id %d, got %v", want, out["id"])
	}
	return nil
}

func (s *serviceTestContext) theLocationHeaderPointsAtCustomer(id int) error {
	loc := s.header.Get("Location")
	if !strings.HasSuffix(loc, fmt.Sprintf("/customers/%d", id)) {
		return fmt.Errorf("unexpected Location %q", loc)
	}
	return nil
}

func (s *serviceTestContext) theResponseFieldIs(field, want string) error {
	out, err := s.object()
	if err != nil {
		return err
	}
	if got := fmt.Sprint(out[field]); got != want {
		return fmt.Errorf("expected %s=%q, got %q", field, want, got)
	}
	return nil
}

func (s *serviceTestContext) theResponseBodyIsEmpty() error {
	if len(s.body) != 0 {
		return fmt.Errorf("expected empty body, got %q", s.body)
	}
	return nil
}

func (s *serviceTestContext) theResponseListsCustomers(want int) error {
	var out []map[string]any
	if err := json.Unmarshal(s.body, &out); err != nil {
		return fmt.Errorf("response is not a JSON array: %w", err)
	}
	if len(out) != want {
		return fmt.Errorf("expected %d customers, got %d", want, len(out))
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &serviceTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the customer service is running$`, tc.theCustomerServiceIsRunning)
	ctx.Step(`^these customers exist:$`, tc.theseCustomersExist)

	// When steps
	ctx.Step(`^I create a customer "([^"]*)" "([^"]*)" "([^"]*)" "([^"]*)" active "(true|false)"$`, tc.iCreateACustomer)
	ctx.Step(`^I post the body '([^']*)'$`, tc.iPostTheBody)
	ctx.Step(`^I update customer (\d+) to "([^"]*)" "([^"]*)" "([^"]*)" "([^"]*)" active "(true|false)"$`, tc.iUpdateCustomer)
	ctx.Step(`^I get customer (\d+)$`, tc.iGetCustomer)
	ctx.Step(`^I suspend customer (\d+)$`, tc.iSuspendCustomer)
	ctx.Step(`^I delete customer (\d+)$`, tc.iDeleteCustomer)
	ctx.Step(`^I list customers$`, tc.iListCustomers)
	ctx.Step(`^I list customers with "([^"]*)" = "([^"]*)"$`, tc.iListCustomersWith)

	// Then steps
	ctx.Step(`^the response status is (\d+)$`, tc.theResponseStatusIs)
	ctx.Step(`^the response has id (\d+)$`, tc.theResponseHasID)
	ctx.Step(`^the Location header points at customer (\d+)$`, tc.theLocationHeaderPointsAtCustomer)
	ctx.Step(`^the response field "([^"]*)" is "([^"]*)"$`, tc.theResponseFieldIs)
	ctx.Step(`^the response body is empty$`, tc.theResponseBodyIsEmpty)
	ctx.Step(`^the response lists (\d+) customers$`, tc.theResponseListsCustomers)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
