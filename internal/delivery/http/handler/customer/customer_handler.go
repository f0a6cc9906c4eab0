package customer

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	customeruc "github.com/riolentius/customer-accounts/internal/usecase/customer"
)

type Handler struct {
	uc  *customeruc.Usecase
	log *zap.Logger
}

func New(uc *customeruc.Usecase, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{uc: uc, log: log}
}

func (h *Handler) List(c *fiber.Ctx) error {
	q := customeruc.ListQuery{
		FirstName: queryParam(c, "first_name"),
		LastName:  queryParam(c, "last_name"),
		Address:   queryParam(c, "address"),
		Email:     queryParam(c, "email"),
		Active:    queryParam(c, "active"),
	}

	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return h.mapErr(err)
	}

	items := make([]map[string]any, 0, len(out))
	for _, cu := range out {
		items = append(items, cu.Serialize())
	}
	return c.JSON(items)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if errors.Is(err, customeruc.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Customer with id '%d' was not found.", id))
	}
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	if err := requireJSON(c); err != nil {
		return err
	}

	out, err := h.uc.Create(c.Context(), c.Body())
	if err != nil {
		return h.mapErr(err)
	}

	c.Location(fmt.Sprintf("%s/customers/%d", c.BaseURL(), *out.ID))
	return c.Status(fiber.StatusCreated).JSON(out.Serialize())
}

func (h *Handler) Update(c *fiber.Ctx) error {
	if err := requireJSON(c); err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Update(c.Context(), id, c.Body())
	if errors.Is(err, customeruc.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Customer with id '%d' was not found.", id))
	}
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Suspend(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	out, err := h.uc.Suspend(c.Context(), id)
	if errors.Is(err, customeruc.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Customer with id '%d' was not found.", id))
	}
	return h.writeOne(c, out, err, fiber.StatusOK)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return h.mapErr(err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

func (h *Handler) writeOne(c *fiber.Ctx, out *customeruc.Customer, err error, okStatus int) error {
	if err != nil {
		return h.mapErr(err)
	}
	return c.Status(okStatus).JSON(out.Serialize())
}

func (h *Handler) mapErr(err error) error {
	switch {
	case customeruc.IsValidation(err):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, customeruc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		h.log.Error("customer operation failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}

// queryParam returns nil when the parameter is absent, so an empty value still counts as set.
func queryParam(c *fiber.Ctx, key string) *string {
	args := c.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	v := string(args.Peek(key))
	return &v
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "invalid customer id")
	}
	return int64(id), nil
}

func requireJSON(c *fiber.Ctx) error {
	if c.Is("json") {
		return nil
	}
	return fiber.NewError(fiber.StatusUnsupportedMediaType, "Content-Type must be "+fiber.MIMEApplicationJSON)
}
