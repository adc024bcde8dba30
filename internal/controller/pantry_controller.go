package controller

import (
	"strconv"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/serverutils"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPantryController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Expiring(ctx *fiber.Ctx) error
}

type pantryController struct {
	pantryService service.IPantryService
}

func NewPantryController(pantryService service.IPantryService) IPantryController {
	return &pantryController{
		pantryService: pantryService,
	}
}

func (c *pantryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pantry/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("expiring", c.Expiring)
	h.Get("", c.List)
	h.Post("", c.Add)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Remove)
}

func (c *pantryController) Add(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AddPantryItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pantryService.AddItem(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add pantry item", res))
}

func (c *pantryController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.UpdatePantryItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.pantryService.UpdateItem(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update pantry item", res))
}

func (c *pantryController) Remove(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.pantryService.RemoveItem(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove pantry item", nil))
}

func (c *pantryController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.pantryService.ListItems(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pantry items", res))
}

func (c *pantryController) Expiring(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	days, _ := strconv.Atoi(ctx.Query("days", "7"))

	res, err := c.pantryService.ListExpiring(ctx.Context(), userId, days)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list expiring pantry items", res))
}
