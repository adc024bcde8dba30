package controller

import (
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/serverutils"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IShoppingController interface {
	RegisterRoutes(r fiber.Router)
	CreateList(ctx *fiber.Ctx) error
	DeleteList(ctx *fiber.Ctx) error
	Lists(ctx *fiber.Ctx) error
	ListDetail(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	TogglePurchased(ctx *fiber.Ctx) error
	ClearPurchased(ctx *fiber.Ctx) error
	AddSuggested(ctx *fiber.Ctx) error
}

type shoppingController struct {
	shoppingService service.IShoppingService
}

func NewShoppingController(shoppingService service.IShoppingService) IShoppingController {
	return &shoppingController{
		shoppingService: shoppingService,
	}
}

func (c *shoppingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/shopping/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("suggested", c.AddSuggested)
	h.Get("", c.Lists)
	h.Post("", c.CreateList)
	h.Get(":id", c.ListDetail)
	h.Delete(":id", c.DeleteList)
	h.Post(":id/items", c.AddItem)
	h.Delete(":id/items/:itemId", c.RemoveItem)
	h.Put(":id/items/:itemId/purchased", c.TogglePurchased)
	h.Delete(":id/purchased", c.ClearPurchased)
}

func (c *shoppingController) CreateList(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateShoppingListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shoppingService.CreateList(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create shopping list", res))
}

func (c *shoppingController) DeleteList(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.shoppingService.DeleteList(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete shopping list", nil))
}

func (c *shoppingController) Lists(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.shoppingService.GetLists(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list shopping lists", res))
}

func (c *shoppingController) ListDetail(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.shoppingService.GetListDetail(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show shopping list", res))
}

func (c *shoppingController) AddItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.AddShoppingItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shoppingService.AddItem(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add shopping item", res))
}

func (c *shoppingController) RemoveItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	listId, _ := uuid.Parse(ctx.Params("id"))
	itemId, _ := uuid.Parse(ctx.Params("itemId"))

	if err := c.shoppingService.RemoveItem(ctx.Context(), userId, listId, itemId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove shopping item", nil))
}

func (c *shoppingController) TogglePurchased(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	listId, _ := uuid.Parse(ctx.Params("id"))
	itemId, _ := uuid.Parse(ctx.Params("itemId"))

	purchased := ctx.QueryBool("purchased", true)

	if err := c.shoppingService.SetItemPurchased(ctx.Context(), userId, listId, itemId, purchased); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update shopping item", nil))
}

func (c *shoppingController) ClearPurchased(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.shoppingService.ClearPurchased(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear purchased items", nil))
}

func (c *shoppingController) AddSuggested(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AddSuggestedItemsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shoppingService.AddSuggestedItems(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add suggested items", res))
}
