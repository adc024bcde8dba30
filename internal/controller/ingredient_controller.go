package controller

import (
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/serverutils"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIngredientController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type ingredientController struct {
	ingredientService service.IIngredientService
}

func NewIngredientController(ingredientService service.IIngredientService) IIngredientController {
	return &ingredientController{
		ingredientService: ingredientService,
	}
}

func (c *ingredientController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ingredient/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("search", c.Search)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *ingredientController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateIngredientRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ingredientService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create ingredient", res))
}

func (c *ingredientController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.ingredientService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show ingredient", res))
}

func (c *ingredientController) Search(ctx *fiber.Ctx) error {
	q := ctx.Query("q", "")

	res, err := c.ingredientService.Search(ctx.Context(), q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search ingredients", res))
}
