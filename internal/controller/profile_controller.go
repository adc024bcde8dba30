package controller

import (
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/serverutils"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ShowDietary(ctx *fiber.Ctx) error
	AddAllergy(ctx *fiber.Ctx) error
	RemoveAllergy(ctx *fiber.Ctx) error
	AddRestriction(ctx *fiber.Ctx) error
	RemoveRestriction(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
}

func NewProfileController(profileService service.IProfileService) IProfileController {
	return &profileController{
		profileService: profileService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Get("dietary", c.ShowDietary)
	h.Post("allergies", c.AddAllergy)
	h.Delete("allergies/:id", c.RemoveAllergy)
	h.Post("restrictions", c.AddRestriction)
	h.Delete("restrictions/:id", c.RemoveRestriction)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *profileController) ShowDietary(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.profileService.GetDietaryProfile(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show dietary profile", res))
}

func (c *profileController) AddAllergy(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AddAllergyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.AddAllergy(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add allergy", res))
}

func (c *profileController) RemoveAllergy(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.profileService.RemoveAllergy(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove allergy", nil))
}

func (c *profileController) AddRestriction(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AddRestrictionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.profileService.AddRestriction(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add restriction", res))
}

func (c *profileController) RemoveRestriction(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.profileService.RemoveRestriction(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove restriction", nil))
}
