package controller

import (
	"errors"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/pkg/serverutils"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	RecentRecipes(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
	SuggestedItems(ctx *fiber.Ctx) error
	PreviewRecipe(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("send", c.Send)
	h.Get("history", c.History)
	h.Delete("history", c.ClearHistory)
	h.Get("recipes/recent", c.RecentRecipes)
	h.Get("messages/:id/suggested-items", c.SuggestedItems)
	h.Post("recipes/preview", c.PreviewRecipe)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrConversationBusy) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.chatService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation history", res))
}

func (c *chatController) RecentRecipes(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.chatService.GetRecentRecipes(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show recent recipes", res))
}

func (c *chatController) ClearHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.chatService.ClearHistory(ctx.Context(), userId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success clear conversation history", nil))
}

func (c *chatController) SuggestedItems(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	messageId := ctx.Params("id")

	res, err := c.chatService.GetSuggestedItems(ctx.Context(), userId, messageId)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show suggested items", res))
}

func (c *chatController) PreviewRecipe(ctx *fiber.Ctx) error {
	var req dto.SaveExtractedRecipeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.chatService.PreviewRecipe(req.MessageText)

	return ctx.JSON(serverutils.SuccessResponse("Success preview recipe", res))
}
