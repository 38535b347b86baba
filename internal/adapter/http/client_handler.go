package http

import (
	"net/http"

	"rentora-backend/internal/usecase/client"

	"github.com/labstack/echo/v4"
)

type ClientHandler struct{ uc *client.Usecase }

func NewClientHandler(uc *client.Usecase) *ClientHandler { return &ClientHandler{uc: uc} }

type createClientReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), client.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ClientHandler) GetClient(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("client_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
