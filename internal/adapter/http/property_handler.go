package http

import (
	"net/http"

	"rentora-backend/internal/usecase/property"

	"github.com/labstack/echo/v4"
)

type PropertyHandler struct{ uc *property.Usecase }

func NewPropertyHandler(uc *property.Usecase) *PropertyHandler { return &PropertyHandler{uc: uc} }

type createPropertyReq struct {
	Name             string  `json:"name" validate:"required"`
	Address          string  `json:"address"`
	EstimatedMonthly float64 `json:"estimated_monthly" validate:"required,dec2,gte=0"`
	Status           string  `json:"status"`
}

type updateRateReq struct {
	EstimatedMonthly float64 `json:"estimated_monthly" validate:"required,dec2,gte=0"`
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Create(c.Request().Context(), property.CreatePropertyInput{
		Name:             req.Name,
		Address:          req.Address,
		EstimatedMonthly: req.EstimatedMonthly,
		Status:           req.Status,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PropertyHandler) SyncStatus(c echo.Context) error {
	dto, err := h.uc.SyncStatus(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PropertyHandler) UpdateRate(c echo.Context) error {
	var req updateRateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.UpdateEstimatedMonthly(c.Request().Context(), c.Param("property_id"), req.EstimatedMonthly)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("property_id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PropertyHandler) ListRentals(c echo.Context) error {
	rentals, err := h.uc.ListRentals(c.Request().Context(), c.Param("property_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rentals)
}
