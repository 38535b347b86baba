package http

import (
	"net/http"
	"time"

	"rentora-backend/internal/usecase/rental"

	"github.com/labstack/echo/v4"
)

type RentalHandler struct{ uc *rental.Usecase }

func NewRentalHandler(uc *rental.Usecase) *RentalHandler { return &RentalHandler{uc: uc} }

type createRentalReq struct {
	ClientID        string   `json:"client_id" validate:"required,hex32"`
	PropertyID      string   `json:"property_id" validate:"required,hex32"`
	StartDate       string   `json:"start_date" validate:"required,dateonly"`
	EndDate         string   `json:"end_date" validate:"omitempty,dateonly"`
	MonthlyRent     *float64 `json:"monthly_rent" validate:"omitempty,dec2,gte=0"`
	SecurityDeposit *float64 `json:"security_deposit" validate:"omitempty,dec2,gte=0"`
	Status          string   `json:"status"`
}

type updateRentalReq struct {
	StartDate       string   `json:"start_date" validate:"omitempty,dateonly"`
	EndDate         string   `json:"end_date" validate:"omitempty,dateonly"`
	MonthlyRent     *float64 `json:"monthly_rent" validate:"omitempty,dec2,gte=0"`
	SecurityDeposit *float64 `json:"security_deposit" validate:"omitempty,dec2,gte=0"`
	AppendNotes     string   `json:"append_notes"`
}

type reasonReq struct {
	Reason string `json:"reason"`
}

type renewReq struct {
	EndDate string `json:"end_date" validate:"required,dateonly"`
	Remarks string `json:"remarks"`
}

func (h *RentalHandler) CreateRental(c echo.Context) error {
	var req createRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	in := rental.CreateRentalInput{
		ClientID:        req.ClientID,
		PropertyID:      req.PropertyID,
		StartDate:       start,
		EndDate:         parseDatePtr(req.EndDate),
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          req.Status,
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RentalHandler) ListRentals(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *RentalHandler) GetRental(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("rental_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) UpdateRental(c echo.Context) error {
	var req updateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	in := rental.UpdateRentalInput{
		StartDate:       parseDatePtr(req.StartDate),
		EndDate:         parseDatePtr(req.EndDate),
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		AppendNotes:     req.AppendNotes,
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("rental_id"), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) Activate(c echo.Context) error {
	dto, err := h.uc.Activate(c.Request().Context(), c.Param("rental_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) Terminate(c echo.Context) error {
	var req reasonReq
	_ = c.Bind(&req) // reason is optional; an empty body is fine
	dto, err := h.uc.Terminate(c.Request().Context(), c.Param("rental_id"), req.Reason)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) MarkExpired(c echo.Context) error {
	dto, err := h.uc.MarkExpired(c.Request().Context(), c.Param("rental_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) End(c echo.Context) error {
	var req reasonReq
	_ = c.Bind(&req)
	dto, err := h.uc.End(c.Request().Context(), c.Param("rental_id"), req.Reason)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) Renew(c echo.Context) error {
	var req renewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	end, _ := time.Parse("2006-01-02", req.EndDate)
	dto, err := h.uc.Renew(c.Request().Context(), c.Param("rental_id"), end, req.Remarks)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RentalHandler) DeleteRental(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("rental_id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseDatePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
