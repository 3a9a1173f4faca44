package prescription

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medibox/medibox/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/prescriptions", h.ListPrescriptions)
	api.POST("/prescriptions", h.CreatePrescription)
	api.GET("/prescriptions/:rfidTag", h.GetPrescription)
	api.POST("/prescriptions/:rfidTag/dispense", h.DispensePrescription)
	api.PUT("/prescriptions/:rfidTag/status", h.SetStatus)
}

type createResponse struct {
	Prescription *Prescription `json:"prescription"`
	Alerts       []string      `json:"alerts"`
}

func (h *Handler) CreatePrescription(c echo.Context) error {
	var p Prescription
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	alerts, err := h.svc.Create(c.Request().Context(), &p)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, vErr)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, createResponse{Prescription: &p, Alerts: alerts})
}

func (h *Handler) GetPrescription(c echo.Context) error {
	p, err := h.svc.LatestPending(c.Request().Context(), c.Param("rfidTag"))
	if err != nil {
		if errors.Is(err, ErrNoActive) {
			return echo.NewHTTPError(http.StatusNotFound, "No active prescription found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPrescriptions(c echo.Context) error {
	params := pagination.FromContext(c)
	status := Status(c.QueryParam("status"))

	prescriptions, total, err := h.svc.List(c.Request().Context(), status, params)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(prescriptions, total, params.Limit, params.Offset))
}

func (h *Handler) DispensePrescription(c echo.Context) error {
	p, err := h.svc.Dispense(c.Request().Context(), c.Param("rfidTag"))
	if err != nil {
		if errors.Is(err, ErrNoActive) {
			return echo.NewHTTPError(http.StatusNotFound, "No active prescription found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

type setStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.SetStatus(c.Request().Context(), c.Param("rfidTag"), req.Status)
	if err != nil {
		if errors.Is(err, ErrNoActive) {
			return echo.NewHTTPError(http.StatusNotFound, "No active prescription found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}
