package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/inventory", h.GetInventory)
	api.POST("/inventory/servos", h.AddSlot)
	api.PUT("/inventory/servos/:index", h.UpdateSlot)
	api.DELETE("/inventory/servos/:index", h.RemoveSlot)
}

func (h *Handler) GetInventory(c echo.Context) error {
	inv, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

type addSlotRequest struct {
	Medicine string `json:"medicine"`
	Stock    int    `json:"stock"`
	Max      int    `json:"max"`
}

func (h *Handler) AddSlot(c echo.Context) error {
	req := addSlotRequest{Max: DefaultSlotCapacity}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, err := h.svc.AddSlot(c.Request().Context(), req.Medicine, req.Stock, req.Max)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "inventory not found")
		case errors.Is(err, ErrMaxSlots):
			return echo.NewHTTPError(http.StatusBadRequest, "max servos is "+strconv.Itoa(MaxSlots))
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) UpdateSlot(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid servo index")
	}
	var patch SlotPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, err := h.svc.UpdateSlot(c.Request().Context(), index, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSlotNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "servo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) RemoveSlot(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid servo index")
	}
	inv, err := h.svc.RemoveSlot(c.Request().Context(), index)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrSlotNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "servo not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}
