// Package device exposes the reduced API surface the dispenser firmware
// talks to: one read of the pending prescription and one dispensed
// acknowledgment. Device-side failures (unknown tag, nothing prescribed) are
// reported by the firmware straight to POST /logs.
package device

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medibox/medibox/internal/domain/prescription"
)

// PrescriptionSource is the slice of prescription.Service the firmware needs.
type PrescriptionSource interface {
	LatestPending(ctx context.Context, tag string) (*prescription.Prescription, error)
	SetStatus(ctx context.Context, tag string, status prescription.Status) (*prescription.Prescription, error)
}

// PatientDirectory resolves tag -> patient name, satisfied by
// patient.Service.
type PatientDirectory interface {
	NameByTag(ctx context.Context, tag string) (string, error)
}

type Handler struct {
	prescriptions PrescriptionSource
	patients      PatientDirectory
}

func NewHandler(prescriptions PrescriptionSource, patients PatientDirectory) *Handler {
	return &Handler{prescriptions: prescriptions, patients: patients}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/device/:rfidTag", h.GetPrescription)
	api.PUT("/device/dispensed/:rfidTag", h.AckDispensed)
}

// deviceView is the flattened payload the firmware parses.
type deviceView struct {
	RFIDTag      string              `json:"rfidTag"`
	PatientName  string              `json:"patientName"`
	Paracetamol  int                 `json:"paracetamol"`
	Azithromycin int                 `json:"azithromycin"`
	Revital      int                 `json:"revital"`
	Frequency    string              `json:"frequency"`
	Duration     string              `json:"duration"`
	Status       prescription.Status `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func (h *Handler) GetPrescription(c echo.Context) error {
	ctx := c.Request().Context()
	tag := c.Param("rfidTag")

	p, err := h.prescriptions.LatestPending(ctx, tag)
	if err != nil {
		if errors.Is(err, prescription.ErrNoActive) {
			return echo.NewHTTPError(http.StatusNotFound, "No pending prescription found for this RFID")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	name, err := h.patients.NameByTag(ctx, tag)
	if err != nil || name == "" {
		name = "Unknown Patient"
	}

	return c.JSON(http.StatusOK, deviceView{
		RFIDTag:      p.RFIDTag,
		PatientName:  name,
		Paracetamol:  p.Paracetamol,
		Azithromycin: p.Azithromycin,
		Revital:      p.Revital,
		Frequency:    p.Frequency,
		Duration:     p.Duration,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	})
}

func (h *Handler) AckDispensed(c echo.Context) error {
	tag := c.Param("rfidTag")

	p, err := h.prescriptions.SetStatus(c.Request().Context(), tag, prescription.StatusDispensed)
	if err != nil {
		if errors.Is(err, prescription.ErrNoActive) {
			return echo.NewHTTPError(http.StatusNotFound, "No pending prescription found for this RFID to update")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":       "Prescription marked as dispensed",
		"rfidTag":       p.RFIDTag,
		"status":        p.Status,
		"lastDispensed": p.LastDispensed,
	})
}
