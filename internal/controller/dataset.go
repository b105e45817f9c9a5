package controller

import (
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/labstack/echo"
)

type datasetRoutesHandler struct {
	datasetService service.Dataset
}

func newDatasetRoutesHandler(outer *echo.Group, services *service.Services) *datasetRoutesHandler {
	h := &datasetRoutesHandler{services.Dataset}

	outer.GET("/status", h.GetStatus)
	outer.POST("/dataset/reload", h.Reload)

	return h
}

// /status
func (h *datasetRoutesHandler) GetStatus(c echo.Context) error {
	status, err := h.datasetService.Status(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, status); e != nil {
		return e
	}

	return nil
}

// /dataset/reload
func (h *datasetRoutesHandler) Reload(c echo.Context) error {
	status, err := h.datasetService.Reload(c.Request().Context())
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, status); e != nil {
		return e
	}

	return nil
}
