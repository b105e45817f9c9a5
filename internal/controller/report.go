package controller

import (
	"errors"
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type reportRoutesHandler struct {
	reportService service.Report
	validate      *validator.Validate
}

func newReportRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *reportRoutesHandler {
	h := &reportRoutesHandler{reportService: services.Report, validate: v}

	outer.GET("/reports", h.GetCatalog)
	outer.GET("/reports/:name", h.GetReport)

	return h
}

// /reports
func (h *reportRoutesHandler) GetCatalog(c echo.Context) error {
	if e := c.JSON(http.StatusOK, h.reportService.Catalog()); e != nil {
		return e
	}

	return nil
}

type getReportInput struct {
	City string `query:"city" validate:"max=100"`
}

// /reports/:name
func (h *reportRoutesHandler) GetReport(c echo.Context) error {
	var input getReportInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	report, err := h.reportService.RunReport(c.Request().Context(), c.Param("name"), entity.ReportFilters{City: input.City})
	if err == nil {
		if e := c.JSON(http.StatusOK, report); e != nil {
			return e
		}

		return nil
	}

	switch {
	case errors.Is(err, service.ErrUnknownReport):
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no report with given name"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return nil
}
