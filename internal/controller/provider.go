package controller

import (
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type providerRoutesHandler struct {
	providerService service.Provider
	validate        *validator.Validate
}

func newProviderRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *providerRoutesHandler {
	h := &providerRoutesHandler{providerService: services.Provider, validate: v}
	outer.POST("/providers/new", h.PostProvider)

	return h
}

type postProviderInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,max=100"`
	Address string `json:"address" validate:"max=300"`
	City    string `json:"city" validate:"required,max=100"`
	Contact string `json:"contact" validate:"required,max=200"`
}

// /providers/new
func (h *providerRoutesHandler) PostProvider(c echo.Context) error {
	var input postProviderInput
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

	model := &entity.CreateProviderInput{
		Name: input.Name, Type: input.Type, Address: input.Address, City: input.City, Contact: input.Contact,
	}

	provider, err := h.providerService.CreateProvider(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, createResponse{Message: "Error adding provider: " + err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, createResponse{Success: true, Message: "Provider added successfully!", Id: provider.Id}); e != nil {
		return e
	}

	return nil
}
