package controller

import (
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type receiverRoutesHandler struct {
	receiverService service.Receiver
	validate        *validator.Validate
}

func newReceiverRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *receiverRoutesHandler {
	h := &receiverRoutesHandler{receiverService: services.Receiver, validate: v}
	outer.POST("/receivers/new", h.PostReceiver)

	return h
}

type postReceiverInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Type    string `json:"type" validate:"required,max=100"`
	City    string `json:"city" validate:"required,max=100"`
	Contact string `json:"contact" validate:"required,max=200"`
}

// /receivers/new
func (h *receiverRoutesHandler) PostReceiver(c echo.Context) error {
	var input postReceiverInput
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

	model := &entity.CreateReceiverInput{Name: input.Name, Type: input.Type, City: input.City, Contact: input.Contact}

	receiver, err := h.receiverService.CreateReceiver(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, createResponse{Message: "Error adding receiver: " + err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, createResponse{Success: true, Message: "Receiver added successfully!", Id: receiver.Id}); e != nil {
		return e
	}

	return nil
}
