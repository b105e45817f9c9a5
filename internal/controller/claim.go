package controller

import (
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type claimRoutesHandler struct {
	claimService service.Claim
	validate     *validator.Validate
}

func newClaimRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *claimRoutesHandler {
	h := &claimRoutesHandler{claimService: services.Claim, validate: v}
	outer.POST("/claims/new", h.PostClaim)

	return h
}

type postClaimInput struct {
	FoodId     int    `json:"foodId" validate:"required"`
	ReceiverId int    `json:"receiverId" validate:"required"`
	Status     string `json:"status" validate:"max=50"`
}

// /claims/new
func (h *claimRoutesHandler) PostClaim(c echo.Context) error {
	var input postClaimInput
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

	model := &entity.CreateClaimInput{FoodId: input.FoodId, ReceiverId: input.ReceiverId, Status: input.Status}

	claim, err := h.claimService.CreateClaim(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, createResponse{Message: "Error adding claim: " + err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, createResponse{Success: true, Message: "Claim added successfully!", Id: claim.Id}); e != nil {
		return e
	}

	return nil
}
