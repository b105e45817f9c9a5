package controller

import (
	"food-wastage-api/internal/entity"
	"food-wastage-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type foodListingRoutesHandler struct {
	foodListingService service.FoodListing
	validate           *validator.Validate
}

func newFoodListingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *foodListingRoutesHandler {
	h := &foodListingRoutesHandler{foodListingService: services.FoodListing, validate: v}
	outer.POST("/food-listings/new", h.PostFoodListing)

	return h
}

type postFoodListingInput struct {
	FoodName   string  `json:"foodName" validate:"required,max=200"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	ExpiryDate string  `json:"expiryDate" validate:"required,datetime=2006-01-02"`
	ProviderId int     `json:"providerId" validate:"required"`
	FoodType   string  `json:"foodType" validate:"required,max=100"`
	MealType   string  `json:"mealType" validate:"required,max=100"`
	Location   string  `json:"location" validate:"max=100"`
}

// /food-listings/new
func (h *foodListingRoutesHandler) PostFoodListing(c echo.Context) error {
	var input postFoodListingInput
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

	model := &entity.CreateFoodListingInput{
		FoodName: input.FoodName, Quantity: input.Quantity, ExpiryDate: input.ExpiryDate, ProviderId: input.ProviderId,
		FoodType: input.FoodType, MealType: input.MealType, Location: input.Location,
	}

	listing, err := h.foodListingService.CreateFoodListing(c.Request().Context(), model)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, createResponse{Message: "Error adding food listing: " + err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, createResponse{Success: true, Message: "Food listing added successfully!", Id: listing.Id}); e != nil {
		return e
	}

	return nil
}
