package controller

import (
	"food-wastage-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

func SetupRoutesHandlers(handler *echo.Echo, services *service.Services) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)
	newDatasetRoutesHandler(api, services)
	newReportRoutesHandler(api, services, validate)
	newProviderRoutesHandler(api, services, validate)
	newReceiverRoutesHandler(api, services, validate)
	newFoodListingRoutesHandler(api, services, validate)
	newClaimRoutesHandler(api, services, validate)
}
