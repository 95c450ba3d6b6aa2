package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"garage/internal/auth"
	apperrors "garage/internal/errors"
	"garage/internal/handler"
	"garage/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	clientHandler *handler.ClientHandler,
	vehicleHandler *handler.VehicleHandler,
	workOrderHandler *handler.WorkOrderHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	// Secured routes: echo-jwt verifies the bearer token via the credential
	// engine, then CurrentUser resolves it to a stored principal.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}), auth.CurrentUser(userRepo))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/logout", authHandler.Logout)
	secured.POST("/auth/verify", authHandler.Verify)

	admin := auth.RequireAdmin()
	staff := auth.RequireStaff()

	// Client routes
	secured.POST("/clients", clientHandler.Create, staff)
	secured.GET("/clients", clientHandler.List, staff)
	secured.GET("/clients/:id", clientHandler.Get, staff)
	secured.PUT("/clients/:id", clientHandler.Update, staff)
	secured.DELETE("/clients/:id", clientHandler.Delete, admin)
	secured.GET("/clients/:id/vehicles", clientHandler.ListVehicles, staff)
	secured.POST("/clients/:id/vehicles", clientHandler.CreateVehicle, staff)
	secured.DELETE("/clients/:id/vehicles/:vehicleID", clientHandler.DeleteVehicle, admin)

	// Vehicle routes
	secured.POST("/vehicles", vehicleHandler.Create, staff)
	secured.GET("/vehicles", vehicleHandler.List, staff)
	secured.GET("/vehicles/:id", vehicleHandler.Get, staff)
	secured.PUT("/vehicles/:id", vehicleHandler.Update, staff)
	secured.DELETE("/vehicles/:id", vehicleHandler.Delete, admin)

	// Work order routes
	secured.POST("/work-orders", workOrderHandler.Create, staff)
	secured.GET("/work-orders", workOrderHandler.List, staff)
	secured.GET("/work-orders/:id", workOrderHandler.Get, staff)
	secured.PUT("/work-orders/:id", workOrderHandler.Update, staff)
	secured.DELETE("/work-orders/:id", workOrderHandler.Delete, admin)

	// User management; lookup by id stays open to any authenticated user.
	secured.POST("/user", userHandler.Create, admin)
	secured.GET("/user", userHandler.List, admin)
	secured.GET("/user/:id", userHandler.Get, staff)
	secured.PUT("/user/:id", userHandler.Update, admin)
	secured.DELETE("/user/:id", userHandler.Delete, admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
