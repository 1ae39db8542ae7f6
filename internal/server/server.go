package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlers はルーティングに必要なハンドラ一式
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Category     *handler.CategoryHandler
	Customer     *handler.CustomerHandler
	Supplier     *handler.SupplierHandler
	Employee     *handler.EmployeeHandler
	Purchase     *handler.PurchaseHandler
	Order        *handler.OrderHandler
	Shift        *handler.ShiftHandler
	Subscription *handler.SubscriptionHandler
	Permission   *handler.PermissionHandler
	Barcode      *handler.BarcodeHandler
	Sync         *handler.SyncHandler
	Health       *handler.HealthHandler
}

// Guards はルートに掛けるミドルウェアの材料
type Guards struct {
	Subscriptions *usecase.SubscriptionUsecase
	Permissions   *usecase.PermissionUsecase
	Plans         repository.PlanRepository
}

func New(cfg config.Config, log *zap.Logger, h Handlers, g Guards) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	registerRoutes(e, cfg, h, g)
	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
