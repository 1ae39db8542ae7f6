package server

import (
	"app/internal/config"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// ルート構成:
//   /healthz                認証なし
//   /api/v1/auth/*          認証なし（register/login）
//   /api/v1/subscriptions/* JWTのみ（Lockedでも契約更新はできる）
//   それ以外の/api/v1/*      JWT + 契約ゲート。staffはモジュール権限も見る
func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers, g Guards) {
	h.Health.RegisterRoutes(e)

	api := e.Group("/api/v1")

	h.Auth.RegisterPublicRoutes(api.Group("/auth"))

	jwt := middleware.AuthJWT(cfg)
	gate := middleware.SubscriptionGuard(g.Subscriptions, g.Plans)
	ownerOnly := middleware.OwnerRoleGuard()
	perm := func(module string) echo.MiddlewareFunc {
		return middleware.PermissionGuard(g.Permissions, module)
	}

	h.Subscription.RegisterRoutes(api.Group("/subscriptions", jwt))

	h.Product.RegisterRoutes(api.Group("/products", jwt, gate, perm("products")))
	h.Category.RegisterRoutes(api.Group("/categories", jwt, gate, perm("categories")))
	h.Customer.RegisterRoutes(api.Group("/customers", jwt, gate, perm("customers")))
	h.Supplier.RegisterRoutes(api.Group("/suppliers", jwt, gate, perm("suppliers")))
	h.Employee.RegisterRoutes(api.Group("/employees", jwt, gate, perm("employees")))
	h.Purchase.RegisterRoutes(api.Group("/purchases", jwt, gate, perm("purchases")))
	h.Order.RegisterRoutes(api.Group("/orders", jwt, gate, perm("orders")))
	h.Shift.RegisterRoutes(api.Group("/shifts", jwt, gate, perm("shifts")))
	h.Barcode.RegisterRoutes(api.Group("/barcodes", jwt, gate, perm("barcodes")))

	// オーナー専用
	h.Auth.RegisterUserRoutes(api.Group("/users", jwt, gate, ownerOnly))
	h.Permission.RegisterRoutes(api.Group("/permissions", jwt, gate, ownerOnly))
	h.Sync.RegisterRoutes(api.Group("/sync", jwt, gate, ownerOnly))
}
