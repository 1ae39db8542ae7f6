package main

import (
	"context"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/cache"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/seeder"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Plan{},
		&model.Subscription{},
		&model.Product{},
		&model.Category{},
		&model.Customer{},
		&model.Supplier{},
		&model.Employee{},
		&model.Purchase{},
		&model.PurchaseItem{},
		&model.Order{},
		&model.Shift{},
		&model.Permission{},
		&model.Barcode{},
	); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(gormDB)
	purchaseRepo := infraRepo.NewPurchaseGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	shiftRepo := infraRepo.NewShiftGormRepository(gormDB)
	planRepo := infraRepo.NewPlanGormRepository(gormDB)
	subRepo := infraRepo.NewSubscriptionGormRepository(gormDB)
	permRepo := infraRepo.NewPermissionGormRepository(gormDB)
	barcodeRepo := infraRepo.NewBarcodeGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	if err := seeder.SeedPlans(context.Background(), planRepo); err != nil {
		log.Fatal("seed plans", zap.Error(err))
	}

	store := cache.NewStore(cfg.RedisAddr)

	//Usecase生成
	subUC := usecase.NewSubscriptionUsecase(subRepo, planRepo, txManager, store)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, subUC, txManager)
	productUC := usecase.NewProductUsecase(productRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	supplierUC := usecase.NewSupplierUsecase(supplierRepo)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo)
	purchaseUC := usecase.NewPurchaseUsecase(purchaseRepo, txManager)
	orderUC := usecase.NewOrderUsecase(orderRepo, txManager)
	shiftUC := usecase.NewShiftUsecase(shiftRepo, txManager)
	permUC := usecase.NewPermissionUsecase(permRepo, userRepo)
	barcodeUC := usecase.NewBarcodeUsecase(barcodeRepo, productRepo)
	syncUC := usecase.NewSyncUsecase(userRepo, productRepo, categoryRepo, customerRepo, supplierRepo, employeeRepo, orderUC, purchaseRepo, shiftRepo, permRepo, barcodeRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Product:      handler.NewProductHandler(productUC),
		Category:     handler.NewCategoryHandler(categoryUC),
		Customer:     handler.NewCustomerHandler(customerUC),
		Supplier:     handler.NewSupplierHandler(supplierUC),
		Employee:     handler.NewEmployeeHandler(employeeUC),
		Purchase:     handler.NewPurchaseHandler(purchaseUC),
		Order:        handler.NewOrderHandler(orderUC),
		Shift:        handler.NewShiftHandler(shiftUC),
		Subscription: handler.NewSubscriptionHandler(subUC),
		Permission:   handler.NewPermissionHandler(permUC),
		Barcode:      handler.NewBarcodeHandler(barcodeUC),
		Sync:         handler.NewSyncHandler(syncUC),
		Health:       handler.NewHealthHandler(gormDB),
	}
	guards := server.Guards{
		Subscriptions: subUC,
		Permissions:   permUC,
		Plans:         planRepo,
	}

	e := server.New(cfg, log, handlers, guards)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
