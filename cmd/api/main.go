package main

import (
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは任意（なければ環境変数をそのまま使う）
	_ = godotenv.Load()

	cfg := config.Load()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.Supplier{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	//Repository（GORM実装）生成
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	supplierUC := usecase.NewSupplierUsecase(supplierRepo, txManager)
	productUC := usecase.NewProductUsecase(productRepo, supplierRepo, txManager)

	//Handler生成
	supplierH := handler.NewSupplierHandler(supplierUC)
	productH := handler.NewProductHandler(productUC)

	//Server起動
	if err := server.Start(":"+cfg.Port, supplierH, productH); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
