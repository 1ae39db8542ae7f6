package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders        repo.OrderRepository
	products      repo.ProductRepository
	shifts        repo.ShiftRepository
	purchases     repo.PurchaseRepository
	subscriptions repo.SubscriptionRepository
	plans         repo.PlanRepository
	users         repo.UserRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) Products() repo.ProductRepository           { return r.products }
func (r *txReposGorm) Shifts() repo.ShiftRepository               { return r.shifts }
func (r *txReposGorm) Purchases() repo.PurchaseRepository         { return r.purchases }
func (r *txReposGorm) Subscriptions() repo.SubscriptionRepository { return r.subscriptions }
func (r *txReposGorm) Plans() repo.PlanRepository                 { return r.plans }
func (r *txReposGorm) Users() repo.UserRepository                 { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:        NewOrderGormRepository(tx),
			products:      NewProductGormRepository(tx),
			shifts:        NewShiftGormRepository(tx),
			purchases:     NewPurchaseGormRepository(tx),
			subscriptions: NewSubscriptionGormRepository(tx),
			plans:         NewPlanGormRepository(tx),
			users:         NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
