package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/cache"
	"app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Product, error) {
	args := m.Called(ctx, ownerID)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, ownerID int64, productID int64) (model.Product, error) {
	args := m.Called(ctx, ownerID, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, ownerID int64, productID int64) error {
	args := m.Called(ctx, ownerID, productID)
	return args.Error(0)
}

func (m *MockProductRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) SKUExists(ctx context.Context, ownerID int64, sku string, excludeID int64) (bool, error) {
	args := m.Called(ctx, ownerID, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DecreaseStockIfEnough(ctx context.Context, ownerID int64, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, ownerID, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) IncreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error {
	args := m.Called(ctx, ownerID, productID, qty)
	return args.Error(0)
}

func (m *MockProductRepository) DecreaseStock(ctx context.Context, ownerID int64, productID int64, qty int64) error {
	args := m.Called(ctx, ownerID, productID, qty)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Order, error) {
	args := m.Called(ctx, ownerID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, ownerID int64, orderID int64) (model.Order, error) {
	args := m.Called(ctx, ownerID, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o model.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, ownerID int64, orderID int64) error {
	args := m.Called(ctx, ownerID, orderID)
	return args.Error(0)
}

// =====================
// Mock: ShiftRepository
// =====================

type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindActive(ctx context.Context, ownerID int64) (model.Shift, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(model.Shift)
	return s, args.Error(1)
}

func (m *MockShiftRepository) FindActiveForUpdate(ctx context.Context, ownerID int64) (model.Shift, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(model.Shift)
	return s, args.Error(1)
}

func (m *MockShiftRepository) Create(ctx context.Context, s model.Shift) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShiftRepository) Close(ctx context.Context, shiftID int64, endTime time.Time) error {
	args := m.Called(ctx, shiftID, endTime)
	return args.Error(0)
}

func (m *MockShiftRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Shift, error) {
	args := m.Called(ctx, ownerID)
	ss, _ := args.Get(0).([]model.Shift)
	return ss, args.Error(1)
}

func (m *MockShiftRepository) AccrueActive(ctx context.Context, ownerID int64, amount float64) error {
	args := m.Called(ctx, ownerID, amount)
	return args.Error(0)
}

// =====================
// Mock: SubscriptionRepository
// =====================

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) FindLatest(ctx context.Context, ownerID int64) (model.Subscription, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(model.Subscription)
	return s, args.Error(1)
}

func (m *MockSubscriptionRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Subscription, error) {
	args := m.Called(ctx, ownerID)
	ss, _ := args.Get(0).([]model.Subscription)
	return ss, args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, s model.Subscription) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ExpireLive(ctx context.Context, ownerID int64) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

// =====================
// Mock: PlanRepository
// =====================

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) ListEnabled(ctx context.Context) ([]model.Plan, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Plan)
	return ps, args.Error(1)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, planID int64) (model.Plan, error) {
	args := m.Called(ctx, planID)
	p, _ := args.Get(0).(model.Plan)
	return p, args.Error(1)
}

func (m *MockPlanRepository) FindEnabledByID(ctx context.Context, planID int64) (model.Plan, error) {
	args := m.Called(ctx, planID)
	p, _ := args.Get(0).(model.Plan)
	return p, args.Error(1)
}

func (m *MockPlanRepository) FindEnabledByName(ctx context.Context, name string) (model.Plan, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Plan)
	return p, args.Error(1)
}

func (m *MockPlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlanRepository) Create(ctx context.Context, p model.Plan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) ListByTenant(ctx context.Context, ownerID int64) ([]model.User, error) {
	args := m.Called(ctx, ownerID)
	us, _ := args.Get(0).([]model.User)
	return us, args.Error(1)
}

func (m *MockUserRepository) CountSubUsers(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: PurchaseRepository
// =====================

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Purchase, error) {
	args := m.Called(ctx, ownerID)
	ps, _ := args.Get(0).([]model.Purchase)
	return ps, args.Error(1)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, ownerID int64, purchaseID int64) (model.Purchase, error) {
	args := m.Called(ctx, ownerID, purchaseID)
	p, _ := args.Get(0).(model.Purchase)
	return p, args.Error(1)
}

func (m *MockPurchaseRepository) Create(ctx context.Context, p model.Purchase) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPurchaseRepository) CreateItems(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error {
	args := m.Called(ctx, purchaseID, items)
	return args.Error(0)
}

func (m *MockPurchaseRepository) ListItems(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error) {
	args := m.Called(ctx, purchaseID)
	is, _ := args.Get(0).([]model.PurchaseItem)
	return is, args.Error(1)
}

func (m *MockPurchaseRepository) ListItemsByOwner(ctx context.Context, ownerID int64) ([]model.PurchaseItem, error) {
	args := m.Called(ctx, ownerID)
	is, _ := args.Get(0).([]model.PurchaseItem)
	return is, args.Error(1)
}

func (m *MockPurchaseRepository) DeleteItems(ctx context.Context, purchaseID int64) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, ownerID int64, purchaseID int64) error {
	args := m.Called(ctx, ownerID, purchaseID)
	return args.Error(0)
}

// =====================
// Mock: CategoryRepository
// =====================

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Category, error) {
	args := m.Called(ctx, ownerID)
	cs, _ := args.Get(0).([]model.Category)
	return cs, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, ownerID int64, categoryID int64) (model.Category, error) {
	args := m.Called(ctx, ownerID, categoryID)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c model.Category) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c model.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, ownerID int64, categoryID int64) error {
	args := m.Called(ctx, ownerID, categoryID)
	return args.Error(0)
}

func (m *MockCategoryRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: CustomerRepository
// =====================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Customer, error) {
	args := m.Called(ctx, ownerID)
	cs, _ := args.Get(0).([]model.Customer)
	return cs, args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, ownerID int64, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, ownerID, customerID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c model.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, ownerID int64, customerID int64) error {
	args := m.Called(ctx, ownerID, customerID)
	return args.Error(0)
}

func (m *MockCustomerRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: SupplierRepository
// =====================

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Supplier, error) {
	args := m.Called(ctx, ownerID)
	ss, _ := args.Get(0).([]model.Supplier)
	return ss, args.Error(1)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, ownerID int64, supplierID int64) (model.Supplier, error) {
	args := m.Called(ctx, ownerID, supplierID)
	s, _ := args.Get(0).(model.Supplier)
	return s, args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, s model.Supplier) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) Update(ctx context.Context, s model.Supplier) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, ownerID int64, supplierID int64) error {
	args := m.Called(ctx, ownerID, supplierID)
	return args.Error(0)
}

func (m *MockSupplierRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// =====================
// Mock: EmployeeRepository
// =====================

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Employee, error) {
	args := m.Called(ctx, ownerID)
	es, _ := args.Get(0).([]model.Employee)
	return es, args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, ownerID int64, employeeID int64) (model.Employee, error) {
	args := m.Called(ctx, ownerID, employeeID)
	e, _ := args.Get(0).(model.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, e model.Employee) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e model.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, ownerID int64, employeeID int64) error {
	args := m.Called(ctx, ownerID, employeeID)
	return args.Error(0)
}

func (m *MockEmployeeRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) EmpCodeExists(ctx context.Context, ownerID int64, empCode string, excludeID int64) (bool, error) {
	args := m.Called(ctx, ownerID, empCode, excludeID)
	return args.Bool(0), args.Error(1)
}

// =====================
// Mock: PermissionRepository
// =====================

type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) ListBySubUser(ctx context.Context, ownerID int64, subUserID int64) ([]model.Permission, error) {
	args := m.Called(ctx, ownerID, subUserID)
	ps, _ := args.Get(0).([]model.Permission)
	return ps, args.Error(1)
}

func (m *MockPermissionRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Permission, error) {
	args := m.Called(ctx, ownerID)
	ps, _ := args.Get(0).([]model.Permission)
	return ps, args.Error(1)
}

func (m *MockPermissionRepository) Replace(ctx context.Context, ownerID int64, subUserID int64, perms []model.Permission) error {
	args := m.Called(ctx, ownerID, subUserID, perms)
	return args.Error(0)
}

func (m *MockPermissionRepository) Find(ctx context.Context, ownerID int64, subUserID int64, module string) (model.Permission, error) {
	args := m.Called(ctx, ownerID, subUserID, module)
	p, _ := args.Get(0).(model.Permission)
	return p, args.Error(1)
}

func (m *MockPermissionRepository) Update(ctx context.Context, p model.Permission) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPermissionRepository) Delete(ctx context.Context, ownerID int64, permissionID int64) error {
	args := m.Called(ctx, ownerID, permissionID)
	return args.Error(0)
}

// =====================
// Mock: BarcodeRepository
// =====================

type MockBarcodeRepository struct {
	mock.Mock
}

func (m *MockBarcodeRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Barcode, error) {
	args := m.Called(ctx, ownerID)
	bs, _ := args.Get(0).([]model.Barcode)
	return bs, args.Error(1)
}

func (m *MockBarcodeRepository) Create(ctx context.Context, b model.Barcode) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBarcodeRepository) CreateBulk(ctx context.Context, barcodes []model.Barcode) error {
	args := m.Called(ctx, barcodes)
	return args.Error(0)
}

func (m *MockBarcodeRepository) Delete(ctx context.Context, ownerID int64, barcodeID int64) error {
	args := m.Called(ctx, ownerID, barcodeID)
	return args.Error(0)
}

// =====================
// TxManager: fnへmockのTxReposを渡すだけ。commit/rollbackはしない
// =====================

type MockTxRepos struct {
	OrdersRepo    *MockOrderRepository
	ProductsRepo  *MockProductRepository
	ShiftsRepo    *MockShiftRepository
	PurchasesRepo *MockPurchaseRepository
	SubsRepo      *MockSubscriptionRepository
	PlansRepo     *MockPlanRepository
	UsersRepo     *MockUserRepository
}

func newMockTxRepos() *MockTxRepos {
	return &MockTxRepos{
		OrdersRepo:    new(MockOrderRepository),
		ProductsRepo:  new(MockProductRepository),
		ShiftsRepo:    new(MockShiftRepository),
		PurchasesRepo: new(MockPurchaseRepository),
		SubsRepo:      new(MockSubscriptionRepository),
		PlansRepo:     new(MockPlanRepository),
		UsersRepo:     new(MockUserRepository),
	}
}

func (m *MockTxRepos) Orders() repository.OrderRepository               { return m.OrdersRepo }
func (m *MockTxRepos) Products() repository.ProductRepository           { return m.ProductsRepo }
func (m *MockTxRepos) Shifts() repository.ShiftRepository               { return m.ShiftsRepo }
func (m *MockTxRepos) Purchases() repository.PurchaseRepository         { return m.PurchasesRepo }
func (m *MockTxRepos) Subscriptions() repository.SubscriptionRepository { return m.SubsRepo }
func (m *MockTxRepos) Plans() repository.PlanRepository                 { return m.PlansRepo }
func (m *MockTxRepos) Users() repository.UserRepository                 { return m.UsersRepo }

type MockTxManager struct {
	Repos *MockTxRepos
	// fnがエラーで抜けた回数（= rollbackされた回数）
	RolledBack int
}

func newMockTxManager() *MockTxManager {
	return &MockTxManager{Repos: newMockTxRepos()}
}

func (m *MockTxManager) WithinTx(ctx context.Context, fn func(r repository.TxRepos) error) error {
	err := fn(m.Repos)
	if err != nil {
		m.RolledBack++
	}
	return err
}

// cache.Storeのインメモリ版。TTLは見ない。
type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}
