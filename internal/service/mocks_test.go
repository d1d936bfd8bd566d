package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"go-hubstock-ws/internal/ledger"
	"go-hubstock-ws/internal/model"
	"go-hubstock-ws/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository doubles shared by the service tests.

type mockOutletRepo struct {
	outlets map[string]model.Outlet
}

func newMockOutletRepo(outlets ...model.Outlet) *mockOutletRepo {
	m := &mockOutletRepo{outlets: make(map[string]model.Outlet)}
	for _, o := range outlets {
		m.outlets[o.Code] = o
	}
	return m
}

func (m *mockOutletRepo) Create(outlet *model.Outlet) error {
	m.outlets[outlet.Code] = *outlet
	return nil
}

func (m *mockOutletRepo) FindAll() ([]model.Outlet, error) {
	codes := make([]string, 0, len(m.outlets))
	for code := range m.outlets {
		codes = append(codes, code)
	}
	// Stable order, like the SQL implementation.
	sort.Strings(codes)
	outlets := make([]model.Outlet, 0, len(codes))
	for _, code := range codes {
		outlets = append(outlets, m.outlets[code])
	}
	return outlets, nil
}

func (m *mockOutletRepo) FindByCode(code string) (*model.Outlet, error) {
	outlet, ok := m.outlets[code]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &outlet, nil
}

func (m *mockOutletRepo) Count() (int64, error) {
	return int64(len(m.outlets)), nil
}

type mockProductRepo struct {
	products map[string]model.Product
}

func newMockProductRepo(products ...model.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[string]model.Product)}
	for _, p := range products {
		m.products[p.SKU] = p
	}
	return m
}

func (m *mockProductRepo) Create(product *model.Product) error {
	m.products[product.SKU] = *product
	return nil
}

func (m *mockProductRepo) FindAll() ([]model.Product, error) {
	skus := make([]string, 0, len(m.products))
	for sku := range m.products {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	products := make([]model.Product, 0, len(skus))
	for _, sku := range skus {
		products = append(products, m.products[sku])
	}
	return products, nil
}

func (m *mockProductRepo) FindBySKU(sku string) (*model.Product, error) {
	product, ok := m.products[sku]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &product, nil
}

func (m *mockProductRepo) Count() (int64, error) {
	return int64(len(m.products)), nil
}

type mockTransferRepo struct {
	records []model.TransferRecord
}

func (m *mockTransferRepo) Create(tx *gorm.DB, record *model.TransferRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockTransferRepo) FindAll() ([]model.TransferRecord, error) {
	out := make([]model.TransferRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

type mockSaleRepo struct {
	records []model.SaleRecord
	revenue int64
	sold24h int
	sold7d  int
}

func (m *mockSaleRepo) Create(tx *gorm.DB, record *model.SaleRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *mockSaleRepo) FindAll() ([]model.SaleRecord, error) {
	out := make([]model.SaleRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockSaleRepo) FindBetween(startDate, endDate time.Time, outletCode string) ([]model.SaleRecord, error) {
	var out []model.SaleRecord
	for _, record := range m.records {
		if record.CreatedAt.Before(startDate) || record.CreatedAt.After(endDate) {
			continue
		}
		if outletCode != "" && record.OutletCode != outletCode {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (m *mockSaleRepo) GetRevenue(startDate, endDate time.Time) (int64, error) {
	return m.revenue, nil
}

func (m *mockSaleRepo) GetSoldQty(startDate, endDate time.Time) (int, error) {
	if endDate.Sub(startDate) > 48*time.Hour {
		return m.sold7d, nil
	}
	return m.sold24h, nil
}

type mockRequestRepo struct {
	requests map[uuid.UUID]model.StockRequest
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{requests: make(map[uuid.UUID]model.StockRequest)}
}

func (m *mockRequestRepo) Create(request *model.StockRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	m.requests[request.ID] = *request
	return nil
}

func (m *mockRequestRepo) FindAll() ([]model.StockRequest, error) {
	out := make([]model.StockRequest, 0, len(m.requests))
	for _, request := range m.requests {
		out = append(out, request)
	}
	return out, nil
}

func (m *mockRequestRepo) FindByID(id uuid.UUID) (*model.StockRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (m *mockRequestRepo) UpdateStatus(id uuid.UUID, requestStatus model.RequestStatus, updatedBy string) error {
	request, ok := m.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	request.Status = requestStatus
	request.UpdatedBy = updatedBy
	m.requests[id] = request
	return nil
}

func (m *mockRequestRepo) CountPending() (int64, error) {
	var count int64
	for _, request := range m.requests {
		if request.Status == model.RequestPending {
			count++
		}
	}
	return count, nil
}

// captureSink applies moves to its backing ledger and records the
// built events without persisting anything.
type captureSink struct {
	led    *ledger.Ledger
	mu     sync.Mutex
	events []repository.StockEvent
}

func (c *captureSink) Record(moves []ledger.Move, build func(stock []model.StockEntry) repository.StockEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	applied, err := c.led.Apply(moves)
	if err != nil {
		return err
	}
	c.events = append(c.events, build(stockEntries(applied)))
	return nil
}

func (c *captureSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// nopBroadcaster drops every payload.
type nopBroadcaster struct {
	payloads int
}

func (b *nopBroadcaster) Publish(payload interface{}) {
	b.payloads++
}

// failingStore rejects every persist call.
type failingStore struct{}

func (failingStore) Persist(event repository.StockEvent) error {
	return errors.New("store unavailable")
}

// memoryStore keeps persisted events in order.
type memoryStore struct {
	mu     sync.Mutex
	events []repository.StockEvent
}

func (s *memoryStore) Persist(event repository.StockEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}
