// Package memory implementa en memoria los puertos de órdenes de materia prima y de stock.
// Reproduce la semántica relevante de PostgreSQL: bloqueo de fila por orden
// (SELECT ... FOR UPDATE), escrituras invisibles hasta el commit y descuento atómico
// con piso en cero. Es soporte de pruebas: lo usan los tests de casos de uso y de handlers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	appinv "github.com/jhoicas/tekstil-api/internal/application/inventory"
	appproc "github.com/jhoicas/tekstil-api/internal/application/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain"
	"github.com/jhoicas/tekstil-api/internal/domain/entity"
	"github.com/jhoicas/tekstil-api/internal/domain/inventory"
	"github.com/jhoicas/tekstil-api/internal/domain/procurement"
	"github.com/jhoicas/tekstil-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Operaciones en las que se puede inyectar un fallo con FailOn.
const (
	OpGetForUpdate   = "orders.GetForUpdate"
	OpUpdateStatus   = "orders.UpdateStatus"
	OpDecrementStock = "stock.DecrementFloor"
	OpIncrementStock = "stock.Increment"
	OpCreateMovement = "movements.Create"
	OpCommit         = "commit"
)

var (
	_ appproc.TxRunner                      = (*Store)(nil)
	_ appinv.TxRunner                       = (*Store)(nil)
	_ repository.RawMaterialOrderRepository = (*OrderRepo)(nil)
	_ repository.RawMaterialRepository      = (*MaterialRepo)(nil)
	_ repository.StockRepository            = (*StockRepo)(nil)
	_ repository.StockMovementRepository    = (*MovementRepo)(nil)
)

// Store estado compartido: materias, órdenes, stock y movimientos.
type Store struct {
	mu             sync.Mutex
	materials      map[int64]*entity.RawMaterial
	orders         map[int64]*entity.RawMaterialOrder
	stock          map[int64]*entity.MaterialStock
	movements      []*entity.StockMovement
	rowLocks       map[int64]chan struct{}
	failures       map[string]error
	nextOrderID    int64
	nextMovementID int64
}

// NewStore store vacío.
func NewStore() *Store {
	return &Store{
		materials: make(map[int64]*entity.RawMaterial),
		orders:    make(map[int64]*entity.RawMaterialOrder),
		stock:     make(map[int64]*entity.MaterialStock),
		rowLocks:  make(map[int64]chan struct{}),
		failures:  make(map[string]error),
	}
}

// ── Datos iniciales y lectura directa ─────────────────────────────────────────

// AddMaterial registra una materia prima activa.
func (s *Store) AddMaterial(id int64, name, unit string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials[id] = &entity.RawMaterial{ID: id, Name: name, Unit: unit, Active: true}
}

// SetStock fija la existencia y el mínimo de una materia.
func (s *Store) SetStock(materialID int64, current, min decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[materialID] = &entity.MaterialStock{MaterialID: materialID, CurrentQuantity: current, MinQuantity: min}
}

// AddOrder inserta una orden con el estado dado y devuelve su id.
func (s *Store) AddOrder(materialID int64, qty decimal.Decimal, status procurement.OrderStatus) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOrderID++
	s.orders[s.nextOrderID] = &entity.RawMaterialOrder{
		ID:         s.nextOrderID,
		MaterialID: materialID,
		Quantity:   qty,
		OrderDate:  time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
	return s.nextOrderID
}

// FailOn hace que la operación op devuelva err (envuelto como fallo de transacción).
// err nil quita el fallo.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// OrderStatus estado confirmado de una orden.
func (s *Store) OrderStatus(id int64) (procurement.OrderStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return "", false
	}
	return o.Status, true
}

// CurrentStock existencia confirmada de una materia.
func (s *Store) CurrentStock(materialID int64) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.stock[materialID]
	if !ok {
		return decimal.Zero, false
	}
	return st.CurrentQuantity, true
}

// Movements copia de los movimientos confirmados.
func (s *Store) Movements() []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.StockMovement, 0, len(s.movements))
	for _, m := range s.movements {
		out = append(out, *m)
	}
	return out
}

// Orders repositorio de órdenes fuera de transacción.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Materials repositorio de materias primas.
func (s *Store) Materials() *MaterialRepo { return &MaterialRepo{s: s} }

// Stock repositorio de existencias fuera de transacción.
func (s *Store) Stock() *StockRepo { return &StockRepo{s: s} }

// MovementLog repositorio de movimientos fuera de transacción.
func (s *Store) MovementLog() *MovementRepo { return &MovementRepo{s: s} }

func (s *Store) failure(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failures[op]; ok {
		return &domain.TransactionError{Op: op, Err: err}
	}
	return nil
}

// ── Transacción ───────────────────────────────────────────────────────────────

// RunProcurement ejecuta fn con repositorios cuyo efecto solo se aplica al commit.
// Los bloqueos de fila se liberan después del commit o del rollback.
func (s *Store) RunProcurement(ctx context.Context, fn func(
	orders repository.RawMaterialOrderRepository,
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
) error) error {
	tx := &memTx{s: s, statuses: make(map[int64]procurement.OrderStatus)}
	defer tx.release()

	if err := fn(&txOrderRepo{OrderRepo: OrderRepo{s: s}, tx: tx}, &txStockRepo{StockRepo: StockRepo{s: s}, tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err
	}
	return tx.commit(ctx)
}

// Run transacción de inventario (reposición).
func (s *Store) Run(ctx context.Context, fn func(
	stock repository.StockRepository,
	movements repository.StockMovementRepository,
) error) error {
	tx := &memTx{s: s, statuses: make(map[int64]procurement.OrderStatus)}
	defer tx.release()

	if err := fn(&txStockRepo{StockRepo: StockRepo{s: s}, tx: tx}, &txMovementRepo{tx: tx}); err != nil {
		return err
	}
	return tx.commit(ctx)
}

// stockDelta cambio pendiente de existencia: salida con piso en cero o entrada.
type stockDelta struct {
	materialID int64
	qty        decimal.Decimal
	inflow     bool
}

func (d stockDelta) apply(current decimal.Decimal) decimal.Decimal {
	if d.inflow {
		return current.Add(d.qty)
	}
	return inventory.ApplyOutflow(current, d.qty)
}

type memTx struct {
	s         *Store
	held      []int64
	statuses  map[int64]procurement.OrderStatus
	deltas    []stockDelta
	movements []*entity.StockMovement
}

func (tx *memTx) lockRow(ctx context.Context, id int64) error {
	for _, h := range tx.held {
		if h == id {
			return nil
		}
	}
	tx.s.mu.Lock()
	ch, ok := tx.s.rowLocks[id]
	if !ok {
		ch = make(chan struct{}, 1)
		tx.s.rowLocks[id] = ch
	}
	tx.s.mu.Unlock()

	select {
	case ch <- struct{}{}:
		tx.held = append(tx.held, id)
		return nil
	case <-ctx.Done():
		return &domain.TransactionError{
			Op:        "lock",
			Err:       fmt.Errorf("%w: orden %d: %v", domain.ErrLockTimeout, id, ctx.Err()),
			Retryable: true,
		}
	}
}

func (tx *memTx) release() {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	for _, id := range tx.held {
		<-tx.s.rowLocks[id]
	}
	tx.held = nil
}

func (tx *memTx) commit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &domain.TransactionError{Op: "commit", Err: fmt.Errorf("%w: %v", domain.ErrLockTimeout, err), Retryable: true}
	}
	if err := tx.s.failure(OpCommit); err != nil {
		return err
	}
	s := tx.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, st := range tx.statuses {
		if o, ok := s.orders[id]; ok {
			o.Status = st
		}
	}
	for _, d := range tx.deltas {
		st, ok := s.stock[d.materialID]
		if !ok {
			if !d.inflow {
				continue
			}
			st = &entity.MaterialStock{MaterialID: d.materialID}
			s.stock[d.materialID] = st
		}
		st.CurrentQuantity = d.apply(st.CurrentQuantity)
	}
	for _, m := range tx.movements {
		s.nextMovementID++
		m.ID = s.nextMovementID
		s.movements = append(s.movements, m)
	}
	return nil
}

type txOrderRepo struct {
	OrderRepo
	tx *memTx
}

func (r *txOrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.RawMaterialOrder, error) {
	if err := r.s.failure(OpGetForUpdate); err != nil {
		return nil, err
	}
	if err := r.tx.lockRow(ctx, id); err != nil {
		return nil, err
	}
	o, err := r.OrderRepo.GetByID(ctx, id)
	if err != nil || o == nil {
		return o, err
	}
	if st, ok := r.tx.statuses[id]; ok {
		o.Status = st
	}
	return o, nil
}

func (r *txOrderRepo) UpdateStatus(_ context.Context, id int64, status procurement.OrderStatus) (bool, error) {
	if err := r.s.failure(OpUpdateStatus); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	_, ok := r.s.orders[id]
	r.s.mu.Unlock()
	if !ok {
		return false, nil
	}
	r.tx.statuses[id] = status
	return true, nil
}

type txStockRepo struct {
	StockRepo
	tx *memTx
}

func (r *txStockRepo) DecrementFloor(_ context.Context, materialID int64, qty decimal.Decimal) (int64, error) {
	if err := r.s.failure(OpDecrementStock); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	_, ok := r.s.stock[materialID]
	r.s.mu.Unlock()
	if !ok {
		return 0, nil
	}
	r.tx.deltas = append(r.tx.deltas, stockDelta{materialID: materialID, qty: qty})
	return 1, nil
}

func (r *txStockRepo) Increment(_ context.Context, materialID int64, qty decimal.Decimal) error {
	if err := r.s.failure(OpIncrementStock); err != nil {
		return err
	}
	r.tx.deltas = append(r.tx.deltas, stockDelta{materialID: materialID, qty: qty, inflow: true})
	return nil
}

// Get ve la existencia confirmada más los cambios pendientes de esta transacción.
func (r *txStockRepo) Get(ctx context.Context, materialID int64) (*entity.MaterialStock, error) {
	st, err := r.StockRepo.Get(ctx, materialID)
	if err != nil {
		return nil, err
	}
	for _, d := range r.tx.deltas {
		if d.materialID != materialID {
			continue
		}
		if st == nil {
			if !d.inflow {
				continue
			}
			st = &entity.MaterialStock{MaterialID: materialID}
		}
		st.CurrentQuantity = d.apply(st.CurrentQuantity)
	}
	return st, nil
}

type txMovementRepo struct {
	tx *memTx
}

func (r *txMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if err := r.tx.s.failure(OpCreateMovement); err != nil {
		return err
	}
	cp := *m
	r.tx.movements = append(r.tx.movements, &cp)
	return nil
}

func (r *txMovementRepo) ListByMaterial(ctx context.Context, materialID int64, limit int) ([]*entity.StockMovement, error) {
	return (&MovementRepo{s: r.tx.s}).ListByMaterial(ctx, materialID, limit)
}

// ── Repositorios fuera de transacción ─────────────────────────────────────────

// OrderRepo órdenes sin transacción (administración).
type OrderRepo struct{ s *Store }

// GetForUpdate fuera de transacción no bloquea; equivale a GetByID.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*entity.RawMaterialOrder, error) {
	return r.GetByID(ctx, id)
}

func (r *OrderRepo) GetByID(_ context.Context, id int64) (*entity.RawMaterialOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return r.withMaterial(o), nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id int64, status procurement.OrderStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return false, nil
	}
	o.Status = status
	return true, nil
}

func (r *OrderRepo) Create(_ context.Context, order *entity.RawMaterialOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[order.MaterialID]; !ok {
		return domain.ErrNotFound
	}
	r.s.nextOrderID++
	order.ID = r.s.nextOrderID
	cp := *order
	r.s.orders[order.ID] = &cp
	return nil
}

func (r *OrderRepo) Update(_ context.Context, order *entity.RawMaterialOrder) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.orders[order.ID]
	if !ok {
		return false, nil
	}
	if _, ok := r.s.materials[order.MaterialID]; !ok {
		return false, domain.ErrNotFound
	}
	cp := *order
	cp.Status = stored.Status
	r.s.orders[order.ID] = &cp
	return true, nil
}

func (r *OrderRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.orders[id]; !ok {
		return false, nil
	}
	delete(r.s.orders, id)
	return true, nil
}

func (r *OrderRepo) List(_ context.Context, limit int) ([]*entity.RawMaterialOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.RawMaterialOrder, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, r.withMaterial(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// withMaterial copia la orden con nombre y unidad; requiere s.mu tomado.
func (r *OrderRepo) withMaterial(o *entity.RawMaterialOrder) *entity.RawMaterialOrder {
	cp := *o
	if m, ok := r.s.materials[o.MaterialID]; ok {
		cp.MaterialName = m.Name
		cp.Unit = m.Unit
	}
	return &cp
}

// MaterialRepo catálogo de materias.
type MaterialRepo struct{ s *Store }

func (r *MaterialRepo) ListActive(_ context.Context) ([]*entity.RawMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.RawMaterial, 0, len(r.s.materials))
	for _, m := range r.s.materials {
		if m.Active {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MaterialRepo) GetByID(_ context.Context, id int64) (*entity.RawMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

// StockRepo existencias sin transacción.
type StockRepo struct{ s *Store }

func (r *StockRepo) DecrementFloor(_ context.Context, materialID int64, qty decimal.Decimal) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stock[materialID]
	if !ok {
		return 0, nil
	}
	st.CurrentQuantity = inventory.ApplyOutflow(st.CurrentQuantity, qty)
	return 1, nil
}

func (r *StockRepo) Increment(_ context.Context, materialID int64, qty decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stock[materialID]
	if !ok {
		r.s.stock[materialID] = &entity.MaterialStock{MaterialID: materialID, CurrentQuantity: qty}
		return nil
	}
	st.CurrentQuantity = st.CurrentQuantity.Add(qty)
	return nil
}

func (r *StockRepo) Get(_ context.Context, materialID int64) (*entity.MaterialStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stock[materialID]
	if !ok {
		return nil, nil
	}
	return r.withMaterial(st), nil
}

func (r *StockRepo) List(_ context.Context) ([]*entity.MaterialStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.MaterialStock, 0, len(r.s.materials))
	for id, m := range r.s.materials {
		if !m.Active {
			continue
		}
		st, ok := r.s.stock[id]
		if !ok {
			st = &entity.MaterialStock{MaterialID: id}
		}
		out = append(out, r.withMaterial(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MaterialName < out[j].MaterialName })
	return out, nil
}

func (r *StockRepo) CountCritical(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for id, st := range r.s.stock {
		if m, ok := r.s.materials[id]; ok && m.Active && inventory.CountsAsCritical(st.CurrentQuantity, st.MinQuantity) {
			n++
		}
	}
	return n, nil
}

func (r *StockRepo) withMaterial(st *entity.MaterialStock) *entity.MaterialStock {
	cp := *st
	if m, ok := r.s.materials[st.MaterialID]; ok {
		cp.MaterialName = m.Name
		cp.Unit = m.Unit
	}
	return &cp
}

// MovementRepo libro de movimientos sin transacción.
type MovementRepo struct{ s *Store }

func (r *MovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextMovementID++
	m.ID = r.s.nextMovementID
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *MovementRepo) ListByMaterial(_ context.Context, materialID int64, limit int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StockMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		m := r.s.movements[i]
		if m.MaterialID != materialID {
			continue
		}
		cp := *m
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
