package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage. Kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type orderRepository struct {
	storage *Storage
}

type itemRepository struct {
	storage *Storage
}

type stockRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Items() repository.ItemRepository {
	return &itemRepository{storage: s}
}

func (s *Storage) Stocks() repository.StockRepository {
	return &stockRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            price NUMERIC
        )`,
		`CREATE TABLE IF NOT EXISTS sales_order (
            order_no TEXT PRIMARY KEY,
            cust_id TEXT NOT NULL,
            grand_total NUMERIC NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS sales_order_details (
            id BIGSERIAL PRIMARY KEY,
            sales_order TEXT NOT NULL REFERENCES sales_order(order_no),
            item_id BIGINT NOT NULL REFERENCES items(id),
            item_name TEXT NOT NULL,
            item_qty NUMERIC NOT NULL,
            item_price NUMERIC NOT NULL,
            row_total NUMERIC NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS stocks (
            id BIGSERIAL PRIMARY KEY,
            item_id BIGINT NOT NULL REFERENCES items(id),
            qty_in NUMERIC NOT NULL DEFAULT 0,
            qty_out NUMERIC NOT NULL DEFAULT 0,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_details_order ON sales_order_details(sales_order)`,
		`CREATE INDEX IF NOT EXISTS idx_stocks_item ON stocks(item_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `order_no, cust_id, grand_total, updated_at`
const lineColumns = `id, sales_order, item_id, item_name, item_qty, item_price, row_total, updated_at`

func (r *orderRepository) GetByNumber(ctx context.Context, orderNo string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM sales_order WHERE order_no=$1`
	var order model.Order
	err := r.storage.pool.QueryRow(ctx, query, orderNo).Scan(&order.OrderNo, &order.CustID, &order.GrandTotal, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	const linesQuery = `SELECT ` + lineColumns + ` FROM sales_order_details WHERE sales_order=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, linesQuery, orderNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Lines = make([]model.OrderLine, 0)
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderNo, &l.ItemID, &l.ItemName, &l.Qty, &l.Price, &l.Total, &l.UpdatedAt); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM sales_order ORDER BY order_no`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderNo, &o.CustID, &o.GrandTotal, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Lines = make([]model.OrderLine, 0)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderNos := make([]string, 0, len(orders))
	index := make(map[string]int, len(orders))
	for i, o := range orders {
		orderNos = append(orderNos, o.OrderNo)
		index[o.OrderNo] = i
	}

	const linesQuery = `SELECT ` + lineColumns + ` FROM sales_order_details WHERE sales_order = ANY($1) ORDER BY id`
	lineRows, err := r.storage.pool.Query(ctx, linesQuery, orderNos)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l model.OrderLine
		if err := lineRows.Scan(&l.ID, &l.OrderNo, &l.ItemID, &l.ItemName, &l.Qty, &l.Price, &l.Total, &l.UpdatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[l.OrderNo]; ok {
			orders[i].Lines = append(orders[i].Lines, l)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Place(ctx context.Context, orderNo, custID string, items []model.OrderItem) (*model.Order, error) {
	var placed *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sales_order WHERE order_no=$1)`, orderNo).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domainErrors.ErrOrderExists
		}

		now := time.Now()
		order := &model.Order{
			OrderNo:   orderNo,
			CustID:    custID,
			UpdatedAt: now,
			Lines:     make([]model.OrderLine, 0, len(items)),
		}

		for _, it := range items {
			var item model.Item
			err := tx.QueryRow(ctx, `SELECT id, name, price FROM items WHERE id=$1`, it.ItemID).Scan(&item.ID, &item.Name, &item.Price)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ItemNotFoundError{ItemID: it.ItemID}
				}
				return err
			}

			level, err := stockLevel(ctx, tx, it.ItemID)
			if err != nil {
				return err
			}
			stock := level.Available()
			if stock < it.Qty || stock <= 0 {
				return domainErrors.InsufficientStockError{ItemID: it.ItemID, Stock: stock, Requested: it.Qty}
			}

			price := item.UnitPrice()
			total := math.Max(0, price*it.Qty)
			order.GrandTotal += total
			order.Lines = append(order.Lines, model.OrderLine{
				OrderNo:   orderNo,
				ItemID:    item.ID,
				ItemName:  item.Name,
				Qty:       it.Qty,
				Price:     price,
				Total:     total,
				UpdatedAt: now,
			})
		}

		const insertOrder = `INSERT INTO sales_order (order_no, cust_id, grand_total, updated_at) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, insertOrder, orderNo, custID, order.GrandTotal, now); err != nil {
			return err
		}

		const insertLine = `INSERT INTO sales_order_details (sales_order, item_id, item_name, item_qty, item_price, row_total, updated_at)
                            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		const insertMovement = `INSERT INTO stocks (item_id, qty_in, qty_out, updated_at) VALUES ($1, 0, $2, $3)`
		for i := range order.Lines {
			line := &order.Lines[i]
			err := tx.QueryRow(ctx, insertLine, line.OrderNo, line.ItemID, line.ItemName, line.Qty, line.Price, line.Total, line.UpdatedAt).Scan(&line.ID)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, insertMovement, line.ItemID, line.Qty, line.UpdatedAt); err != nil {
				return err
			}
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// --- ItemRepository implementation ---

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	const query = `SELECT id, name, price FROM items WHERE id=$1`
	var item model.Item
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ItemNotFoundError{ItemID: id}
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	const query = `SELECT id, name, price FROM items ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Item, 0)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// --- StockRepository implementation ---

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// stockLevel aggregates the ledger for one item. Ran against the caller's
// transaction during order placement so the check reads the same snapshot it
// writes to; the read takes no row locks, so two concurrent orders may both
// pass the check on the last unit of stock.
func stockLevel(ctx context.Context, q queryRower, itemID int64) (*model.StockLevel, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(qty_in), 0), COALESCE(SUM(qty_out), 0) FROM stocks WHERE item_id=$1`
	var entries int64
	level := model.StockLevel{ItemID: itemID}
	if err := q.QueryRow(ctx, query, itemID).Scan(&entries, &level.QtyIn, &level.QtyOut); err != nil {
		return nil, err
	}
	if entries == 0 {
		return nil, domainErrors.NoStockRecordError{ItemID: itemID}
	}
	return &level, nil
}

func (r *stockRepository) Level(ctx context.Context, itemID int64) (*model.StockLevel, error) {
	return stockLevel(ctx, r.storage.pool, itemID)
}

func (r *stockRepository) Receive(ctx context.Context, itemID int64, qty float64) (*model.StockMovement, error) {
	movement := &model.StockMovement{ItemID: itemID, QtyIn: qty}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM items WHERE id=$1)`, itemID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ItemNotFoundError{ItemID: itemID}
		}

		const insert = `INSERT INTO stocks (item_id, qty_in, qty_out, updated_at) VALUES ($1, $2, 0, $3) RETURNING id`
		movement.UpdatedAt = time.Now()
		return tx.QueryRow(ctx, insert, itemID, qty, movement.UpdatedAt).Scan(&movement.ID)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

func (r *stockRepository) LowLevels(ctx context.Context, threshold float64, limit int) ([]model.StockLevel, error) {
	const query = `SELECT item_id, COALESCE(SUM(qty_in), 0) AS qty_in, COALESCE(SUM(qty_out), 0) AS qty_out
                   FROM stocks
                   GROUP BY item_id
                   HAVING COALESCE(SUM(qty_in), 0) - COALESCE(SUM(qty_out), 0) <= $1
                   ORDER BY item_id
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []model.StockLevel
	for rows.Next() {
		var l model.StockLevel
		if err := rows.Scan(&l.ItemID, &l.QtyIn, &l.QtyOut); err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return levels, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
