package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samka/gestion-api/internal/domain"
	"github.com/samka/gestion-api/internal/domain/entity"
	"github.com/samka/gestion-api/internal/domain/repository"
)

var _ repository.LedgerEntryRepository = (*LedgerEntryRepo)(nil)

// Los FK opcionales se leen como '' cuando son NULL.
const ledgerColumns = `
	e.id, e.date, e.document_number, e.document_type, e.gross_amount, e.vat, e.description,
	e.status, e.detail,
	COALESCE(e.company_id::text, ''), COALESCE(e.cost_center_id::text, ''), COALESCE(e.classification_id::text, ''),
	e.created_at`

// LedgerEntryRepo registros financieros sobre PostgreSQL (usable con pool o tx).
type LedgerEntryRepo struct {
	q Querier
}

// NewLedgerEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerEntryRepository(q Querier) *LedgerEntryRepo {
	return &LedgerEntryRepo{q: q}
}

// Create persiste un registro.
func (r *LedgerEntryRepo) Create(ctx context.Context, e *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, date, document_number, document_type, gross_amount, vat, description,
			status, detail, company_id, cost_center_id, classification_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.DocumentNumber, e.DocumentType, e.GrossAmount, e.VAT, e.Description,
		e.Status, e.Detail, nullIfEmpty(e.CompanyID), nullIfEmpty(e.CostCenterID), nullIfEmpty(e.ClassificationID),
		e.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: catálogo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *LedgerEntryRepo) GetByID(ctx context.Context, id string) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	err := r.q.QueryRow(ctx, `SELECT `+ledgerColumns+` FROM ledger_entries e WHERE e.id = $1`, id).Scan(ledgerDest(&e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// Update reemplaza los datos del registro.
func (r *LedgerEntryRepo) Update(ctx context.Context, e *entity.LedgerEntry) error {
	query := `
		UPDATE ledger_entries SET date = $2, document_number = $3, document_type = $4, gross_amount = $5, vat = $6,
			description = $7, status = $8, detail = $9, company_id = $10, cost_center_id = $11, classification_id = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.DocumentNumber, e.DocumentType, e.GrossAmount, e.VAT,
		e.Description, e.Status, e.Detail, nullIfEmpty(e.CompanyID), nullIfEmpty(e.CostCenterID), nullIfEmpty(e.ClassificationID),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: catálogo inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update ledger entry: %w", err)
	}
	return nil
}

// Delete elimina un registro.
func (r *LedgerEntryRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}

// List página filtrada con los nombres de catálogos resueltos, más el total de filas.
func (r *LedgerEntryRepo) List(ctx context.Context, f repository.LedgerFilter) ([]entity.LedgerEntryView, int, error) {
	where, args := ledgerWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_entries e`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	query := `
		SELECT ` + ledgerColumns + `,
			COALESCE(c.name, ''), COALESCE(cc.name, ''), COALESCE(cl.name, '')
		FROM ledger_entries e
		LEFT JOIN companies       c  ON c.id  = e.company_id
		LEFT JOIN cost_centers    cc ON cc.id = e.cost_center_id
		LEFT JOIN classifications cl ON cl.id = e.classification_id` +
		where + ` ORDER BY ` + ledgerOrder(f.Order)
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var list []entity.LedgerEntryView
	for rows.Next() {
		var v entity.LedgerEntryView
		dest := append(ledgerDest(&v.LedgerEntry), &v.CompanyName, &v.CostCenterName, &v.ClassificationName)
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// DailyTotals suma por día del conjunto filtrado (sin paginar), en orden cronológico.
func (r *LedgerEntryRepo) DailyTotals(ctx context.Context, f repository.LedgerFilter) ([]repository.PeriodTotal, error) {
	where, args := ledgerWhere(f)
	query := `SELECT e.date, SUM(e.gross_amount) FROM ledger_entries e` + where + ` GROUP BY e.date ORDER BY e.date`
	return queryPeriodTotals(ctx, r.q, query, args...)
}

func ledgerDest(e *entity.LedgerEntry) []any {
	return []any{
		&e.ID, &e.Date, &e.DocumentNumber, &e.DocumentType, &e.GrossAmount, &e.VAT, &e.Description,
		&e.Status, &e.Detail, &e.CompanyID, &e.CostCenterID, &e.ClassificationID, &e.CreatedAt,
	}
}

// ledgerWhere arma el WHERE con placeholders numerados a partir de $1.
func ledgerWhere(f repository.LedgerFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.CompanyID != "" {
		add("e.company_id = $%d", f.CompanyID)
	}
	if f.CostCenterID != "" {
		add("e.cost_center_id = $%d", f.CostCenterID)
	}
	if f.ClassificationID != "" {
		add("e.classification_id = $%d", f.ClassificationID)
	}
	if f.MinAmount != nil {
		add("e.gross_amount >= $%d", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		add("e.gross_amount <= $%d", *f.MaxAmount)
	}
	if f.From != nil {
		add("e.date >= $%d", *f.From)
	}
	if f.To != nil {
		add("e.date <= $%d", *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func ledgerOrder(order string) string {
	switch order {
	case repository.LedgerOrderDateAsc:
		return "e.date ASC, e.created_at ASC"
	case repository.LedgerOrderAmountDesc:
		return "e.gross_amount DESC, e.date DESC"
	case repository.LedgerOrderAmountAsc:
		return "e.gross_amount ASC, e.date DESC"
	default:
		return "e.date DESC, e.created_at DESC"
	}
}

// queryPeriodTotals ejecuta una consulta (periodo, total) y la vuelca en PeriodTotal.
func queryPeriodTotals(ctx context.Context, q Querier, query string, args ...any) ([]repository.PeriodTotal, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("period totals: %w", err)
	}
	defer rows.Close()

	var out []repository.PeriodTotal
	for rows.Next() {
		var p repository.PeriodTotal
		if err := rows.Scan(&p.Period, &p.Total); err != nil {
			return nil, fmt.Errorf("scan period total: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
