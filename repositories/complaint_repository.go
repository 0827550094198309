package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/civicgo/complaint-portal/models"
)

// ComplaintRepository interface defines complaint database operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id int) (*models.Complaint, error)
	GetByEmail(ctx context.Context, email string) ([]models.Complaint, error)
	Search(ctx context.Context, query string) ([]models.Complaint, error)
	GetAll(ctx context.Context) ([]models.Complaint, error)
	UpdateStatus(ctx context.Context, id int, status models.Status) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	CountByStatus(ctx context.Context) (*models.StatusCounts, error)
}

// complaintRepository implements ComplaintRepository interface
type complaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *sql.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

const complaintColumns = `id, name, email, complaint, description, complete_address, status, date`

// scanComplaints reads all rows into a slice of complaints
func scanComplaints(rows *sql.Rows) ([]models.Complaint, error) {
	var complaints []models.Complaint
	for rows.Next() {
		var c models.Complaint
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Complaint,
			&c.Description,
			&c.CompleteAddress,
			&c.Status,
			&c.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

// Create inserts a new complaint with status Pending and the creation timestamp
func (r *complaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	query := `
		INSERT INTO complaints (name, email, complaint, description, complete_address, status, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}
	if complaint.Date == "" {
		complaint.Date = models.FormatDateTime(time.Now())
	}

	result, err := r.db.ExecContext(ctx, query,
		complaint.Name,
		complaint.Email,
		complaint.Complaint,
		complaint.Description,
		complaint.CompleteAddress,
		complaint.Status,
		complaint.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	// Get the inserted ID
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	complaint.ID = int(id)
	return nil
}

// GetByID retrieves a complaint by ID
func (r *complaintRepository) GetByID(ctx context.Context, id int) (*models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE id = ?
	`

	var c models.Complaint
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Complaint,
		&c.Description,
		&c.CompleteAddress,
		&c.Status,
		&c.Date,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("complaint with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return &c, nil
}

// GetByEmail retrieves all complaints submitted with the given email,
// matched case-insensitively. Returns an empty slice when none match.
func (r *complaintRepository) GetByEmail(ctx context.Context, email string) ([]models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE LOWER(email) = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints by email: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// Search retrieves complaints where the query appears (case-insensitively)
// in any searchable field. An empty query returns all complaints.
func (r *complaintRepository) Search(ctx context.Context, query string) ([]models.Complaint, error) {
	search := strings.ToLower(strings.TrimSpace(query))
	if search == "" {
		return r.GetAll(ctx)
	}

	stmt := `
		SELECT ` + complaintColumns + `
		FROM complaints
		WHERE LOWER(name) LIKE ?
		   OR LOWER(email) LIKE ?
		   OR LOWER(complaint) LIKE ?
		   OR LOWER(description) LIKE ?
		   OR LOWER(complete_address) LIKE ?
		ORDER BY id ASC
	`

	wildcard := "%" + search + "%"
	rows, err := r.db.QueryContext(ctx, stmt, wildcard, wildcard, wildcard, wildcard, wildcard)
	if err != nil {
		return nil, fmt.Errorf("failed to search complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// GetAll retrieves all complaints in insertion order
func (r *complaintRepository) GetAll(ctx context.Context) ([]models.Complaint, error) {
	query := `
		SELECT ` + complaintColumns + `
		FROM complaints
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	return scanComplaints(rows)
}

// UpdateStatus sets the status of a complaint. Returns the number of rows
// affected; 0 means no complaint with that ID exists.
func (r *complaintRepository) UpdateStatus(ctx context.Context, id int, status models.Status) (int64, error) {
	query := `UPDATE complaints SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update complaint status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Delete removes a complaint by ID. Returns the number of rows affected;
// 0 means no complaint with that ID exists.
func (r *complaintRepository) Delete(ctx context.Context, id int) (int64, error) {
	query := `DELETE FROM complaints WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete complaint: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// CountByStatus returns the aggregate complaint counts for the dashboard
func (r *complaintRepository) CountByStatus(ctx context.Context) (*models.StatusCounts, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM complaints
	`

	var counts models.StatusCounts
	err := r.db.QueryRowContext(ctx, query,
		models.StatusPending,
		models.StatusInProgress,
		models.StatusResolved,
	).Scan(&counts.Total, &counts.Pending, &counts.InProgress, &counts.Resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to count complaints: %w", err)
	}

	return &counts, nil
}
