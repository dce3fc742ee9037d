// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

const uploadTable = "upload_history"

type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
	GetByID(ctx context.Context, id int64) (*domain.Upload, error)
	List(ctx context.Context, skip, limit int) ([]domain.Upload, error)
	Delete(ctx context.Context, id int64) error
}

type uploadRepository struct {
	conn *postgres.Connection
}

func NewUploadRepository(conn *postgres.Connection) UploadRepository {
	return &uploadRepository{
		conn: conn,
	}
}

func (r *uploadRepository) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	query, args, err := squirrel.
		Insert(uploadTable).
		Columns("code", "filename", "sheet_count").
		Values(upload.Code, upload.Filename, upload.SheetCount).
		Suffix("RETURNING id, uploaded_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&upload.ID, &upload.UploadedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir histórico de upload: %w", err)
	}

	return upload, nil
}

func (r *uploadRepository) GetByID(ctx context.Context, id int64) (*domain.Upload, error) {
	query, args, err := squirrel.
		Select("id", "code", "filename", "sheet_count", "uploaded_at").
		From(uploadTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	upload := &domain.Upload{}
	row := r.conn.QueryRow(ctx, query, args...)
	err = row.Scan(&upload.ID, &upload.Code, &upload.Filename, &upload.SheetCount, &upload.UploadedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear histórico de upload: %w", err)
	}

	return upload, nil
}

func (r *uploadRepository) List(ctx context.Context, skip, limit int) ([]domain.Upload, error) {
	query, args, err := squirrel.
		Select("id", "code", "filename", "sheet_count", "uploaded_at").
		From(uploadTable).
		OrderBy("id DESC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	uploads := make([]domain.Upload, 0)
	for rows.Next() {
		upload := domain.Upload{}
		err := rows.Scan(&upload.ID, &upload.Code, &upload.Filename, &upload.SheetCount, &upload.UploadedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de upload: %w", err)
		}
		uploads = append(uploads, upload)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return uploads, nil
}

// Delete remove o upload; as abas, linhas e entidades derivadas caem em
// cascata pelas chaves estrangeiras.
func (r *uploadRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := squirrel.
		Delete(uploadTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover histórico de upload: %w", err)
	}

	return nil
}
