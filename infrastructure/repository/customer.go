package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/mymoney-api/infrastructure/database/postgres"
	"github.com/vfg2006/mymoney-api/internal/domain"
)

const customerTable = "customer"

type CustomerRepository interface {
	// Upsert cria ou atualiza o perfil usando a linha de origem como chave
	// natural. O booleano indica se um novo perfil foi criado.
	Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, bool, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) Upsert(ctx context.Context, customer *domain.Customer) (*domain.Customer, bool, error) {
	query, args, err := squirrel.
		Insert(customerTable).
		Columns("data_record_id", "name", "gender", "age", "credit_score", "email").
		Values(
			customer.RecordID,
			customer.Name,
			customer.Gender,
			customer.Age,
			customer.CreditScore,
			customer.Email,
		).
		Suffix(`
			ON CONFLICT (data_record_id) DO UPDATE SET
				name = EXCLUDED.name,
				gender = EXCLUDED.gender,
				age = EXCLUDED.age,
				credit_score = EXCLUDED.credit_score,
				email = EXCLUDED.email,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("erro ao construir query de upsert: %w", err)
	}

	created := false
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt, &created); err != nil {
		return nil, false, fmt.Errorf("erro ao executar upsert do perfil: %w", err)
	}

	return customer, created, nil
}
