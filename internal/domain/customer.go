package domain

import "time"

// Customer é o perfil extraído da seção de informações do cliente.
// O registro de origem (RecordID) é a chave natural: existe no máximo
// um perfil por linha de origem.
type Customer struct {
	ID          int64     `json:"id"`
	RecordID    int64     `json:"data_record_id"`
	Name        string    `json:"name"`
	Gender      *string   `json:"gender"`
	Age         *int      `json:"age"`
	CreditScore *int      `json:"credit_score"`
	Email       *string   `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
