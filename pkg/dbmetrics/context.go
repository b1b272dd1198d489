package dbmetrics

import "context"

type txContextKey struct{}

// WithTx кладет активную транзакцию в контекст
// Репозитории автоматически используют её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFromContext достает транзакцию из контекста (nil, если её нет)
func TxFromContext(ctx context.Context) TxExecutor {
	tx, _ := ctx.Value(txContextKey{}).(TxExecutor)
	return tx
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	return TxFromContext(ctx) != nil
}

// GetExecutor возвращает executor для выполнения запроса:
// транзакцию из контекста, если она есть, иначе fallback (обычно *sql.DB)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
