package tx

import "context"

// Manager ejecuta fn dentro de una transacción del store.
// Los repositorios usan el ctx recibido por fn para participar de la misma transacción.
// Si ctx ya trae una transacción activa, fn corre dentro de ella (sin anidar).
type Manager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
