package booking

import "github.com/padelplus/booking-service/pkg/txmanager"

// DBExecutor общий интерфейс для *sql.DB и *sql.Tx
// Репозиторий получает актуальный executor через txmanager.GetExecutor,
// поэтому один и тот же код работает и в транзакции, и вне её
type DBExecutor = txmanager.Executor
