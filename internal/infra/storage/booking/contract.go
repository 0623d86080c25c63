package booking

import (
	"github.com/premium-barber/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both with a
// bare *sql.DB and the metrics-wrapped DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
