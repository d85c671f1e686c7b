package interviewhandler

import (
	"gorm.io/gorm"
	interviewrecordstore "interview-tracker-backend/lib/interview-record/store"
	interviewstore "interview-tracker-backend/lib/interview/store"
)

// TxFunc receives stores bound to one transaction.
type TxFunc func(interviewStore interviewstore.Provider, recordStore interviewrecordstore.Provider) error

// Transactor runs fn atomically, a returned error rolls everything back.
type Transactor func(fn TxFunc) error

func GormTransactor(DB *gorm.DB) Transactor {
	return func(fn TxFunc) error {
		return DB.Transaction(func(tx *gorm.DB) error {
			return fn(interviewstore.NewInstance(tx), interviewrecordstore.NewInstance(tx))
		})
	}
}
