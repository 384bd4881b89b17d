package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateRecord = errors.New("Record already exists")
var ErrInsufficientFunds = errors.New("Insufficient funds")

// ErrNoEligiblePool is a normal business outcome, not a failure: the request is
// rejected or left pending depending on the approval mode.
var ErrNoEligiblePool = errors.New("No eligible pool")

// ErrTransactionConflict is returned after the automatic retry of a
// serializable unit of work also hit a concurrent write conflict.
var ErrTransactionConflict = errors.New("Transaction conflict")
