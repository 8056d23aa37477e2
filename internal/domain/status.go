package domain

type CaseState string

const (
	StateNew        CaseState = "new"
	StateDispatched CaseState = "dispatched"
	StateProcessed  CaseState = "processed"
)
