package models

// Phase tracks which leg of the trip the user is currently selecting.
type Phase string

const (
	PhaseOutbound Phase = "outbound"
	PhaseReturn   Phase = "return"
	PhaseComplete Phase = "complete"
)
