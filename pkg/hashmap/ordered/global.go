package ordered

const (
	// InitialCapacity is the slot table size every new map starts with.
	// Growth always doubles, so capacity stays a power of two and home
	// positions can be masked instead of taken modulo.
	InitialCapacity = 1

	// the table doubles once size/capacity reaches loadFactorNum/loadFactorDen
	loadFactorNum = 3
	loadFactorDen = 4
)
