package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Rules are evaluated in order:
  - fewer than 2 live neighbors: dead
  - more than 3 live neighbors: dead
  - alive with exactly 2 live neighbors: alive
  - exactly 3 live neighbors: alive
  - otherwise: dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case neighbors < 2:
		return false
	case neighbors > 3:
		return false
	case alive && neighbors == 2:
		return true
	case neighbors == 3:
		return true
	}
	return false
}
