package testutils

// SeededRoller is a deterministic dice.Roller for tests: a fixed-seed
// linear congruential sequence, so generated floors are reproducible
// across runs.
type SeededRoller struct {
	state uint64
}

// NewSeededRoller creates a roller from the given seed
func NewSeededRoller(seed uint64) *SeededRoller {
	return &SeededRoller{state: seed}
}

// Roll returns a deterministic value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 1 {
		return 1, nil
	}
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return int(r.state>>33)%size + 1, nil
}

// RollN returns times deterministic rolls of the given size
func (r *SeededRoller) RollN(times, size int) ([]int, error) {
	rolls := make([]int, times)
	for i := range rolls {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = roll
	}
	return rolls, nil
}
