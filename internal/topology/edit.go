package topology

import "fmt"

// EditInstruction says what an edit record does to its feature.
type EditInstruction int

const (
	EditInsert EditInstruction = iota + 1 // Add the feature to the map
	EditDelete                            // Remove the feature from the map
)

func (i EditInstruction) String() string {
	switch i {
	case EditInsert:
		return "Insert"
	case EditDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// inverse returns the instruction that undoes i.
func (i EditInstruction) inverse() EditInstruction {
	if i == EditInsert {
		return EditDelete
	}
	return EditInsert
}

// EditRecord is one step of an edit.
type EditRecord struct {
	Instruction EditInstruction
	Feature     Feature
}

// Edit is an ordered list of feature insertions and deletions applied to a
// map as one unit.
type Edit struct {
	Records []EditRecord
}

// Insert appends an insertion.
func (e *Edit) Insert(f Feature) *Edit {
	e.Records = append(e.Records, EditRecord{Instruction: EditInsert, Feature: f})
	return e
}

// Delete appends a deletion.
func (e *Edit) Delete(f Feature) *Edit {
	e.Records = append(e.Records, EditRecord{Instruction: EditDelete, Feature: f})
	return e
}

// ApplyEdit rolls an edit forward, then cleans and rebuilds the topology.
// Records already applied stay applied if a later record fails.
func (m *Map) ApplyEdit(e *Edit, opts BuildOptions) (BuildResult, error) {
	for i, rec := range e.Records {
		if err := m.apply(rec.Instruction, rec.Feature); err != nil {
			return BuildResult{}, fmt.Errorf("edit record %d: %w", i, err)
		}
	}
	return m.Build(opts)
}

// RollbackEdit undoes an edit that was applied, running its records in
// reverse with each instruction inverted, then cleans and rebuilds the
// topology.
func (m *Map) RollbackEdit(e *Edit, opts BuildOptions) (BuildResult, error) {
	for i := len(e.Records) - 1; i >= 0; i-- {
		rec := e.Records[i]
		if err := m.apply(rec.Instruction.inverse(), rec.Feature); err != nil {
			return BuildResult{}, fmt.Errorf("rollback record %d: %w", i, err)
		}
	}
	return m.Build(opts)
}

func (m *Map) apply(in EditInstruction, f Feature) error {
	switch in {
	case EditInsert:
		return m.Insert(f)
	case EditDelete:
		return m.Delete(f)
	default:
		return fmt.Errorf("unknown edit instruction %d", in)
	}
}
