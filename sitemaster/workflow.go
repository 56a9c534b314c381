package sitemaster

import (
	"strings"

	"github.com/sitemasterhq/sitemaster/internal/validation"
	"github.com/sitemasterhq/sitemaster/types"
)

// StepInput carries the fields for creating a workflow step.
type StepInput struct {
	Step     string
	Date     string
	Status   types.StepStatus
	Image    string
	SubTasks []types.SubTask
}

// AddStep appends a new step to the workflow.
func (s *Store) AddStep(in StepInput) (types.WorkflowStep, error) {
	title := validation.CleanText(in.Step)
	if title == "" {
		return types.WorkflowStep{}, errRequired("step")
	}
	status := in.Status
	if status == "" {
		status = types.StatusPending
	}
	if !status.Valid() {
		return types.WorkflowStep{}, &ValidationError{Field: "status", Reason: "must be pending, active or completed"}
	}
	date := validation.CleanText(in.Date)
	if date == "" {
		date = types.DateUnset
	}
	subTasks := make([]types.SubTask, len(in.SubTasks))
	copy(subTasks, in.SubTasks)

	var created types.WorkflowStep
	err := s.mutate(func(doc *types.Document) error {
		created = types.WorkflowStep{
			ID:       s.nextID(),
			Step:     title,
			Date:     date,
			Status:   status,
			Image:    in.Image,
			SubTasks: subTasks,
		}
		doc.Workflow = append(doc.Workflow, created)
		return nil
	})
	return created, err
}

// UpdateStep merges the patch into the step with the given id.
func (s *Store) UpdateStep(id int64, patch types.StepPatch) (types.WorkflowStep, error) {
	var updated types.WorkflowStep
	err := s.mutate(func(doc *types.Document) error {
		i := indexStep(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		w := &doc.Workflow[i]
		if patch.Step != nil {
			title := validation.CleanText(*patch.Step)
			if title == "" {
				return errRequired("step")
			}
			w.Step = title
		}
		if patch.Date != nil {
			date := validation.CleanText(*patch.Date)
			if date == "" {
				date = types.DateUnset
			}
			w.Date = date
		}
		if patch.Status != nil {
			if !patch.Status.Valid() {
				return &ValidationError{Field: "status", Reason: "must be pending, active or completed"}
			}
			w.Status = *patch.Status
		}
		if patch.Image != nil {
			w.Image = *patch.Image
		}
		if patch.SubTasks != nil {
			tasks := make([]types.SubTask, len(*patch.SubTasks))
			copy(tasks, *patch.SubTasks)
			w.SubTasks = tasks
		}
		updated = w.Clone()
		return nil
	})
	return updated, err
}

// RemoveStep deletes the step with the given id. A no-op if not present.
func (s *Store) RemoveStep(id int64) error {
	return s.mutate(func(doc *types.Document) error {
		out := doc.Workflow[:0]
		for _, w := range doc.Workflow {
			if w.ID != id {
				out = append(out, w)
			}
		}
		doc.Workflow = out
		return nil
	})
}

// DuplicateStep deep-copies an existing step under a new id, marks the
// title with a " (copy)" suffix and resets the display date to the "today"
// marker. Sub-task completion is reset: a copied step represents work still
// to be done.
func (s *Store) DuplicateStep(id int64) (types.WorkflowStep, error) {
	var created types.WorkflowStep
	err := s.mutate(func(doc *types.Document) error {
		i := indexStep(doc, id)
		if i < 0 {
			return ErrNotFound
		}
		created = doc.Workflow[i].Clone()
		created.ID = s.nextID()
		created.Step += " (copy)"
		created.Date = types.DateToday
		for j := range created.SubTasks {
			created.SubTasks[j].Completed = false
		}
		doc.Workflow = append(doc.Workflow, created)
		return nil
	})
	return created, err
}

// ToggleSubTask flips the completion of one checklist item on a step.
func (s *Store) ToggleSubTask(stepID int64, index int) (types.WorkflowStep, error) {
	var updated types.WorkflowStep
	err := s.mutate(func(doc *types.Document) error {
		i := indexStep(doc, stepID)
		if i < 0 {
			return ErrNotFound
		}
		w := &doc.Workflow[i]
		if index < 0 || index >= len(w.SubTasks) {
			return ErrNotFound
		}
		w.SubTasks[index].Completed = !w.SubTasks[index].Completed
		updated = w.Clone()
		return nil
	})
	return updated, err
}

// ListSteps returns workflow steps matching the title search term and, when
// status is non-empty, the exact status. Insertion order is preserved.
func (s *Store) ListSteps(search string, status types.StepStatus) []types.WorkflowStep {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]types.WorkflowStep, 0, len(s.doc.Workflow))
	for _, w := range s.doc.Workflow {
		if term != "" && !strings.Contains(strings.ToLower(w.Step), term) {
			continue
		}
		if status != "" && w.Status != status {
			continue
		}
		out = append(out, w.Clone())
	}
	return out
}

func indexStep(doc *types.Document, id int64) int {
	for i, w := range doc.Workflow {
		if w.ID == id {
			return i
		}
	}
	return -1
}
