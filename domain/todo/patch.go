package todo

// Patch is a partial update: only fields explicitly present in the original
// request are set. Title and IsCompleted are not nullable; an explicit null
// for either is rejected by Validate.
type Patch struct {
	Title       Optional[string] `json:"title,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
	DueDate     Optional[Date]   `json:"dueDate,omitzero"`
	IsCompleted Optional[bool]   `json:"isCompleted,omitzero"`
}

// IsEmpty reports whether the patch names no fields at all.
func (p Patch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() &&
		!p.DueDate.IsSet() && !p.IsCompleted.IsSet()
}

// Apply merges the patch into a copy of t. Only fields present in the patch
// change; ID and CreatedAt are never touched. The patch must have passed
// Validate first.
func (p Patch) Apply(t Task) Task {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if p.Description.IsSet() {
		if v, ok := p.Description.Get(); ok {
			t.Description = &v
		} else {
			t.Description = nil
		}
	}
	if p.DueDate.IsSet() {
		if v, ok := p.DueDate.Get(); ok {
			t.DueDate = &v
		} else {
			t.DueDate = nil
		}
	}
	if v, ok := p.IsCompleted.Get(); ok {
		t.IsCompleted = v
	}
	return t
}

// Validate normalizes and checks every field present in the patch.
// Title and description values are trimmed in place.
func (p *Patch) Validate() error {
	if p.Title.IsSet() {
		if p.Title.IsNull() {
			return ErrTitleNull
		}
		raw, _ := p.Title.Get()
		title, err := NormalizeTitle(raw)
		if err != nil {
			return err
		}
		p.Title = Some(title)
	}
	if v, ok := p.Description.Get(); ok {
		desc, err := NormalizeDescription(v)
		if err != nil {
			return err
		}
		p.Description = Some(desc)
	}
	if p.IsCompleted.IsNull() {
		return ErrCompletedNull
	}
	return nil
}
