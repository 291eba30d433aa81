// Package field models a single storyboard form field that is either
// generated automatically or filled in by the user.
package field

// State is the value of one form field. When Auto is set, consumers should
// prefer a generated value over Custom and Selected.
type State struct {
	Auto     bool   `json:"auto" yaml:"auto"`
	Custom   string `json:"custom" yaml:"custom"`
	Selected string `json:"selected" yaml:"selected"`
}

// Patch is a partial update to a State. Widgets emit patches that carry
// exactly one non-nil field.
type Patch struct {
	Auto     *bool
	Custom   *string
	Selected *string
}

func SetAuto(v bool) Patch {
	return Patch{Auto: &v}
}

func SetCustom(v string) Patch {
	return Patch{Custom: &v}
}

func SetSelected(v string) Patch {
	return Patch{Selected: &v}
}

// Apply returns a copy of s with the non-nil fields of p applied.
func (s State) Apply(p Patch) State {
	if p.Auto != nil {
		s.Auto = *p.Auto
	}
	if p.Custom != nil {
		s.Custom = *p.Custom
	}
	if p.Selected != nil {
		s.Selected = *p.Selected
	}
	return s
}

// Value returns the user-supplied value: Custom when set, otherwise Selected.
func (s State) Value() string {
	if s.Custom != "" {
		return s.Custom
	}
	return s.Selected
}

func (p Patch) IsEmpty() bool {
	return p.Auto == nil && p.Custom == nil && p.Selected == nil
}
