package component

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/tokenforge/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypeNumber
	FieldTypeSelect
	FieldTypeCheckbox
)

// FormField represents a single form field
type FormField struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Options     []string // For select fields
	Placeholder string
	Required    bool
	Validation  func(string) error
	Error       string

	textInput   textinput.Model
	selectedIdx int
}

func (ff *FormField) editable() bool {
	return ff.Type == FieldTypeText || ff.Type == FieldTypeNumber
}

// Form is a vertical list of labelled inputs with tab navigation.
type Form struct {
	fields     []FormField
	focusIndex int
	width      int
	labelWidth int

	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
	markerStyle  lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error),

		markerStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
	}
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label string, required bool, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 32
	ti.Prompt = ""
	ti.Placeholder = placeholder
	if fieldType == FieldTypeNumber && placeholder == "" {
		ti.Placeholder = "0"
	}

	f.fields = append(f.fields, FormField{
		Name:        name,
		Label:       label,
		Type:        fieldType,
		Placeholder: placeholder,
		Required:    required,
		textInput:   ti,
	})

	if w := lipgloss.Width(label) + 2; w > f.labelWidth {
		f.labelWidth = w
	}

	if len(f.fields) == 1 {
		f.focus(0)
	}

	return f
}

func (f *Form) field(name string) *FormField {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// SetFieldValue sets the value of a field. For select fields the value must be one of the options.
func (f *Form) SetFieldValue(name, value string) *Form {
	field := f.field(name)
	if field == nil {
		return f
	}

	switch field.Type {
	case FieldTypeSelect:
		for i, opt := range field.Options {
			if opt == value {
				field.selectedIdx = i
				field.Value = value
				break
			}
		}
	case FieldTypeCheckbox:
		field.Value = strconv.FormatBool(value == "true")
	default:
		field.Value = value
		field.textInput.SetValue(value)
	}
	return f
}

// SetSelectOptions sets options for select fields and selects the first one
func (f *Form) SetSelectOptions(name string, options []string) *Form {
	field := f.field(name)
	if field == nil || field.Type != FieldTypeSelect {
		return f
	}
	field.Options = options
	field.selectedIdx = 0
	field.Value = ""
	if len(options) > 0 {
		field.Value = options[0]
	}
	return f
}

// SetFieldValidation sets a validation function for a field
func (f *Form) SetFieldValidation(name string, validation func(string) error) *Form {
	if field := f.field(name); field != nil {
		field.Validation = validation
	}
	return f
}

// SetFieldError attaches an error message to a field. Unknown names are ignored.
func (f *Form) SetFieldError(name, msg string) bool {
	field := f.field(name)
	if field == nil {
		return false
	}
	field.Error = msg
	return true
}

// ClearErrors removes all field errors.
func (f *Form) ClearErrors() {
	for i := range f.fields {
		f.fields[i].Error = ""
	}
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width - f.labelWidth - 4
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

// Focused returns the name of the focused field.
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusIndex].Name
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	field := &f.fields[f.focusIndex]

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "enter":
			f.nextField()
			return f, nil
		case "shift+tab":
			f.prevField()
			return f, nil
		case "up":
			if field.Type == FieldTypeSelect {
				f.stepSelect(-1)
			} else {
				f.prevField()
			}
			return f, nil
		case "down":
			if field.Type == FieldTypeSelect {
				f.stepSelect(1)
			} else {
				f.nextField()
			}
			return f, nil
		case "left", "right":
			if field.Type == FieldTypeSelect {
				step := 1
				if msg.String() == "left" {
					step = -1
				}
				f.stepSelect(step)
				return f, nil
			}
		case " ":
			if field.Type == FieldTypeCheckbox {
				f.toggleCheckbox()
				return f, nil
			}
		}
	}

	if !field.editable() {
		return f, nil
	}

	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)
	if v := field.textInput.Value(); v != field.Value {
		field.Value = v
		field.Error = ""
	}
	return f, cmd
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return ""
	}

	var content strings.Builder
	labelStyle := f.labelStyle.Width(f.labelWidth)

	for i, field := range f.fields {
		focused := i == f.focusIndex

		marker := "  "
		if focused {
			marker = f.markerStyle.Render("▸ ")
		}

		label := field.Label
		if field.Required {
			label += "*"
		}

		fieldStyle := f.inputStyle
		if focused {
			fieldStyle = f.focusedStyle
		}

		var value string
		switch field.Type {
		case FieldTypeSelect:
			value = "‹ " + field.Value + " ›"
		case FieldTypeCheckbox:
			value = "☐"
			if field.Value == "true" {
				value = "☑"
			}
		default:
			value = field.textInput.View()
		}

		content.WriteString(marker + labelStyle.Render(label) + fieldStyle.Render(value))
		content.WriteString("\n")

		if field.Error != "" {
			content.WriteString(strings.Repeat(" ", f.labelWidth+2))
			content.WriteString(f.errorStyle.Render("⚠ " + field.Error))
			content.WriteString("\n")
		}
	}

	return strings.TrimSuffix(content.String(), "\n")
}

func (f *Form) focus(i int) {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focusIndex].textInput.Blur()
	f.focusIndex = i
	if f.fields[i].editable() {
		f.fields[i].textInput.Focus()
	}
}

func (f *Form) nextField() {
	f.focus((f.focusIndex + 1) % len(f.fields))
}

func (f *Form) prevField() {
	f.focus((f.focusIndex - 1 + len(f.fields)) % len(f.fields))
}

func (f *Form) stepSelect(step int) {
	field := &f.fields[f.focusIndex]
	if field.Type != FieldTypeSelect || len(field.Options) == 0 {
		return
	}
	n := len(field.Options)
	field.selectedIdx = ((field.selectedIdx+step)%n + n) % n
	field.Value = field.Options[field.selectedIdx]
}

func (f *Form) toggleCheckbox() {
	field := &f.fields[f.focusIndex]
	field.Value = strconv.FormatBool(field.Value != "true")
}

// Validate checks required fields and custom validators, recording errors on the fields.
func (f *Form) Validate() bool {
	valid := true

	for i := range f.fields {
		field := &f.fields[i]
		field.Error = ""

		if field.Required && strings.TrimSpace(field.Value) == "" {
			field.Error = "This field is required"
			valid = false
			continue
		}

		if field.Validation != nil {
			if err := field.Validation(field.Value); err != nil {
				field.Error = err.Error()
				valid = false
			}
		}
	}

	return valid
}

// GetValues returns all form field values as a map
func (f *Form) GetValues() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Name] = field.Value
	}
	return values
}

// GetValue returns the trimmed value of a specific field
func (f *Form) GetValue(name string) string {
	if field := f.field(name); field != nil {
		return strings.TrimSpace(field.Value)
	}
	return ""
}

// GetFloat parses a finite number field. Blank values parse as zero.
func (f *Form) GetFloat(name string) (float64, error) {
	raw := strings.ReplaceAll(f.GetValue(name), "_", "")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	return v, nil
}

// GetInt parses an integer field. Blank values parse as zero.
func (f *Form) GetInt(name string) (int, error) {
	raw := f.GetValue(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return v, nil
}

// GetBool reports whether a checkbox field is ticked.
func (f *Form) GetBool(name string) bool {
	return f.GetValue(name) == "true"
}
