package projects

// FieldConfig is the declarative presentation metadata for the project
// form: field name -> widget attribute -> value. It is built once at
// construction and served read-only; the frontend applies it to its own
// inputs instead of the backend mutating shared widget objects.
type FieldConfig map[string]map[string]string

// DefaultFieldConfig mirrors the attributes the editor's create/edit
// project dialog expects.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		"name": {
			"class":       "form-control",
			"id":          "createProjectNameInput",
			"maxlength":   "80",
			"placeholder": "Project name",
		},
		"description": {
			"class":       "form-control",
			"id":          "createProjectDescriptionInput",
			"placeholder": "What is this project about?",
		},
	}
}
