// Package messages is the shared catalog of user-facing strings returned by
// the API. Handlers and validators reference these constants instead of
// inlining copy, so the frontend and backend stay in sync on wording.
package messages

const (
	// ProjectNameMustBeUnique is returned when a project name is already
	// taken by another project of the same owner.
	ProjectNameMustBeUnique = "A project with this name already exists."

	// ProjectNameRequired is returned when a project name is empty after
	// normalization.
	ProjectNameRequired = "Project name is required."

	// ProjectNameInvalidSymbols is returned when a project name contains
	// characters that are not safe for use as an element identifier.
	ProjectNameInvalidSymbols = "Project name may only contain letters, digits, hyphens and underscores, and must not start with a digit or hyphen."

	// ProjectNotFound is returned when the requested project does not exist
	// or is not visible to the caller.
	ProjectNotFound = "Project not found."

	// CanvasNotFound is returned when the requested canvas does not exist
	// within the project.
	CanvasNotFound = "Canvas not found."

	// DraftNotFound is returned when no autosaved draft exists for the form.
	DraftNotFound = "No draft saved."

	// InvalidRequestBody is returned for malformed or empty request bodies.
	InvalidRequestBody = "Invalid request body."

	// TooManyRequests is returned by the rate limiter on the name-check
	// endpoint.
	TooManyRequests = "Too many requests, slow down."
)
