package models

// ValidationError is one field-level rule violation. Errors are recomputed
// whenever the originating step's data changes, never patched in place.
type ValidationError struct {
	Step    int    `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
