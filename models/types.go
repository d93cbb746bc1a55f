package models

// Sentinel returned by the classification endpoints when no type matches.
const TypeUndetermined = "type undetermined"

// Request types

type CreateTypeRequest struct {
	Name string `json:"name"`
}

type CreatePropertyRequest struct {
	Name string `json:"name"`
}

type AddPossibleValueRequest struct {
	Value string `json:"value"`
}

type AddTypePropertyRequest struct {
	PropertyName string `json:"property_name"`
}

type AddPropertyValuesRequest struct {
	Values []string `json:"values"`
}

// property name -> chosen value
type ClassifyRequest struct {
	Properties map[string]string `json:"properties"`
}

// Response types

type ClassifyResponse struct {
	Type        string   `json:"type"`
	Explanation []string `json:"explanation"`
}

type ClassifyAIResponse struct {
	Type          string             `json:"type"`
	Explanation   []string           `json:"explanation"`
	Probabilities map[string]float64 `json:"probabilities"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type Type struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Property struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PossibleValue struct {
	ID           int64  `json:"id"`
	PropertyName string `json:"property_name"`
	Value        string `json:"value"`
}

type TypeProperty struct {
	ID           int64  `json:"id"`
	TypeName     string `json:"type_name"`
	PropertyName string `json:"property_name"`
}

// PropertyValue is the subset of a property's values that satisfy a specific
// type. At most one record exists per (type_name, property_name) pair; later
// additions append into the existing record.
type PropertyValue struct {
	ID           int64    `json:"id"`
	TypeName     string   `json:"type_name"`
	PropertyName string   `json:"property_name"`
	Values       []string `json:"values"`
}

// Completeness report

type IncompleteType struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type CompletenessReport struct {
	IncompleteTypes         []IncompleteType `json:"incomplete_types"`
	PropertiesWithoutValues []string         `json:"properties_without_values"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
